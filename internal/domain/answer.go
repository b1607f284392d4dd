package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// AnswerKind tags the variant held by an Answer.
type AnswerKind int

const (
	// KindNone is the zero Answer; it holds no value.
	KindNone AnswerKind = iota
	// KindSlider holds a number.
	KindSlider
	// KindSingle holds one option value (select or radio questions).
	KindSingle
	// KindMulti holds a set of option values (checkbox questions).
	KindMulti
)

// String returns the string representation
func (k AnswerKind) String() string {
	switch k {
	case KindSlider:
		return "slider"
	case KindSingle:
		return "single"
	case KindMulti:
		return "multi"
	default:
		return "none"
	}
}

// Answer is a tagged union over the three answer shapes.
// Its JSON form is the bare value: a number, a string or an array of strings.
type Answer struct {
	kind   AnswerKind
	number float64
	choice string
	set    []string
}

// Slider creates a numeric answer.
func Slider(v float64) Answer {
	return Answer{kind: KindSlider, number: v}
}

// Single creates a single-choice answer.
func Single(v string) Answer {
	return Answer{kind: KindSingle, choice: v}
}

// Multi creates a multi-choice answer. Duplicates are dropped and the
// first occurrence keeps its position.
func Multi(values ...string) Answer {
	seen := make(map[string]struct{}, len(values))
	set := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	return Answer{kind: KindMulti, set: set}
}

// Kind returns the variant tag.
func (a Answer) Kind() AnswerKind { return a.kind }

// Number returns the slider value.
func (a Answer) Number() (float64, bool) {
	return a.number, a.kind == KindSlider
}

// Choice returns the single-choice value.
func (a Answer) Choice() (string, bool) {
	return a.choice, a.kind == KindSingle
}

// Values returns a copy of the multi-choice values.
func (a Answer) Values() ([]string, bool) {
	if a.kind != KindMulti {
		return nil, false
	}
	out := make([]string, len(a.set))
	copy(out, a.set)
	return out, true
}

// Contains reports whether a multi-choice answer includes v.
func (a Answer) Contains(v string) bool {
	for _, s := range a.set {
		if s == v {
			return true
		}
	}
	return false
}

// IsSet reports whether the answer counts as "a value has been chosen".
// Sliders always count; choices need a non-empty value.
func (a Answer) IsSet() bool {
	switch a.kind {
	case KindSlider:
		return true
	case KindSingle:
		return a.choice != ""
	case KindMulti:
		return len(a.set) > 0
	default:
		return false
	}
}

// Equal compares two answers. Multi answers compare as sets.
func (a Answer) Equal(b Answer) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindSlider:
		return a.number == b.number
	case KindSingle:
		return a.choice == b.choice
	case KindMulti:
		if len(a.set) != len(b.set) {
			return false
		}
		x, y := sortedCopy(a.set), sortedCopy(b.set)
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	}
	return true
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

// String renders the raw value for plain-text output.
func (a Answer) String() string {
	switch a.kind {
	case KindSlider:
		return strconv.FormatFloat(a.number, 'f', -1, 64)
	case KindSingle:
		return a.choice
	case KindMulti:
		return fmt.Sprintf("%v", a.set)
	default:
		return ""
	}
}

// MarshalJSON implements json.Marshaler
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case KindSlider:
		if math.IsNaN(a.number) || math.IsInf(a.number, 0) {
			return nil, fmt.Errorf("slider value %v is not representable", a.number)
		}
		return json.Marshal(a.number)
	case KindSingle:
		return json.Marshal(a.choice)
	case KindMulti:
		if a.set == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.set)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. The variant is inferred from
// the JSON type; anything other than a number, string or array of non-empty
// strings is rejected.
func (a *Answer) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty answer")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = Single(s)
	case '[':
		var values []string
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return fmt.Errorf("multi answer: %w", err)
		}
		for _, v := range values {
			if v == "" {
				return fmt.Errorf("multi answer holds an empty value")
			}
		}
		*a = Multi(values...)
	case 'n', 't', 'f', '{':
		return fmt.Errorf("unsupported answer value %s", trimmed)
	default:
		var n float64
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("slider answer: %w", err)
		}
		*a = Slider(n)
	}
	return nil
}

// MarshalYAML renders the bare value for YAML output.
func (a Answer) MarshalYAML() (interface{}, error) {
	switch a.kind {
	case KindSlider:
		return a.number, nil
	case KindSingle:
		return a.choice, nil
	case KindMulti:
		if a.set == nil {
			return []string{}, nil
		}
		return a.set, nil
	default:
		return nil, nil
	}
}

// AnswerSet maps question ids to answers within one section.
type AnswerSet map[string]Answer

// Clone returns a deep copy.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for id, a := range s {
		if a.kind == KindMulti {
			a.set = append([]string(nil), a.set...)
		}
		out[id] = a
	}
	return out
}

// Equal compares two answer sets key by key.
func (s AnswerSet) Equal(other AnswerSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id, a := range s {
		b, ok := other[id]
		if !ok || !a.Equal(b) {
			return false
		}
	}
	return true
}

// IDs returns the question ids in sorted order.
func (s AnswerSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
