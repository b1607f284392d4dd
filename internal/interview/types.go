package interview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
)

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeSlider   QuestionType = "slider"
	QuestionTypeSelect   QuestionType = "select"
	QuestionTypeRadio    QuestionType = "radio"
	QuestionTypeCheckbox QuestionType = "checkbox"
)

// Option is one selectable value of a select, radio or checkbox question
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Question represents a single question in a section
type Question struct {
	ID          string       `json:"id" yaml:"id"`
	Type        QuestionType `json:"type" yaml:"type"`
	Text        string       `json:"text" yaml:"text"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Options     []Option     `json:"options,omitempty" yaml:"options,omitempty"`

	// Slider bounds
	Min     float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step    float64 `json:"step,omitempty" yaml:"step,omitempty"`
	Default float64 `json:"default,omitempty" yaml:"default,omitempty"`
}

// Section describes one questionnaire section
type Section struct {
	ID          domain.Section `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	MenuTitle   string         `json:"menu_title" yaml:"menu_title"`
	Description string         `json:"description" yaml:"description"`
	Questions   []Question     `json:"questions" yaml:"questions"`
}

// AnswerKind returns the answer variant the question accepts.
func (q Question) AnswerKind() domain.AnswerKind {
	switch q.Type {
	case QuestionTypeSlider:
		return domain.KindSlider
	case QuestionTypeSelect, QuestionTypeRadio:
		return domain.KindSingle
	case QuestionTypeCheckbox:
		return domain.KindMulti
	default:
		return domain.KindNone
	}
}

// HasOption reports whether value is one of the question's options.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OptionLabel returns the label for value, or value itself when unknown.
func (q Question) OptionLabel(value string) string {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// OptionValues lists the option values in display order.
func (q Question) OptionValues() []string {
	values := make([]string, len(q.Options))
	for i, o := range q.Options {
		values[i] = o.Value
	}
	return values
}

// SliderValues enumerates every reachable slider position.
func (q Question) SliderValues() []float64 {
	if q.Type != QuestionTypeSlider || q.Step <= 0 || q.Max < q.Min {
		return nil
	}
	n := int(math.Round((q.Max-q.Min)/q.Step)) + 1
	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		values = append(values, q.Min+float64(i)*q.Step)
	}
	return values
}

// OnGrid reports whether v is one of SliderValues. A question without a
// step accepts any value.
func (q Question) OnGrid(v float64) bool {
	if q.Step <= 0 {
		return true
	}
	k := math.Round((v - q.Min) / q.Step)
	return math.Abs(q.Min+k*q.Step-v) < 1e-9*math.Max(1, math.Abs(v))
}

// FormatValue renders a slider value the way it is displayed: budgets as
// dollars, commute times in minutes, everything else as a plain number.
func (q Question) FormatValue(v float64) string {
	switch q.ID {
	case "budget":
		return FormatCurrency(v)
	case "commuteTime":
		return fmt.Sprintf("%s min", strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// FormatAnswer renders an answer with option labels for display.
func (q Question) FormatAnswer(a domain.Answer) string {
	switch a.Kind() {
	case domain.KindSlider:
		v, _ := a.Number()
		return q.FormatValue(v)
	case domain.KindSingle:
		v, _ := a.Choice()
		return q.OptionLabel(v)
	case domain.KindMulti:
		values, _ := a.Values()
		if len(values) == 0 {
			return "(none)"
		}
		labels := make([]string, len(values))
		for i, v := range values {
			labels[i] = q.OptionLabel(v)
		}
		return strings.Join(labels, ", ")
	default:
		return ""
	}
}

// FormatCurrency renders a whole-dollar amount with thousands separators,
// e.g. 500000 -> "$500,000".
func FormatCurrency(v float64) string {
	neg := v < 0
	digits := strconv.FormatInt(int64(math.Round(math.Abs(v))), 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
