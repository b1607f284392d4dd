package wizard

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

// EncodeProgress serializes the five data sections of t. Sections missing
// from t are written as not completed with no answers.
func EncodeProgress(t domain.ProgressTable) ([]byte, error) {
	out := make(map[domain.Section]domain.SectionProgress, domain.SectionCount)
	for _, s := range domain.DataSections() {
		p := t[s]
		if p.Answers == nil {
			p.Answers = domain.AnswerSet{}
		}
		out[s] = p
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeProgressEncode, "encode progress snapshot", err)
	}
	return data, nil
}

// DecodeProgress parses a stored snapshot. It either returns a fully
// populated table or a PROGRESS-001 error; there is no partial result.
func DecodeProgress(data []byte) (domain.ProgressTable, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, errs.NewProgressMalformedError(err)
	}
	if top == nil {
		return nil, errs.NewProgressMalformedError(fmt.Errorf("snapshot is not an object"))
	}

	table := make(domain.ProgressTable, domain.SectionCount)
	for _, s := range domain.DataSections() {
		raw, ok := top[string(s)]
		if !ok {
			return nil, errs.NewProgressMalformedError(fmt.Errorf("section %s missing", s))
		}
		p, err := decodeSection(raw)
		if err != nil {
			return nil, errs.NewProgressMalformedError(fmt.Errorf("section %s: %w", s, err))
		}
		table[s] = p
	}
	return table, nil
}

func decodeSection(raw json.RawMessage) (domain.SectionProgress, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.SectionProgress{}, err
	}
	if fields == nil {
		return domain.SectionProgress{}, fmt.Errorf("not an object")
	}

	completedRaw, ok := fields["completed"]
	if !ok || isNull(completedRaw) {
		return domain.SectionProgress{}, fmt.Errorf("completed missing")
	}
	var completed bool
	if err := json.Unmarshal(completedRaw, &completed); err != nil {
		return domain.SectionProgress{}, fmt.Errorf("completed: %w", err)
	}

	answersRaw, ok := fields["answers"]
	if !ok || isNull(answersRaw) {
		return domain.SectionProgress{}, fmt.Errorf("answers missing")
	}
	var answers domain.AnswerSet
	if err := json.Unmarshal(answersRaw, &answers); err != nil {
		return domain.SectionProgress{}, fmt.Errorf("answers: %w", err)
	}
	for id, a := range answers {
		if a.Kind() == domain.KindNone {
			return domain.SectionProgress{}, fmt.Errorf("answer %s has no value", id)
		}
		if completed && !a.IsSet() {
			return domain.SectionProgress{}, fmt.Errorf("completed section has empty answer %s", id)
		}
	}

	return domain.SectionProgress{Completed: completed, Answers: answers}, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
