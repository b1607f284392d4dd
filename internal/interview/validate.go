package interview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

// ValidateAnswer checks that a matches the question's kind and bounds.
// An empty choice set is accepted here; completeness is a separate check.
func ValidateAnswer(q Question, a domain.Answer) error {
	want := q.AnswerKind()
	if a.Kind() != want {
		return errs.NewAnswerKindError(q.ID, want.String(), a.Kind().String())
	}

	switch want {
	case domain.KindSlider:
		v, _ := a.Number()
		if math.IsNaN(v) || v < q.Min || v > q.Max || !q.OnGrid(v) {
			return errs.NewAnswerInvalidError(q.ID,
				fmt.Sprintf("a value between %s and %s in steps of %s",
					q.FormatValue(q.Min), q.FormatValue(q.Max), strconv.FormatFloat(q.Step, 'f', -1, 64)))
		}
	case domain.KindSingle:
		v, _ := a.Choice()
		if v != "" && !q.HasOption(v) {
			return errs.NewAnswerInvalidError(q.ID, "one of "+strings.Join(q.OptionValues(), ", "))
		}
	case domain.KindMulti:
		values, _ := a.Values()
		for _, v := range values {
			if !q.HasOption(v) {
				return errs.NewAnswerInvalidError(q.ID, "values from "+strings.Join(q.OptionValues(), ", "))
			}
		}
	}
	return nil
}

// ValidateAnswerSet checks that answers hold a valid, chosen value for every
// question of the section and nothing else.
func ValidateAnswerSet(section domain.Section, answers domain.AnswerSet) error {
	questions, err := QuestionsFor(section)
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(questions))
	var missing []string
	for _, q := range questions {
		known[q.ID] = struct{}{}
		a, ok := answers[q.ID]
		if !ok || !a.IsSet() {
			missing = append(missing, q.ID)
			continue
		}
		if err := ValidateAnswer(q, a); err != nil {
			return err
		}
	}

	for _, id := range answers.IDs() {
		if _, ok := known[id]; !ok {
			return errs.NewQuestionUnknownError(string(section), id)
		}
	}

	if len(missing) > 0 {
		return errs.NewIncompleteAnswersError(string(section), missing)
	}
	return nil
}
