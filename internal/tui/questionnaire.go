package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	"github.com/felixgeelhaar/homewhisper/internal/interview"
)

// fieldValues holds the value bound to the current huh field.
type fieldValues struct {
	number  float64
	choice  string
	choices []string
}

// seed copies a stored answer into the bound value.
func (v *fieldValues) seed(a domain.Answer) {
	*v = fieldValues{}
	if n, ok := a.Number(); ok {
		v.number = n
	}
	if c, ok := a.Choice(); ok {
		v.choice = c
	}
	if vs, ok := a.Values(); ok {
		v.choices = append([]string(nil), vs...)
	}
}

// answer converts the bound value into an answer of the question's kind.
func (v *fieldValues) answer(q interview.Question) domain.Answer {
	switch q.AnswerKind() {
	case domain.KindSlider:
		return domain.Slider(v.number)
	case domain.KindSingle:
		return domain.Single(v.choice)
	case domain.KindMulti:
		return domain.Multi(v.choices...)
	default:
		return domain.Answer{}
	}
}

// newQuestionField creates the huh field for q, bound to v.
func newQuestionField(q interview.Question, v *fieldValues) (huh.Field, error) {
	switch q.Type {
	case interview.QuestionTypeSlider:
		options := make([]huh.Option[float64], 0, len(q.SliderValues()))
		for _, n := range q.SliderValues() {
			options = append(options, huh.NewOption(q.FormatValue(n), n))
		}
		return huh.NewSelect[float64]().
			Key(q.ID).
			Title(q.Text).
			Description(q.Description).
			Options(options...).
			Value(&v.number), nil

	case interview.QuestionTypeSelect, interview.QuestionTypeRadio:
		options := make([]huh.Option[string], 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, huh.NewOption(o.Label, o.Value))
		}
		return huh.NewSelect[string]().
			Key(q.ID).
			Title(q.Text).
			Description(q.Description).
			Options(options...).
			Value(&v.choice).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("please select an option")
				}
				return nil
			}), nil

	case interview.QuestionTypeCheckbox:
		options := make([]huh.Option[string], 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, huh.NewOption(o.Label, o.Value))
		}
		return huh.NewMultiSelect[string]().
			Key(q.ID).
			Title(q.Text).
			Description(q.Description).
			Options(options...).
			Value(&v.choices).
			Validate(func(s []string) error {
				if len(s) == 0 {
					return errors.New("select at least one option")
				}
				return nil
			}), nil

	default:
		return nil, fmt.Errorf("unsupported question type: %s", q.Type)
	}
}

// questionHeader formats the group title of the current question.
func questionHeader(t *interview.Traversal) string {
	return fmt.Sprintf("%s · Question %d/%d (%d%%)",
		t.Section().Title, t.Step()+1, t.Len(), int(t.Progress()))
}

// newQuestionForm builds a single-question form for the traversal's
// current step.
func newQuestionForm(t *interview.Traversal, v *fieldValues) (*huh.Form, error) {
	q := t.Current()
	if a, ok := t.CurrentAnswer(); ok {
		v.seed(a)
	} else {
		v.seed(domain.Answer{})
	}

	field, err := newQuestionField(q, v)
	if err != nil {
		return nil, err
	}

	form := huh.NewForm(
		huh.NewGroup(field).
			Title(questionHeader(t)).
			Description("Use arrow keys to choose • Enter to continue • Esc to go back"),
	).WithShowHelp(false)
	return form, nil
}
