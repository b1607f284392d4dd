package interview

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

// Outcome reports what a navigation call did.
type Outcome int

const (
	// OutcomeStepped moved to another question inside the section.
	OutcomeStepped Outcome = iota
	// OutcomeBlocked left the traversal unchanged because the current
	// question has no answer yet.
	OutcomeBlocked
	// OutcomeExitToMenu handed control back to the menu.
	OutcomeExitToMenu
	// OutcomeExitToResults submitted the section.
	OutcomeExitToResults
)

// String returns the string representation
func (o Outcome) String() string {
	switch o {
	case OutcomeStepped:
		return "stepped"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeExitToMenu:
		return "exit-to-menu"
	case OutcomeExitToResults:
		return "exit-to-results"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Submitter receives the traversal's exits. The wizard controller
// implements it.
type Submitter interface {
	SubmitSectionAnswers(ctx context.Context, section domain.Section, answers domain.AnswerSet) error
	ReturnToMenu()
}

// Traversal walks one section's questions in order and accumulates answers
// locally until the last question submits them.
type Traversal struct {
	section   Section
	step      int
	answers   domain.AnswerSet
	submitter Submitter

	exited  bool
	outcome Outcome
}

// NewTraversal starts at step 0 of section. Stored answers that belong to
// the section and are still valid seed the local set; sliders without a
// stored value take their default and checkboxes start empty.
func NewTraversal(id domain.Section, stored domain.AnswerSet, submitter Submitter) (*Traversal, error) {
	section, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	if len(section.Questions) == 0 {
		return nil, fmt.Errorf("section %s has no questions", id)
	}

	answers := make(domain.AnswerSet, len(section.Questions))
	for _, q := range section.Questions {
		if a, ok := stored[q.ID]; ok && ValidateAnswer(q, a) == nil {
			answers[q.ID] = a
			continue
		}
		switch q.Type {
		case QuestionTypeSlider:
			answers[q.ID] = domain.Slider(q.Default)
		case QuestionTypeCheckbox:
			answers[q.ID] = domain.Multi()
		}
	}

	return &Traversal{
		section:   section,
		answers:   answers.Clone(),
		submitter: submitter,
	}, nil
}

// Section returns the catalog entry being traversed.
func (t *Traversal) Section() Section { return t.section }

// Step returns the zero-based index of the current question.
func (t *Traversal) Step() int { return t.step }

// Len returns the number of questions in the section.
func (t *Traversal) Len() int { return len(t.section.Questions) }

// Current returns the current question.
func (t *Traversal) Current() Question { return t.section.Questions[t.step] }

// IsLast reports whether the current question is the final one.
func (t *Traversal) IsLast() bool { return t.step == len(t.section.Questions)-1 }

// Answer returns the local answer for id.
func (t *Traversal) Answer(id string) (domain.Answer, bool) {
	a, ok := t.answers[id]
	return a, ok
}

// CurrentAnswer returns the local answer for the current question.
func (t *Traversal) CurrentAnswer() (domain.Answer, bool) {
	return t.Answer(t.Current().ID)
}

// Answers returns a copy of the locally accumulated answers.
func (t *Traversal) Answers() domain.AnswerSet { return t.answers.Clone() }

// Progress returns the progress bar value: (step+1)/N*100.
func (t *Traversal) Progress() float64 {
	return float64(t.step+1) / float64(len(t.section.Questions)) * 100
}

// Done reports whether the traversal has exited.
func (t *Traversal) Done() bool { return t.exited }

// Outcome returns the exit outcome once Done.
func (t *Traversal) Outcome() Outcome { return t.outcome }

// CanAdvance reports whether the current question has a chosen value.
func (t *Traversal) CanAdvance() bool {
	a, ok := t.CurrentAnswer()
	return ok && a.IsSet()
}

// RecordAnswer overwrites the local answer for id.
func (t *Traversal) RecordAnswer(id string, a domain.Answer) error {
	if t.exited {
		return nil
	}
	for _, q := range t.section.Questions {
		if q.ID != id {
			continue
		}
		if err := ValidateAnswer(q, a); err != nil {
			return err
		}
		t.answers[id] = a
		return nil
	}
	return errs.NewQuestionUnknownError(string(t.section.ID), id)
}

// Advance moves to the next question, or submits the section from the last
// one. Without an answer for the current question it is a no-op.
func (t *Traversal) Advance(ctx context.Context) (Outcome, error) {
	if t.exited {
		return t.outcome, nil
	}
	if !t.CanAdvance() {
		return OutcomeBlocked, nil
	}
	if !t.IsLast() {
		t.step++
		return OutcomeStepped, nil
	}

	if err := t.submitter.SubmitSectionAnswers(ctx, t.section.ID, t.answers.Clone()); err != nil {
		return OutcomeBlocked, fmt.Errorf("submit %s: %w", t.section.ID, err)
	}
	return t.exit(OutcomeExitToResults), nil
}

// Retreat moves to the previous question, or returns to the menu from the
// first one. Local answers are kept while stepping back.
func (t *Traversal) Retreat() Outcome {
	if t.exited {
		return t.outcome
	}
	if t.step > 0 {
		t.step--
		return OutcomeStepped
	}
	t.submitter.ReturnToMenu()
	return t.exit(OutcomeExitToMenu)
}

// Abandon returns to the menu from any step without submitting.
func (t *Traversal) Abandon() Outcome {
	if t.exited {
		return t.outcome
	}
	t.submitter.ReturnToMenu()
	return t.exit(OutcomeExitToMenu)
}

func (t *Traversal) exit(o Outcome) Outcome {
	t.exited = true
	t.outcome = o
	return o
}
