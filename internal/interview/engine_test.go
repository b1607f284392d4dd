package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
)

type fakeSubmitter struct {
	submitted map[domain.Section]domain.AnswerSet
	menuCalls int
	err       error
}

func newFakeSubmitter() *fakeSubmitter {
	return &fakeSubmitter{submitted: make(map[domain.Section]domain.AnswerSet)}
}

func (f *fakeSubmitter) SubmitSectionAnswers(_ context.Context, s domain.Section, a domain.AnswerSet) error {
	if f.err != nil {
		return f.err
	}
	f.submitted[s] = a
	return nil
}

func (f *fakeSubmitter) ReturnToMenu() { f.menuCalls++ }

func TestNewTraversal(t *testing.T) {
	tests := []struct {
		name    string
		section domain.Section
		wantLen int
		wantErr bool
	}{
		{name: "basic questions", section: domain.SectionBasic, wantLen: 4},
		{name: "demographics", section: domain.SectionDemographics, wantLen: 3},
		{name: "smart home", section: domain.SectionSmartHome, wantLen: 3},
		{name: "main is not a data section", section: domain.SectionMain, wantErr: true},
		{name: "unknown", section: "attic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTraversal(tt.section, nil, newFakeSubmitter())
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTraversal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if errs.CodeOf(err) != errs.ErrCodeInterviewSectionUnknown {
					t.Errorf("error code = %s, want %s", errs.CodeOf(err), errs.ErrCodeInterviewSectionUnknown)
				}
				return
			}
			if tr.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", tr.Len(), tt.wantLen)
			}
			if tr.Step() != 0 {
				t.Errorf("Step() = %d, want 0", tr.Step())
			}
		})
	}
}

func TestTraversalSeedsDefaults(t *testing.T) {
	tr, err := NewTraversal(domain.SectionBasic, nil, newFakeSubmitter())
	if err != nil {
		t.Fatalf("NewTraversal() failed: %v", err)
	}

	budget, ok := tr.Answer("budget")
	if !ok || !budget.Equal(domain.Slider(500000)) {
		t.Errorf("budget = %v, want slider default 500000", budget)
	}

	features, ok := tr.Answer("features")
	if !ok || features.Kind() != domain.KindMulti || features.IsSet() {
		t.Errorf("features = %v, want empty set", features)
	}

	if _, ok := tr.Answer("location"); ok {
		t.Error("location should start unanswered")
	}
}

func TestTraversalSeedsFromStored(t *testing.T) {
	stored := domain.AnswerSet{
		"budget":      domain.Slider(750000),
		"location":    domain.Single("rural"),
		"ageGroups":   domain.Multi("young"),     // belongs to another section
		"buildingAge": domain.Single("victorian"), // no longer a valid option
	}

	tr, err := NewTraversal(domain.SectionBasic, stored, newFakeSubmitter())
	if err != nil {
		t.Fatalf("NewTraversal() failed: %v", err)
	}

	if a, _ := tr.Answer("budget"); !a.Equal(domain.Slider(750000)) {
		t.Errorf("budget = %v, want 750000", a)
	}
	if a, _ := tr.Answer("location"); !a.Equal(domain.Single("rural")) {
		t.Errorf("location = %v, want rural", a)
	}
	if _, ok := tr.Answer("ageGroups"); ok {
		t.Error("answers from other sections must not be seeded")
	}
	if _, ok := tr.Answer("buildingAge"); ok {
		t.Error("invalid stored answers must not be seeded")
	}

	stored["budget"] = domain.Slider(100000)
	if a, _ := tr.Answer("budget"); !a.Equal(domain.Slider(750000)) {
		t.Error("traversal must not alias the stored set")
	}
}

func TestNewTraversalDropsOffGridSlider(t *testing.T) {
	stored := domain.AnswerSet{"budget": domain.Slider(123456)}
	tr, err := NewTraversal(domain.SectionBasic, stored, newFakeSubmitter())
	if err != nil {
		t.Fatalf("NewTraversal() failed: %v", err)
	}

	a, _ := tr.Answer("budget")
	if !a.Equal(domain.Slider(500000)) {
		t.Errorf("budget = %v, want the 500000 default", a)
	}
	v, _ := a.Number()
	if !tr.Current().OnGrid(v) {
		t.Errorf("seeded budget %v is not a selectable position", v)
	}
}

func TestTraversalGuardedAdvance(t *testing.T) {
	sub := newFakeSubmitter()
	tr, _ := NewTraversal(domain.SectionBasic, nil, sub)
	ctx := context.Background()

	// budget slider is seeded, so the first step can advance
	if out, err := tr.Advance(ctx); err != nil || out != OutcomeStepped {
		t.Fatalf("Advance() = %v, %v; want stepped", out, err)
	}

	// location has no answer
	out, err := tr.Advance(ctx)
	if err != nil || out != OutcomeBlocked {
		t.Fatalf("Advance() = %v, %v; want blocked", out, err)
	}
	if tr.Step() != 1 {
		t.Errorf("blocked advance moved to step %d", tr.Step())
	}

	if err := tr.RecordAnswer("location", domain.Single("downtown")); err != nil {
		t.Fatalf("RecordAnswer() failed: %v", err)
	}
	if out, _ := tr.Advance(ctx); out != OutcomeStepped {
		t.Fatalf("Advance() = %v, want stepped", out)
	}

	// empty checkbox set blocks
	if out, _ := tr.Advance(ctx); out != OutcomeBlocked {
		t.Errorf("Advance() with empty set = %v, want blocked", out)
	}
}

func TestTraversalFullWalkSubmits(t *testing.T) {
	sub := newFakeSubmitter()
	tr, _ := NewTraversal(domain.SectionBasic, nil, sub)
	ctx := context.Background()

	steps := []struct {
		id     string
		answer domain.Answer
	}{
		{"budget", domain.Slider(500000)},
		{"location", domain.Single("downtown")},
		{"features", domain.Multi("garden", "pool")},
		{"buildingAge", domain.Single("new")},
	}

	for i, s := range steps {
		if err := tr.RecordAnswer(s.id, s.answer); err != nil {
			t.Fatalf("RecordAnswer(%s) failed: %v", s.id, err)
		}
		want := OutcomeStepped
		if i == len(steps)-1 {
			want = OutcomeExitToResults
		}
		out, err := tr.Advance(ctx)
		if err != nil || out != want {
			t.Fatalf("step %d: Advance() = %v, %v; want %v", i, out, err, want)
		}
	}

	got, ok := sub.submitted[domain.SectionBasic]
	if !ok {
		t.Fatal("section was not submitted")
	}
	want := domain.AnswerSet{
		"budget":      domain.Slider(500000),
		"location":    domain.Single("downtown"),
		"features":    domain.Multi("garden", "pool"),
		"buildingAge": domain.Single("new"),
	}
	if !got.Equal(want) {
		t.Errorf("submitted = %v, want %v", got, want)
	}

	if !tr.Done() || tr.Outcome() != OutcomeExitToResults {
		t.Error("traversal should be terminal after submitting")
	}
	if out, _ := tr.Advance(ctx); out != OutcomeExitToResults {
		t.Errorf("Advance() after exit = %v, want exit-to-results", out)
	}
	if out := tr.Retreat(); out != OutcomeExitToResults {
		t.Errorf("Retreat() after exit = %v, want exit-to-results", out)
	}
	if len(sub.submitted) != 1 || sub.menuCalls != 0 {
		t.Error("calls after exit must not reach the submitter")
	}
}

func TestTraversalRetreat(t *testing.T) {
	sub := newFakeSubmitter()
	tr, _ := NewTraversal(domain.SectionDemographics, nil, sub)
	ctx := context.Background()

	_ = tr.RecordAnswer("ageGroups", domain.Multi("young"))
	if out, _ := tr.Advance(ctx); out != OutcomeStepped {
		t.Fatalf("Advance() = %v, want stepped", out)
	}

	if out := tr.Retreat(); out != OutcomeStepped || tr.Step() != 0 {
		t.Fatalf("Retreat() = %v at step %d, want stepped to 0", out, tr.Step())
	}
	if a, _ := tr.Answer("ageGroups"); !a.Equal(domain.Multi("young")) {
		t.Error("retreat must keep local answers")
	}

	if out := tr.Retreat(); out != OutcomeExitToMenu {
		t.Fatalf("Retreat() at step 0 = %v, want exit-to-menu", out)
	}
	if sub.menuCalls != 1 {
		t.Errorf("ReturnToMenu called %d times, want 1", sub.menuCalls)
	}
	if len(sub.submitted) != 0 {
		t.Error("retreating must not submit")
	}
}

func TestTraversalAbandon(t *testing.T) {
	sub := newFakeSubmitter()
	tr, _ := NewTraversal(domain.SectionTransportation, nil, sub)

	if out := tr.Abandon(); out != OutcomeExitToMenu {
		t.Fatalf("Abandon() = %v, want exit-to-menu", out)
	}
	if sub.menuCalls != 1 {
		t.Errorf("ReturnToMenu called %d times, want 1", sub.menuCalls)
	}
}

func TestTraversalSubmitError(t *testing.T) {
	sub := newFakeSubmitter()
	sub.err = errors.New("rejected")
	tr, _ := NewTraversal(domain.SectionSmartHome, nil, sub)
	ctx := context.Background()

	_ = tr.RecordAnswer("smartFeatures", domain.Multi("voice"))
	tr.Advance(ctx)
	tr.Advance(ctx)
	_ = tr.RecordAnswer("futureProof", domain.Single("fully"))

	out, err := tr.Advance(ctx)
	if err == nil || out != OutcomeBlocked {
		t.Fatalf("Advance() = %v, %v; want blocked with error", out, err)
	}
	if tr.Done() {
		t.Error("failed submit must leave the traversal open")
	}
}

func TestTraversalProgress(t *testing.T) {
	tr, _ := NewTraversal(domain.SectionBasic, nil, newFakeSubmitter())
	ctx := context.Background()

	if got := tr.Progress(); got != 25 {
		t.Errorf("Progress() at step 0 = %v, want 25", got)
	}
	tr.Advance(ctx)
	if got := tr.Progress(); got != 50 {
		t.Errorf("Progress() at step 1 = %v, want 50", got)
	}
}

func TestRecordAnswerValidation(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		answer   domain.Answer
		wantCode errs.ErrorCode
	}{
		{name: "valid slider", id: "budget", answer: domain.Slider(1000000)},
		{name: "valid select", id: "location", answer: domain.Single("suburbs")},
		{name: "valid checkbox", id: "features", answer: domain.Multi("parking")},
		{name: "empty checkbox is recordable", id: "features", answer: domain.Multi()},
		{name: "unknown question", id: "ageGroups", answer: domain.Multi("young"), wantCode: errs.ErrCodeInterviewQuestionUnknown},
		{name: "wrong kind", id: "location", answer: domain.Multi("downtown"), wantCode: errs.ErrCodeInterviewAnswerKind},
		{name: "unknown option", id: "location", answer: domain.Single("moon"), wantCode: errs.ErrCodeInterviewAnswerInvalid},
		{name: "unknown checkbox option", id: "features", answer: domain.Multi("garden", "helipad"), wantCode: errs.ErrCodeInterviewAnswerInvalid},
		{name: "slider below range", id: "budget", answer: domain.Slider(50000), wantCode: errs.ErrCodeInterviewAnswerInvalid},
		{name: "slider above range", id: "budget", answer: domain.Slider(2000000), wantCode: errs.ErrCodeInterviewAnswerInvalid},
		{name: "slider between steps", id: "budget", answer: domain.Slider(123456), wantCode: errs.ErrCodeInterviewAnswerInvalid},
		{name: "slider on last step", id: "budget", answer: domain.Slider(1500000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _ := NewTraversal(domain.SectionBasic, nil, newFakeSubmitter())
			err := tr.RecordAnswer(tt.id, tt.answer)
			if got := errs.CodeOf(err); got != tt.wantCode {
				t.Errorf("RecordAnswer() code = %q, want %q (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestValidateAnswerSet(t *testing.T) {
	complete := domain.AnswerSet{
		"greenSpace":  domain.Slider(4),
		"amenities":   domain.Multi("parks", "gyms"),
		"development": domain.Single("limited"),
	}

	tests := []struct {
		name     string
		section  domain.Section
		answers  domain.AnswerSet
		wantCode errs.ErrorCode
	}{
		{name: "complete", section: domain.SectionConstruction, answers: complete},
		{
			name:    "missing radio",
			section: domain.SectionConstruction,
			answers: domain.AnswerSet{
				"greenSpace": domain.Slider(4),
				"amenities":  domain.Multi("parks"),
			},
			wantCode: errs.ErrCodeWizardIncomplete,
		},
		{
			name:    "empty checkbox counts as missing",
			section: domain.SectionConstruction,
			answers: domain.AnswerSet{
				"greenSpace":  domain.Slider(4),
				"amenities":   domain.Multi(),
				"development": domain.Single("no"),
			},
			wantCode: errs.ErrCodeWizardIncomplete,
		},
		{
			name:    "foreign id",
			section: domain.SectionConstruction,
			answers: domain.AnswerSet{
				"greenSpace":  domain.Slider(4),
				"amenities":   domain.Multi("parks"),
				"development": domain.Single("no"),
				"budget":      domain.Slider(500000),
			},
			wantCode: errs.ErrCodeInterviewQuestionUnknown,
		},
		{name: "main", section: domain.SectionMain, answers: complete, wantCode: errs.ErrCodeInterviewSectionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswerSet(tt.section, tt.answers)
			if got := errs.CodeOf(err); got != tt.wantCode {
				t.Errorf("ValidateAnswerSet() code = %q, want %q (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}
