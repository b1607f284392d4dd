package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	"github.com/felixgeelhaar/homewhisper/internal/interview"
	"github.com/felixgeelhaar/homewhisper/internal/storage"
	"github.com/felixgeelhaar/homewhisper/internal/wizard"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
)

// newTestModel builds a model over a memory store. The welcome screen is
// skipped unless welcome is true.
func newTestModel(t *testing.T, welcome bool) (*Model, *wizard.Controller, *storage.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if !welcome {
		require.NoError(t, store.Save(ctx, wizard.WelcomeKey, []byte("true")))
	}
	wiz := wizard.New(store)
	wiz.Initialize(ctx)
	return NewModel(ctx, wiz, Options{}), wiz, store
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// answerBasic completes the basic questions through the model.
func answerBasic(t *testing.T, m *Model) {
	t.Helper()
	require.NotNil(t, m.trav)
	require.Equal(t, domain.SectionBasic, m.trav.Section().ID)

	m.answer(domain.Slider(750000))
	m.answer(domain.Single("suburbs"))
	m.answer(domain.Multi("garden", "parking"))
	m.answer(domain.Single("new"))
}

func TestWelcomeIsShownUntilAcknowledged(t *testing.T) {
	m, wiz, store := newTestModel(t, true)

	assert.True(t, m.showWelcome)
	assert.Contains(t, m.View(), "Welcome to Home Whisperer")
	assert.Contains(t, m.View(), "Start Exploring")

	send(m, enter)

	assert.False(t, m.showWelcome)
	assert.True(t, wiz.WelcomeSeen())
	data, err := store.Load(context.Background(), wizard.WelcomeKey)
	require.NoError(t, err)
	assert.Equal(t, "true", string(data))
	assert.Contains(t, m.View(), "Home Buying Assistant")
}

func TestMenuResultsWithoutCompletedSections(t *testing.T) {
	m, wiz, _ := newTestModel(t, false)

	send(m, runes("r"))

	assert.Equal(t, wizard.ViewMenu, wiz.View())
	assert.Contains(t, m.View(), "Please complete at least one section first")
	assert.Contains(t, m.View(), "0/5 sections completed")
}

func TestMenuCursorSelectsSection(t *testing.T) {
	m, wiz, _ := newTestModel(t, false)

	send(m, down, enter)

	assert.Equal(t, wizard.ViewQuestionnaire, wiz.View())
	assert.Equal(t, domain.SectionDemographics, wiz.Navigation().CurrentSection)
	require.NotNil(t, m.trav)
	assert.NotNil(t, m.form)
}

func TestMenuCursorStaysInBounds(t *testing.T) {
	m, _, _ := newTestModel(t, false)

	send(m, runes("k"))
	assert.Equal(t, 0, m.cursor)

	for range menuItems {
		send(m, runes("j"))
	}
	assert.Equal(t, len(menuItems)-1, m.cursor)
}

func TestEscapeOnFirstQuestionReturnsToMenu(t *testing.T) {
	m, wiz, _ := newTestModel(t, false)

	send(m, enter)
	require.Equal(t, wizard.ViewQuestionnaire, wiz.View())

	send(m, esc)

	assert.Equal(t, wizard.ViewMenu, wiz.View())
	assert.Nil(t, m.trav)
	assert.Nil(t, m.form)
	assert.Equal(t, 0, wiz.CompletedCount())
}

func TestEscapeStepsBackWithinSection(t *testing.T) {
	m, wiz, _ := newTestModel(t, false)

	send(m, enter)
	m.answer(domain.Slider(600000))
	require.Equal(t, 1, m.trav.Step())

	send(m, esc)

	assert.Equal(t, wizard.ViewQuestionnaire, wiz.View())
	assert.Equal(t, 0, m.trav.Step())
	assert.Equal(t, 600000.0, m.values.number)
}

func TestCompletingSectionShowsResults(t *testing.T) {
	m, wiz, _ := newTestModel(t, false)

	send(m, enter)
	answerBasic(t, m)

	assert.Equal(t, wizard.ViewSectionResults, wiz.View())
	assert.Nil(t, m.trav)
	assert.Equal(t, 1, wiz.CompletedCount())

	view := m.View()
	assert.Contains(t, view, "Your Ideal Home Profile")
	assert.Contains(t, view, "$750,000")

	stored := wiz.SectionAnswers(domain.SectionBasic)
	assert.True(t, stored["features"].Equal(domain.Multi("garden", "parking")))
}

func TestInvalidAnswerKeepsQuestionOpen(t *testing.T) {
	m, wiz, _ := newTestModel(t, false)

	send(m, enter)
	m.answer(domain.Single("castle"))

	assert.Equal(t, 0, m.trav.Step())
	assert.NotEmpty(t, m.notice)
	assert.Equal(t, wizard.ViewQuestionnaire, wiz.View())
}

func TestSectionResultsKeys(t *testing.T) {
	m, wiz, _ := newTestModel(t, false)
	send(m, enter)
	answerBasic(t, m)

	t.Run("modify reopens seeded questionnaire", func(t *testing.T) {
		send(m, runes("b"))

		assert.Equal(t, wizard.ViewQuestionnaire, wiz.View())
		require.NotNil(t, m.trav)
		a, ok := m.trav.Answer("location")
		require.True(t, ok)
		assert.True(t, a.Equal(domain.Single("suburbs")))
		assert.Equal(t, 750000.0, m.values.number)
	})

	t.Run("full recommendation", func(t *testing.T) {
		m.trav.Abandon()
		m.trav, m.form = nil, nil
		require.NoError(t, wiz.SelectSection(domain.SectionBasic))
		require.NoError(t, wiz.SubmitSectionAnswers(context.Background(), domain.SectionBasic, wiz.SectionAnswers(domain.SectionBasic)))

		send(m, runes("f"))

		assert.Equal(t, wizard.ViewAggregateResults, wiz.View())
		view := m.View()
		assert.Contains(t, view, "Westside")
		assert.Contains(t, view, "Your Story")
	})

	t.Run("area switching wraps", func(t *testing.T) {
		send(m, left)
		assert.Equal(t, 3, m.areaIndex)
		send(m, right, right)
		assert.Equal(t, 1, m.areaIndex)
	})

	t.Run("menu", func(t *testing.T) {
		send(m, runes("m"))
		assert.Equal(t, wizard.ViewMenu, wiz.View())
		assert.Contains(t, m.View(), "1/5 sections completed")
	})
}

func TestResultsFromMenuAfterCompletion(t *testing.T) {
	m, wiz, _ := newTestModel(t, false)
	send(m, enter)
	answerBasic(t, m)
	send(m, runes("m"))

	send(m, runes("r"))

	assert.Equal(t, wizard.ViewAggregateResults, wiz.View())
	assert.Empty(t, m.notice)
}

func TestDefaultAreaOption(t *testing.T) {
	ctx := context.Background()
	wiz := wizard.New(storage.NewMemoryStore())
	wiz.Initialize(ctx)

	m := NewModel(ctx, wiz, Options{DefaultArea: "eastside"})

	assert.Equal(t, 2, m.areaIndex)
}

func TestQuitKeys(t *testing.T) {
	t.Run("q in menu", func(t *testing.T) {
		m, _, _ := newTestModel(t, false)
		cmd := send(m, runes("q"))
		assert.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.True(t, strings.Contains(m.View(), "progress is saved"))
	})

	t.Run("ctrl+c in questionnaire", func(t *testing.T) {
		m, _, _ := newTestModel(t, false)
		send(m, enter)
		cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})
}

func TestQuestionHeader(t *testing.T) {
	trav, err := interview.NewTraversal(domain.SectionBasic, nil, nopSubmitter{})
	require.NoError(t, err)

	assert.Equal(t, "Basic Housing Questions · Question 1/4 (25%)", questionHeader(trav))
}

func TestQuestionFieldsForEveryType(t *testing.T) {
	for _, section := range interview.Catalog() {
		for _, q := range section.Questions {
			var v fieldValues
			field, err := newQuestionField(q, &v)
			require.NoError(t, err, q.ID)
			assert.Equal(t, q.ID, field.GetKey())
		}
	}

	_, err := newQuestionField(interview.Question{ID: "x", Type: "text"}, &fieldValues{})
	assert.Error(t, err)
}

func TestFieldValuesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		q    interview.Question
		a    domain.Answer
	}{
		{name: "slider", q: interview.Question{Type: interview.QuestionTypeSlider}, a: domain.Slider(45)},
		{name: "select", q: interview.Question{Type: interview.QuestionTypeSelect}, a: domain.Single("suburbs")},
		{name: "radio", q: interview.Question{Type: interview.QuestionTypeRadio}, a: domain.Single("new")},
		{name: "checkbox", q: interview.Question{Type: interview.QuestionTypeCheckbox}, a: domain.Multi("bus", "bike")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v fieldValues
			v.seed(tt.a)
			assert.True(t, v.answer(tt.q).Equal(tt.a))
		})
	}
}

type nopSubmitter struct{}

func (nopSubmitter) SubmitSectionAnswers(context.Context, domain.Section, domain.AnswerSet) error {
	return nil
}

func (nopSubmitter) ReturnToMenu() {}
