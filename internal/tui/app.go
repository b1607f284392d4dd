package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	"github.com/felixgeelhaar/homewhisper/internal/interview"
	"github.com/felixgeelhaar/homewhisper/internal/log"
	"github.com/felixgeelhaar/homewhisper/internal/recommend"
	"github.com/felixgeelhaar/homewhisper/internal/wizard"
)

// menuItems are the menu entries: the data sections, then results.
var menuItems = append(domain.DataSections(), domain.TargetResults)

// Model is the Bubble Tea application. It renders whatever the wizard
// controller's navigation state says and forwards user input to it.
type Model struct {
	ctx    context.Context
	wiz    *wizard.Controller
	logger *log.Logger

	// Questionnaire state
	trav   *interview.Traversal
	form   *huh.Form
	values fieldValues

	// UI state
	showWelcome bool
	cursor      int
	areaIndex   int
	notice      string
	width       int
	height      int
	quitting    bool
	err         error

	bar    progress.Model
	help   help.Model
	styles Styles
}

// Options configures a Model.
type Options struct {
	// DefaultArea is the neighborhood shown first in the full recommendation
	DefaultArea string
	Logger      *log.Logger
}

// NewModel creates the application model. The controller must already be
// initialized.
func NewModel(ctx context.Context, wiz *wizard.Controller, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}

	m := &Model{
		ctx:         ctx,
		wiz:         wiz,
		logger:      logger,
		showWelcome: !wiz.WelcomeSeen(),
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
		help:        help.New(),
		styles:      DefaultStyles(),
	}
	for i, id := range recommend.AreaIDs() {
		if id == opts.DefaultArea {
			m.areaIndex = i
		}
	}

	// A questionnaire left open in the controller resumes here.
	if wiz.View() == wizard.ViewQuestionnaire {
		if err := m.startQuestionnaire(); err != nil {
			m.err = err
		}
	}
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.err != nil {
			return m, tea.Quit
		}
		if m.showWelcome {
			return m.updateWelcome(msg)
		}
		switch m.wiz.View() {
		case wizard.ViewMenu:
			return m.updateMenu(msg)
		case wizard.ViewQuestionnaire:
			return m.updateQuestionnaire(msg)
		case wizard.ViewSectionResults:
			return m.updateSectionResults(msg)
		case wizard.ViewAggregateResults:
			return m.updateAggregate(msg)
		}
		return m, nil
	}

	if m.form != nil && m.wiz.View() == wizard.ViewQuestionnaire {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter):
		m.showWelcome = false
		m.wiz.AcknowledgeWelcome(m.ctx)
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Enter):
		return m.selectTarget(menuItems[m.cursor])
	case key.Matches(msg, keys.Results):
		return m.selectTarget(domain.TargetResults)
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// selectTarget navigates from the menu to a section or the results.
func (m *Model) selectTarget(target domain.Section) (tea.Model, tea.Cmd) {
	m.notice = ""
	if err := m.wiz.SelectSection(target); err != nil {
		if errors.Is(err, wizard.ErrNoCompletedSections) {
			m.notice = "Please complete at least one section first"
			return m, nil
		}
		m.notice = err.Error()
		return m, nil
	}
	if target.IsData() {
		if err := m.startQuestionnaire(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.form.Init()
	}
	return m, nil
}

// startQuestionnaire opens a traversal for the controller's current section.
func (m *Model) startQuestionnaire() error {
	trav, err := m.wiz.Traversal()
	if err != nil {
		return fmt.Errorf("start questionnaire: %w", err)
	}
	m.trav = trav
	return m.rebuildForm()
}

func (m *Model) rebuildForm() error {
	form, err := newQuestionForm(m.trav, &m.values)
	if err != nil {
		return fmt.Errorf("create question form: %w", err)
	}
	m.form = form
	return nil
}

func (m *Model) updateQuestionnaire(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Back) {
		return m.retreat()
	}
	return m.updateForm(msg)
}

// updateForm forwards msg to the huh form and records the answer once the
// form completes.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m, m.answer(m.values.answer(m.trav.Current()))
	}
	return m, cmd
}

// answer records a for the current question and advances the traversal.
func (m *Model) answer(a domain.Answer) tea.Cmd {
	m.notice = ""
	if err := m.trav.RecordAnswer(m.trav.Current().ID, a); err != nil {
		m.notice = err.Error()
		return m.refreshForm()
	}

	outcome, err := m.trav.Advance(m.ctx)
	if err != nil {
		m.logger.WithError(err).WarnContext(m.ctx, "section submit failed",
			"section", m.trav.Section().ID.String())
		m.notice = err.Error()
		return m.refreshForm()
	}

	switch outcome {
	case interview.OutcomeStepped, interview.OutcomeBlocked:
		return m.refreshForm()
	default:
		m.trav = nil
		m.form = nil
		return nil
	}
}

// retreat steps back one question, or to the menu from the first one.
func (m *Model) retreat() (tea.Model, tea.Cmd) {
	m.notice = ""
	if m.trav.Retreat() == interview.OutcomeExitToMenu {
		m.trav = nil
		m.form = nil
		return m, nil
	}
	return m, m.refreshForm()
}

func (m *Model) refreshForm() tea.Cmd {
	if err := m.rebuildForm(); err != nil {
		m.err = err
		return nil
	}
	return m.form.Init()
}

func (m *Model) updateSectionResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Modify):
		m.wiz.ModifyAnswers()
		if err := m.startQuestionnaire(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.form.Init()
	case key.Matches(msg, keys.Menu), key.Matches(msg, keys.Back):
		m.wiz.ReturnToMenu()
	case key.Matches(msg, keys.Full):
		return m.selectTarget(domain.TargetResults)
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateAggregate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := recommend.AreaIDs()
	switch {
	case key.Matches(msg, keys.Left):
		m.areaIndex = (m.areaIndex + len(ids) - 1) % len(ids)
	case key.Matches(msg, keys.Right):
		m.areaIndex = (m.areaIndex + 1) % len(ids)
	case key.Matches(msg, keys.Menu), key.Matches(msg, keys.Back), key.Matches(msg, keys.Modify):
		m.wiz.ModifyAnswers()
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// Err returns the error that stopped the model, if any.
func (m *Model) Err() error { return m.err }

// Run starts the TUI and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, wiz *wizard.Controller, altScreen bool, opts Options) error {
	model := NewModel(ctx, wiz, opts)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run TUI: %w", err)
	}

	m, ok := finalModel.(*Model)
	if !ok {
		return fmt.Errorf("invalid final model type")
	}
	return m.err
}
