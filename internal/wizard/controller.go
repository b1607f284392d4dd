// Package wizard owns the questionnaire's navigation and progress state.
//
// The Controller is the single writer of both the in-memory progress table
// and its persisted snapshot. Views read its state and drive it through the
// operations below; a questionnaire traversal reaches it through the
// interview.Submitter interface.
package wizard

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
	"github.com/felixgeelhaar/homewhisper/internal/interview"
	"github.com/felixgeelhaar/homewhisper/internal/log"
	"github.com/felixgeelhaar/homewhisper/internal/storage"
)

// Store keys.
const (
	ProgressKey = "sectionProgress"
	WelcomeKey  = "hasSeenWelcome"
)

// ErrNoCompletedSections is returned when results are requested before any
// section was submitted. It is a notice for the user, not a failure.
var ErrNoCompletedSections = errs.NewNoCompletedSectionsError()

// View is the screen derived from the navigation state.
type View int

const (
	ViewMenu View = iota
	ViewQuestionnaire
	ViewSectionResults
	ViewAggregateResults
)

// String returns the string representation
func (v View) String() string {
	switch v {
	case ViewQuestionnaire:
		return "questionnaire"
	case ViewSectionResults:
		return "section-results"
	case ViewAggregateResults:
		return "aggregate-results"
	default:
		return "menu"
	}
}

// Controller is the wizard state machine.
type Controller struct {
	store     storage.Store
	logger    *log.Logger
	sessionID string

	progress    domain.ProgressTable
	nav         domain.Navigation
	welcomeSeen bool
}

var _ interview.Submitter = (*Controller)(nil)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller over store. Call Initialize before use.
func New(store storage.Store, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		logger:    log.Discard(),
		sessionID: uuid.New().String(),
		progress:  domain.NewProgressTable(),
		nav:       domain.HomeNavigation(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session_id", c.sessionID)
	return c
}

// SessionID identifies this run in log output.
func (c *Controller) SessionID() string { return c.sessionID }

// Initialize reads the stored snapshot once. An absent, unreadable or
// malformed snapshot yields the default table; the problem is logged and
// never returned. Navigation always starts at the menu.
func (c *Controller) Initialize(ctx context.Context) {
	c.nav = domain.HomeNavigation()
	c.progress = c.loadProgress(ctx)
	c.welcomeSeen = c.loadWelcome(ctx)

	c.logger.InfoContext(ctx, "wizard initialized",
		"completed", c.progress.CompletedCount(),
		"welcome_seen", c.welcomeSeen)
}

func (c *Controller) loadProgress(ctx context.Context) domain.ProgressTable {
	data, err := c.store.Load(ctx, ProgressKey)
	if errors.Is(err, storage.ErrNotFound) {
		c.logger.DebugContext(ctx, "no stored progress, starting fresh")
		return domain.NewProgressTable()
	}
	if err != nil {
		c.logger.WithError(err).WarnContext(ctx, "failed to read stored progress, starting fresh")
		return domain.NewProgressTable()
	}

	table, err := DecodeProgress(data)
	if err != nil {
		c.logger.WithError(err).WarnContext(ctx, "discarding malformed progress snapshot")
		return domain.NewProgressTable()
	}
	return table
}

func (c *Controller) loadWelcome(ctx context.Context) bool {
	data, err := c.store.Load(ctx, WelcomeKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.WithError(err).WarnContext(ctx, "failed to read welcome flag")
		}
		return false
	}
	return string(data) == "true"
}

// Navigation returns the current navigation state.
func (c *Controller) Navigation() domain.Navigation { return c.nav }

// View derives the screen to display.
func (c *Controller) View() View {
	switch {
	case c.nav.ShowResults && c.nav.CurrentSection.IsData():
		return ViewSectionResults
	case c.nav.ShowResults:
		return ViewAggregateResults
	case c.nav.CurrentSection.IsData():
		return ViewQuestionnaire
	default:
		return ViewMenu
	}
}

// Progress returns a deep copy of the progress table.
func (c *Controller) Progress() domain.ProgressTable { return c.progress.Clone() }

// SectionAnswers returns a copy of the stored answers of one section.
func (c *Controller) SectionAnswers(section domain.Section) domain.AnswerSet {
	return c.progress[section].Answers.Clone()
}

// CompletedCount returns the number of completed sections.
func (c *Controller) CompletedCount() int { return c.progress.CompletedCount() }

// SelectSection navigates from the menu. A data section opens its
// questionnaire. The results target opens the aggregate results if at least
// one section is completed, otherwise it returns ErrNoCompletedSections and
// leaves the state unchanged. Any other target is rejected.
func (c *Controller) SelectSection(target domain.Section) error {
	switch {
	case target.IsData():
		c.nav = domain.Navigation{CurrentSection: target}
		return nil
	case target == domain.TargetResults:
		if c.progress.CompletedCount() == 0 {
			return ErrNoCompletedSections
		}
		c.nav = domain.Navigation{CurrentSection: domain.SectionMain, ShowResults: true}
		return nil
	default:
		return errs.NewInvalidTargetError(string(target))
	}
}

// ReturnToMenu goes back to the menu from anywhere.
func (c *Controller) ReturnToMenu() {
	c.nav = domain.HomeNavigation()
}

// ModifyAnswers reopens the questionnaire of the section whose results are
// shown. From the aggregate results it returns to the menu.
func (c *Controller) ModifyAnswers() {
	if c.nav.ShowResults && c.nav.CurrentSection.IsData() {
		c.nav.ShowResults = false
		return
	}
	c.ReturnToMenu()
}

// SubmitSectionAnswers replaces the section's record with a completed one
// holding exactly answers, shows that section's results and persists the
// table. Persistence is best effort: a failed write is logged and the
// in-memory state stays authoritative.
func (c *Controller) SubmitSectionAnswers(ctx context.Context, section domain.Section, answers domain.AnswerSet) error {
	if !section.IsData() {
		return errs.NewInvalidTargetError(string(section))
	}
	if err := interview.ValidateAnswerSet(section, answers); err != nil {
		return err
	}

	c.progress[section] = domain.SectionProgress{Completed: true, Answers: answers.Clone()}
	c.nav = domain.Navigation{CurrentSection: section, ShowResults: true}

	c.logger.InfoContext(ctx, "section submitted",
		"section", section.String(),
		"completed", c.progress.CompletedCount())

	c.persist(ctx)
	return nil
}

// Traversal starts the questionnaire for the current section, seeded with
// its stored answers.
func (c *Controller) Traversal() (*interview.Traversal, error) {
	if c.View() != ViewQuestionnaire {
		return nil, errs.NewInvalidTargetError(string(c.nav.CurrentSection))
	}
	section := c.nav.CurrentSection
	return interview.NewTraversal(section, c.progress[section].Answers, c)
}

// AllAnswers folds every section's answers into one map in menu order.
// A question id used by two sections keeps the later section's answer;
// AnswersBySection has no such collisions.
func (c *Controller) AllAnswers() domain.AnswerSet {
	out := domain.AnswerSet{}
	for _, s := range domain.DataSections() {
		for id, a := range c.progress[s].Answers.Clone() {
			out[id] = a
		}
	}
	return out
}

// AnswersBySection returns every section's answers keyed by section.
func (c *Controller) AnswersBySection() map[domain.Section]domain.AnswerSet {
	out := make(map[domain.Section]domain.AnswerSet, domain.SectionCount)
	for _, s := range domain.DataSections() {
		out[s] = c.progress[s].Answers.Clone()
	}
	return out
}

// Reset wipes every section back to the default and persists the result.
// Unlike submission, a failed write is returned because the user asked for it.
func (c *Controller) Reset(ctx context.Context) error {
	c.progress = domain.NewProgressTable()
	c.nav = domain.HomeNavigation()

	data, err := EncodeProgress(c.progress)
	if err != nil {
		return err
	}
	if err := c.store.Save(ctx, ProgressKey, data); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "progress reset")
	return nil
}

// WelcomeSeen reports whether the welcome screen was acknowledged.
func (c *Controller) WelcomeSeen() bool { return c.welcomeSeen }

// AcknowledgeWelcome records that the welcome screen was dismissed.
func (c *Controller) AcknowledgeWelcome(ctx context.Context) {
	c.welcomeSeen = true
	if err := c.store.Save(ctx, WelcomeKey, []byte("true")); err != nil {
		c.logger.WithError(err).WarnContext(ctx, "failed to persist welcome flag")
	}
}

func (c *Controller) persist(ctx context.Context) {
	data, err := EncodeProgress(c.progress)
	if err != nil {
		c.logger.WithError(err).ErrorContext(ctx, "failed to encode progress")
		return
	}
	if err := c.store.Save(ctx, ProgressKey, data); err != nil {
		c.logger.WithError(err).WarnContext(ctx, "failed to persist progress", "key", ProgressKey)
	}
}
