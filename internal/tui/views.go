package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	"github.com/felixgeelhaar/homewhisper/internal/interview"
	"github.com/felixgeelhaar/homewhisper/internal/recommend"
	"github.com/felixgeelhaar/homewhisper/internal/wizard"
)

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return "Your progress is saved. See you soon!\n"
	}
	if m.err != nil {
		return m.renderError()
	}
	if m.showWelcome {
		return m.renderWelcome()
	}

	switch m.wiz.View() {
	case wizard.ViewMenu:
		return m.renderMenu()
	case wizard.ViewQuestionnaire:
		return m.renderQuestionnaire()
	case wizard.ViewSectionResults:
		return m.renderSectionResults()
	case wizard.ViewAggregateResults:
		return m.renderAggregate()
	default:
		return "Unknown view"
	}
}

// renderError renders the error view
func (m *Model) renderError() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.Error.Render("Error: ") + m.err.Error())
	b.WriteString("\n\n")
	b.WriteString("Press any key to exit.\n")
	return b.String()
}

func (m *Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome to Home Whisperer"))
	b.WriteString("\n")
	b.WriteString("Hi there! Ready to explore the future of home buying?\n")
	b.WriteString("Let's discover the best places and properties for you!\n\n")
	b.WriteString(m.styles.Button.Render("Start Exploring"))
	b.WriteString("\n")
	b.WriteString(m.helpView(keys.Enter, keys.Quit))
	return m.styles.Border.Render(b.String())
}

func (m *Model) renderMenu() string {
	progress := m.wiz.Progress()
	completed := progress.CompletedCount()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Home Buying Assistant"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(
		"Complete any section to get personalized recommendations. Your progress is automatically saved."))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(float64(completed) / float64(domain.SectionCount)))
	b.WriteString(" ")
	b.WriteString(m.styles.Status.Render(fmt.Sprintf("%d/%d sections completed", completed, domain.SectionCount)))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		label := menuLabel(item)
		var badge string
		if item.IsData() {
			done := progress[item].Completed
			mark := "○"
			if done {
				mark = "✓"
			}
			badge = lipgloss.NewStyle().Foreground(statusColor(done)).Render(mark) + " "
		} else {
			badge = "★ "
		}

		line := badge + label
		if i == m.cursor {
			line = m.styles.Highlighted.Render("› " + badge + label)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.helpView(keys.Up, keys.Down, keys.Enter, keys.Results, keys.Quit))
	return b.String()
}

// menuLabel returns the menu entry text for a target.
func menuLabel(s domain.Section) string {
	if s == domain.TargetResults {
		return "View Results"
	}
	section, err := interview.Lookup(s)
	if err != nil {
		return s.String()
	}
	return section.MenuTitle
}

func (m *Model) renderQuestionnaire() string {
	if m.form == nil || m.trav == nil {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.trav.Section().Title))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.trav.Progress() / 100))
	b.WriteString("\n\n")
	b.WriteString(m.form.View())
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.helpView(keys.Enter, keys.Back, keys.ForceQuit))
	return b.String()
}

func (m *Model) renderSectionResults() string {
	section := m.wiz.Navigation().CurrentSection
	result := recommend.ForSection(section, m.wiz.SectionAnswers(section))

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(result.Title))
	b.WriteString("\n")
	b.WriteString(result.Summary)
	b.WriteString("\n\n")
	b.WriteString(m.styles.Quote.Render(result.Recommendation))
	b.WriteString("\n")
	b.WriteString(m.helpView(keys.Modify, keys.Menu, keys.Full, keys.Quit))
	return b.String()
}

func (m *Model) renderAggregate() string {
	ids := recommend.AreaIDs()
	full := recommend.FullRecommendation(m.wiz.AllAnswers(), ids[m.areaIndex%len(ids)])
	area := full.Selected

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your Personalized Home Recommendation"))
	b.WriteString("\n")

	for _, r := range recommend.ForProgress(m.wiz.Progress()) {
		b.WriteString(m.styles.Status.Render(r.Title))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(r.Recommendation))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tabs := make([]string, 0, len(full.Areas))
	for _, a := range full.Areas {
		if a.ID == area.ID {
			tabs = append(tabs, m.styles.Highlighted.Render(a.Name))
		} else {
			tabs = append(tabs, m.styles.Muted.Render(a.Name))
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Success.Render(fmt.Sprintf("%s · %d%% match", area.Name, area.Score)))
	b.WriteString("\n")
	b.WriteString(area.Description)
	b.WriteString("\n")
	for _, p := range area.KeyPoints {
		b.WriteString("  • " + p + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Status.Render("Your Home-Buying Journey"))
	b.WriteString("\n")
	for _, p := range full.Journey {
		b.WriteString(p)
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Status.Render("Your Story"))
	b.WriteString("\n")
	b.WriteString(m.styles.Quote.Render(full.Story))
	b.WriteString("\n")
	b.WriteString(m.helpView(keys.Left, keys.Right, keys.Menu, keys.Quit))
	return b.String()
}

func (m *Model) helpView(bindings ...key.Binding) string {
	return "\n" + m.help.ShortHelpView(bindings)
}
