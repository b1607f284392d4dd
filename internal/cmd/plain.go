package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	"github.com/felixgeelhaar/homewhisper/internal/interview"
	"github.com/felixgeelhaar/homewhisper/internal/recommend"
	"github.com/felixgeelhaar/homewhisper/internal/ux"
	"github.com/felixgeelhaar/homewhisper/internal/wizard"
)

// errQuit ends the line-mode loop.
var errQuit = errors.New("quit")

// plainRunner drives the wizard from text lines. It renders the same
// screens as the TUI, one prompt at a time.
type plainRunner struct {
	wiz         *wizard.Controller
	in          *bufio.Scanner
	out         io.Writer
	p           *ux.Palette
	defaultArea string
	areaIndex   int
}

func newPlainRunner(wiz *wizard.Controller, in io.Reader, out io.Writer, p *ux.Palette) *plainRunner {
	return &plainRunner{
		wiz: wiz,
		in:  bufio.NewScanner(in),
		out: out,
		p:   p,
	}
}

// Run loops until the user quits, input ends or ctx is canceled.
func (r *plainRunner) Run(ctx context.Context) error {
	for i, id := range recommend.AreaIDs() {
		if id == r.defaultArea {
			r.areaIndex = i
		}
	}

	if !r.wiz.WelcomeSeen() {
		r.p.Title.Fprintln(r.out, "Welcome to Home Whisperer")
		fmt.Fprintln(r.out, "Hi there! Ready to explore the future of home buying? Let's discover the best places and properties for you!")
		fmt.Fprintln(r.out)
		r.wiz.AcknowledgeWelcome(ctx)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch r.wiz.View() {
		case wizard.ViewMenu:
			err = r.menu()
		case wizard.ViewQuestionnaire:
			err = r.questionnaire(ctx)
		case wizard.ViewSectionResults:
			err = r.sectionResults()
		case wizard.ViewAggregateResults:
			err = r.aggregate()
		}

		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			fmt.Fprintln(r.out, "Your progress is saved. See you soon!")
			return nil
		case err != nil:
			return err
		}
	}
}

// readLine prompts and returns the trimmed next line.
func (r *plainRunner) readLine(prompt string) (string, error) {
	r.p.Accent.Fprint(r.out, prompt)
	if !r.in.Scan() {
		fmt.Fprintln(r.out)
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func (r *plainRunner) menu() error {
	progress := r.wiz.Progress()

	r.p.Title.Fprintln(r.out, "Home Buying Assistant")
	fmt.Fprintln(r.out, "Complete any section to get personalized recommendations. Your progress is automatically saved.")
	fmt.Fprintf(r.out, "%d/%d sections completed\n\n", progress.CompletedCount(), domain.SectionCount)

	for i, section := range interview.Catalog() {
		mark := "○"
		if progress[section.ID].Completed {
			mark = "✓"
		}
		fmt.Fprintf(r.out, "  %d. %s %s\n", i+1, mark, section.MenuTitle)
	}
	fmt.Fprintf(r.out, "  %d. ★ View Results\n", domain.SectionCount+1)
	fmt.Fprintln(r.out)

	line, err := r.readLine("Choose a section (1-6, r for results, q to quit): ")
	if err != nil {
		return err
	}

	var target domain.Section
	switch strings.ToLower(line) {
	case "q", "quit":
		return errQuit
	case "r", "results", strconv.Itoa(domain.SectionCount + 1):
		target = domain.TargetResults
	default:
		n, convErr := strconv.Atoi(line)
		sections := domain.DataSections()
		if convErr != nil || n < 1 || n > len(sections) {
			if parsed, parseErr := domain.ParseSection(line); parseErr == nil {
				target = parsed
				break
			}
			r.p.Warning.Fprintf(r.out, "Unknown choice %q\n\n", line)
			return nil
		}
		target = sections[n-1]
	}

	if err := r.wiz.SelectSection(target); err != nil {
		if errors.Is(err, wizard.ErrNoCompletedSections) {
			r.p.Warning.Fprintln(r.out, "Please complete at least one section first")
			fmt.Fprintln(r.out)
			return nil
		}
		r.p.Warning.Fprintf(r.out, "%v\n\n", err)
	}
	return nil
}

func (r *plainRunner) questionnaire(ctx context.Context) error {
	trav, err := r.wiz.Traversal()
	if err != nil {
		return err
	}

	r.p.Title.Fprintln(r.out, trav.Section().Title)
	r.p.Muted.Fprintln(r.out, "Type 'back' for the previous question or 'menu' to leave.")

	for !trav.Done() {
		q := trav.Current()
		fmt.Fprintln(r.out)
		r.p.Muted.Fprintf(r.out, "Question %d/%d (%d%%)\n", trav.Step()+1, trav.Len(), int(trav.Progress()))
		fmt.Fprintln(r.out, q.Text)
		r.printChoices(q, trav)

		line, err := r.readLine("> ")
		if err != nil {
			trav.Abandon()
			return err
		}

		switch strings.ToLower(line) {
		case "back":
			trav.Retreat()
			continue
		case "menu":
			trav.Abandon()
			continue
		}

		if line != "" {
			a, err := parseAnswer(q, line)
			if err != nil {
				r.p.Error.Fprintln(r.out, err)
				continue
			}
			if err := trav.RecordAnswer(q.ID, a); err != nil {
				r.p.Error.Fprintln(r.out, err)
				continue
			}
		}

		outcome, err := trav.Advance(ctx)
		switch {
		case err != nil:
			r.p.Error.Fprintln(r.out, err)
		case outcome == interview.OutcomeBlocked:
			r.p.Warning.Fprintln(r.out, "Please choose an answer to continue")
		}
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *plainRunner) printChoices(q interview.Question, trav *interview.Traversal) {
	current, hasCurrent := trav.CurrentAnswer()

	switch q.Type {
	case interview.QuestionTypeSlider:
		values := q.SliderValues()
		fmt.Fprintf(r.out, "  Range %s to %s in steps of %s\n",
			q.FormatValue(values[0]), q.FormatValue(values[len(values)-1]), strconv.FormatFloat(q.Step, 'f', -1, 64))
	default:
		for i, o := range q.Options {
			fmt.Fprintf(r.out, "  %d. %s\n", i+1, o.Label)
		}
		if q.Type == interview.QuestionTypeCheckbox {
			r.p.Muted.Fprintln(r.out, "  Separate several choices with commas")
		}
	}

	if hasCurrent && current.IsSet() {
		r.p.Muted.Fprintf(r.out, "  Current: %s (press enter to keep)\n", q.FormatAnswer(current))
	}
}

// parseAnswer reads a line as an answer to q. Options may be given by
// number, value or label.
func parseAnswer(q interview.Question, line string) (domain.Answer, error) {
	switch q.Type {
	case interview.QuestionTypeSlider:
		cleaned := strings.NewReplacer("$", "", ",", "", "min", "").Replace(line)
		v, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
		if err != nil {
			return domain.Answer{}, fmt.Errorf("%q is not a number", line)
		}
		return domain.Slider(v), nil

	case interview.QuestionTypeCheckbox:
		var values []string
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := parseOption(q, part)
			if err != nil {
				return domain.Answer{}, err
			}
			values = append(values, v)
		}
		return domain.Multi(values...), nil

	default:
		v, err := parseOption(q, line)
		if err != nil {
			return domain.Answer{}, err
		}
		return domain.Single(v), nil
	}
}

func parseOption(q interview.Question, s string) (string, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(q.Options) {
			return "", fmt.Errorf("choose a number between 1 and %d", len(q.Options))
		}
		return q.Options[n-1].Value, nil
	}
	for _, o := range q.Options {
		if strings.EqualFold(o.Value, s) || strings.EqualFold(o.Label, s) {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("unknown option %q", s)
}

func (r *plainRunner) sectionResults() error {
	section := r.wiz.Navigation().CurrentSection
	writeSectionResult(r.out, r.p, recommend.ForSection(section, r.wiz.SectionAnswers(section)))

	line, err := r.readLine("[b] modify answers  [m] menu  [f] full recommendation  [q] quit: ")
	if err != nil {
		return err
	}
	switch strings.ToLower(line) {
	case "b":
		r.wiz.ModifyAnswers()
	case "m", "":
		r.wiz.ReturnToMenu()
	case "f":
		return r.wiz.SelectSection(domain.TargetResults)
	case "q":
		return errQuit
	}
	return nil
}

func (r *plainRunner) aggregate() error {
	ids := recommend.AreaIDs()
	for _, res := range recommend.ForProgress(r.wiz.Progress()) {
		writeSectionResult(r.out, r.p, res)
	}
	writeFull(r.out, r.p, recommend.FullRecommendation(r.wiz.AllAnswers(), ids[r.areaIndex]))

	line, err := r.readLine("[n] next area  [p] previous area  [m] menu  [q] quit: ")
	if err != nil {
		return err
	}
	switch strings.ToLower(line) {
	case "n":
		r.areaIndex = (r.areaIndex + 1) % len(ids)
	case "p":
		r.areaIndex = (r.areaIndex + len(ids) - 1) % len(ids)
	case "m", "":
		r.wiz.ModifyAnswers()
	case "q":
		return errQuit
	}
	return nil
}
