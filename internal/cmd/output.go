package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	"github.com/felixgeelhaar/homewhisper/internal/interview"
	"github.com/felixgeelhaar/homewhisper/internal/recommend"
	"github.com/felixgeelhaar/homewhisper/internal/ux"
)

// StatusReport summarizes saved progress.
type StatusReport struct {
	Backend   string          `json:"backend" yaml:"backend"`
	DataDir   string          `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`
	Completed int             `json:"completed" yaml:"completed"`
	Total     int             `json:"total" yaml:"total"`
	Sections  []SectionStatus `json:"sections" yaml:"sections"`
}

// SectionStatus is one row of the status report.
type SectionStatus struct {
	Section   domain.Section `json:"section" yaml:"section"`
	Title     string         `json:"title" yaml:"title"`
	Completed bool           `json:"completed" yaml:"completed"`
	Answered  int            `json:"answered" yaml:"answered"`
	Questions int            `json:"questions" yaml:"questions"`
}

func newStatusReport(progress domain.ProgressTable, backend, dataDir string) StatusReport {
	r := StatusReport{
		Backend:   backend,
		DataDir:   dataDir,
		Completed: progress.CompletedCount(),
		Total:     domain.SectionCount,
	}
	for _, section := range interview.Catalog() {
		r.Sections = append(r.Sections, SectionStatus{
			Section:   section.ID,
			Title:     section.MenuTitle,
			Completed: progress[section.ID].Completed,
			Answered:  len(progress[section.ID].Answers),
			Questions: len(section.Questions),
		})
	}
	return r
}

// WriteText renders the report for humans.
func (r StatusReport) WriteText(w io.Writer, p *ux.Palette) error {
	p.Title.Fprintln(w, "Home Buying Assistant")
	fmt.Fprintf(w, "%d/%d sections completed\n\n", r.Completed, r.Total)
	for _, s := range r.Sections {
		if s.Completed {
			p.Success.Fprint(w, "  ✓ ")
		} else {
			p.Muted.Fprint(w, "  ○ ")
		}
		fmt.Fprintf(w, "%-16s %d/%d answered\n", s.Title, s.Answered, s.Questions)
	}
	fmt.Fprintln(w)
	p.Muted.Fprintf(w, "Store: %s", r.Backend)
	if r.DataDir != "" && r.Backend != "memory" {
		p.Muted.Fprintf(w, " (%s)", r.DataDir)
	}
	fmt.Fprintln(w)
	return nil
}

// AnswersReport lists stored answers, flat or grouped by section.
type AnswersReport struct {
	Answers   domain.AnswerSet                    `json:"answers,omitempty" yaml:"answers,omitempty"`
	BySection map[domain.Section]domain.AnswerSet `json:"by_section,omitempty" yaml:"by_section,omitempty"`
}

// WriteText renders answers with question text and option labels.
func (r AnswersReport) WriteText(w io.Writer, p *ux.Palette) error {
	total := len(r.Answers)
	for _, answers := range r.BySection {
		total += len(answers)
	}
	if total == 0 {
		p.Warning.Fprintln(w, "No answers saved yet. Run 'homewhisper start' to begin.")
		return nil
	}

	for _, section := range interview.Catalog() {
		answers := r.Answers
		if r.BySection != nil {
			answers = r.BySection[section.ID]
			if len(answers) == 0 {
				continue
			}
			p.Title.Fprintln(w, section.Title)
		}
		for _, q := range section.Questions {
			a, ok := answers[q.ID]
			if !ok {
				continue
			}
			p.Muted.Fprintf(w, "  %s ", q.Text)
			fmt.Fprintln(w, q.FormatAnswer(a))
		}
		if r.BySection != nil {
			fmt.Fprintln(w)
		}
	}
	return nil
}

// ResultsReport holds section results and, for the aggregate view, the full
// area recommendation.
type ResultsReport struct {
	Results []recommend.SectionResult `json:"results" yaml:"results"`
	Full    *recommend.Full           `json:"full,omitempty" yaml:"full,omitempty"`
}

// WriteText renders results the way the results screens do.
func (r ResultsReport) WriteText(w io.Writer, p *ux.Palette) error {
	for _, res := range r.Results {
		writeSectionResult(w, p, res)
	}
	if r.Full != nil {
		writeFull(w, p, *r.Full)
	}
	return nil
}

func writeSectionResult(w io.Writer, p *ux.Palette, r recommend.SectionResult) {
	p.Title.Fprintln(w, r.Title)
	fmt.Fprintln(w, r.Summary)
	p.Accent.Fprintf(w, "> %s\n\n", r.Recommendation)
}

func writeFull(w io.Writer, p *ux.Palette, full recommend.Full) {
	area := full.Selected
	p.Title.Fprintln(w, "Your Personalized Home Recommendation")

	names := make([]string, 0, len(full.Areas))
	for _, a := range full.Areas {
		if a.ID == area.ID {
			names = append(names, "["+a.Name+"]")
		} else {
			names = append(names, a.Name)
		}
	}
	p.Muted.Fprintln(w, strings.Join(names, "  "))
	fmt.Fprintln(w)

	p.Success.Fprintf(w, "%s (%d%% match)\n", area.Name, area.Score)
	fmt.Fprintln(w, area.Description)
	for _, k := range area.KeyPoints {
		fmt.Fprintf(w, "  • %s\n", k)
	}
	fmt.Fprintln(w)

	p.Title.Fprintln(w, "Your Home-Buying Journey")
	for _, para := range full.Journey {
		fmt.Fprintln(w, para)
		fmt.Fprintln(w)
	}

	p.Title.Fprintln(w, "Your Story")
	fmt.Fprintln(w, full.Story)
	fmt.Fprintln(w)
}

// SectionsReport lists the questionnaire catalog.
type SectionsReport struct {
	Sections []interview.Section `json:"sections" yaml:"sections"`
}

// WriteText renders each section with its questions.
func (r SectionsReport) WriteText(w io.Writer, p *ux.Palette) error {
	for i, s := range r.Sections {
		p.Title.Fprintf(w, "%d. %s", i+1, s.MenuTitle)
		p.Muted.Fprintf(w, " (%s)\n", s.ID)
		fmt.Fprintf(w, "   %s\n", s.Description)
		for _, q := range s.Questions {
			fmt.Fprintf(w, "   - %s", q.Text)
			p.Muted.Fprintf(w, " [%s %s]\n", q.ID, q.Type)
		}
		fmt.Fprintln(w)
	}
	return nil
}
