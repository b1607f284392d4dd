// Package report renders the user's progress and the canned recommendations
// as a Markdown document, and that document as HTML.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
	"github.com/felixgeelhaar/homewhisper/internal/interview"
	"github.com/felixgeelhaar/homewhisper/internal/recommend"
)

// Options controls report content.
type Options struct {
	// Area selects the highlighted neighborhood. Empty selects the first.
	Area string
	// GeneratedAt is printed in the header. Zero omits the line.
	GeneratedAt time.Time
}

// Markdown renders the report.
func Markdown(progress domain.ProgressTable, opts Options) string {
	var b strings.Builder

	b.WriteString("# Home Buying Assistant Report\n\n")
	if !opts.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "_Generated %s_\n\n", opts.GeneratedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "**%d/%d sections completed**\n\n", progress.CompletedCount(), domain.SectionCount)

	b.WriteString("## Your Answers\n\n")
	for _, section := range interview.Catalog() {
		p := progress[section.ID]
		fmt.Fprintf(&b, "### %s\n\n", section.Title)
		if !p.Completed {
			b.WriteString("_Not completed yet._\n\n")
			continue
		}
		b.WriteString("| Question | Answer |\n|---|---|\n")
		for _, q := range section.Questions {
			a, ok := p.Answers[q.ID]
			answer := "-"
			if ok {
				answer = q.FormatAnswer(a)
			}
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(q.Text), escapeCell(answer))
		}
		b.WriteString("\n")
	}

	results := recommend.ForProgress(progress)
	if len(results) == 0 {
		b.WriteString("Complete any section to get personalized recommendations.\n")
		return b.String()
	}

	b.WriteString("## Your Results\n\n")
	for _, r := range results {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n> %s\n\n", r.Title, r.Summary, r.Recommendation)
	}

	writeFull(&b, recommend.FullRecommendation(allAnswers(progress), opts.Area))
	return b.String()
}

func writeFull(b *strings.Builder, full recommend.Full) {
	area := full.Selected

	b.WriteString("## Full Area Recommendation\n\n")
	fmt.Fprintf(b, "### %s (%d%% match)\n\n%s\n\n", area.Name, area.Score, area.Description)
	for _, p := range area.KeyPoints {
		fmt.Fprintf(b, "- %s\n", p)
	}
	b.WriteString("\n")

	ids := recommend.AreaIDs()
	header := func(first string) {
		b.WriteString("| " + first + " |")
		for _, a := range full.Areas {
			b.WriteString(" " + a.Name + " |")
		}
		b.WriteString("\n|---|" + strings.Repeat("---:|", len(full.Areas)) + "\n")
	}

	b.WriteString("#### Area Comparison\n\n")
	header("Metric")
	for _, m := range full.Metrics {
		b.WriteString("| " + m.Name + " |")
		for _, id := range ids {
			fmt.Fprintf(b, " %d |", m.Scores[id])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n#### Monthly Prices\n\n")
	header("Unit")
	for _, row := range full.Prices {
		b.WriteString("| " + row.Unit + " |")
		for _, id := range ids {
			fmt.Fprintf(b, " %s |", interview.FormatCurrency(float64(row.Prices[id])))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n#### Your Home-Buying Journey\n\n")
	for _, p := range full.Journey {
		b.WriteString(p + "\n\n")
	}
	b.WriteString("#### Your Story\n\n")
	b.WriteString(full.Story + "\n")
}

func allAnswers(progress domain.ProgressTable) domain.AnswerSet {
	out := domain.AnswerSet{}
	for _, s := range domain.DataSections() {
		for id, a := range progress[s].Answers {
			out[id] = a
		}
	}
	return out
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// HTML converts a Markdown document to a standalone HTML page.
func HTML(markdown string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>Home Buying Assistant Report</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// WriteFile renders the report into path. The extension picks the format:
// .html/.htm for HTML, anything else for Markdown.
func WriteFile(path string, progress domain.ProgressTable, opts Options) error {
	content := []byte(Markdown(progress, opts))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		html, err := HTML(string(content))
		if err != nil {
			return err
		}
		content = html
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errs.Wrap(errs.ErrCodeFileWriteFailed, fmt.Sprintf("create directory for %s", path), err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errs.Wrap(errs.ErrCodeFileWriteFailed, fmt.Sprintf("write report %s", path), err)
	}
	return nil
}
