package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/felixgeelhaar/homewhisper/internal/domain"
)

func completedTable() domain.ProgressTable {
	table := domain.NewProgressTable()
	table[domain.SectionBasic] = domain.SectionProgress{Completed: true, Answers: domain.AnswerSet{
		"budget":      domain.Slider(500000),
		"location":    domain.Single("downtown"),
		"features":    domain.Multi("garden", "pool"),
		"buildingAge": domain.Single("new"),
	}}
	return table
}

func TestMarkdownEmptyProgress(t *testing.T) {
	md := Markdown(domain.NewProgressTable(), Options{})

	assert.Contains(t, md, "**0/5 sections completed**")
	assert.Equal(t, 5, strings.Count(md, "_Not completed yet._"))
	assert.NotContains(t, md, "## Full Area Recommendation")
	assert.NotContains(t, md, "_Generated")
}

func TestMarkdownCompletedSection(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	md := Markdown(completedTable(), Options{Area: "suburbs", GeneratedAt: at})

	assert.Contains(t, md, "_Generated 2026-03-01 09:30_")
	assert.Contains(t, md, "**1/5 sections completed**")
	assert.Contains(t, md, "| What is your budget range? | $500,000 |")
	assert.Contains(t, md, "| What features are important to you? | Garden/Yard, Swimming Pool |")
	assert.Contains(t, md, "### Your Ideal Home Profile")
	assert.Contains(t, md, "### Suburbs (68% match)")
	assert.Contains(t, md, "| Studio | $1,850 | $2,200 | $1,650 | $1,450 |")
	assert.Contains(t, md, "| Price Match | 80 | 60 | 90 | 95 |")
}

func TestMarkdownParsesIntoExpectedHeadings(t *testing.T) {
	src := []byte(Markdown(completedTable(), Options{}))
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var h2 []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == 2 {
			h2 = append(h2, string(h.Text(src)))
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Your Answers", "Your Results", "Full Area Recommendation"}, h2)
}

func TestHTML(t *testing.T) {
	html, err := HTML(Markdown(completedTable(), Options{}))
	require.NoError(t, err)

	out := string(html)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<h1>Home Buying Assistant Report</h1>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>$500,000</td>")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	mdPath := filepath.Join(dir, "out", "report.md")
	require.NoError(t, WriteFile(mdPath, completedTable(), Options{}))
	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(md), "# Home Buying Assistant Report"))

	htmlPath := filepath.Join(dir, "report.html")
	require.NoError(t, WriteFile(htmlPath, completedTable(), Options{}))
	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<html")
}
