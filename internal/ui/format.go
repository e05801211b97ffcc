// ABOUTME: Terminal UI formatting for wordcloud output.
// ABOUTME: Uses fatih/color for styling, go-pretty for tables and glamour for markdown.

package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/wordcloud/internal/layout"
	"github.com/harper/wordcloud/internal/models"
	"github.com/harper/wordcloud/internal/palette"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// ConfigureColor turns color off unless fd is a terminal. force keeps it on.
func ConfigureColor(fd uintptr, force bool) {
	color.NoColor = !force && !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func Warning(msg string) string {
	return color.New(color.FgYellow).Sprint("! ") + msg
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

// FormatSummary renders the most frequent word line and totals.
func FormatSummary(mf *models.MostFrequent, total, unique int) string {
	var sb strings.Builder

	if mf != nil {
		sb.WriteString(fmt.Sprintf("%s %s %s",
			faint("Most frequent word:"),
			bold(mf.Word),
			faint(fmt.Sprintf("(%d %s)", mf.Count, models.Plural(mf.Count, "time", "times")))))
		if mf.IsTie {
			sb.WriteString(" " + cyan("(tie)"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("%s %d  %s %d\n",
		faint("Words:"), total,
		faint("Unique:"), unique))

	return sb.String()
}

// FormatFrequencyTable lists entries in the given order.
func FormatFrequencyTable(entries []models.FrequencyEntry) string {
	if len(entries) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Word", "Count"})
	for i, e := range entries {
		tw.AppendRow(table.Row{i + 1, e.Word, e.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// FormatBarChart draws one horizontal bar per entry, scaled so the largest
// count spans barWidth cells.
func FormatBarChart(entries []models.FrequencyEntry, barWidth int) string {
	if len(entries) == 0 || barWidth <= 0 {
		return ""
	}

	maxCount := 0
	for _, e := range entries {
		maxCount = max(maxCount, e.Count)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateHeader = false
	for _, e := range entries {
		cells := e.Count * barWidth / maxCount
		if cells == 0 {
			cells = 1
		}
		tw.AppendRow(table.Row{e.Word, cyan(strings.Repeat("█", cells)), e.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})

	return tw.Render()
}

// FormatPreview prints styled words in their own colors, wrapped at width
// columns. The emphasised word is bold and underlined.
func FormatPreview(res layout.Result, width int) string {
	if res.Empty || len(res.Words) == 0 {
		return faint(layout.Placeholder) + "\n"
	}

	var sb strings.Builder
	col := 0
	for _, w := range res.Words {
		n := utf8.RuneCountInString(w.Word)
		if col > 0 && col+1+n > width {
			sb.WriteString("\n")
			col = 0
		}
		if col > 0 {
			sb.WriteString(" ")
			col++
		}
		sb.WriteString(wordColor(w).Sprint(w.Word))
		col += n
	}
	sb.WriteString("\n")

	return sb.String()
}

func wordColor(w models.StyledWord) *color.Color {
	c := color.New()
	if parsed, err := palette.Parse(w.Color); err == nil {
		r, g, b := parsed.RGB255()
		c = color.RGB(int(r), int(g), int(b))
	}
	if w.Emphasis {
		c.Add(color.Bold, color.Underline)
	}
	return c
}

// FormatReport renders a markdown report for the terminal.
func FormatReport(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

// FormatStopwords lists words in columns of the given count.
func FormatStopwords(words []string, columns int) string {
	if columns < 1 {
		columns = 1
	}

	widest := 0
	for _, w := range words {
		widest = max(widest, utf8.RuneCountInString(w))
	}

	var sb strings.Builder
	for i, w := range words {
		sb.WriteString(fmt.Sprintf("  %-*s", widest, w))
		if (i+1)%columns == 0 || i == len(words)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
