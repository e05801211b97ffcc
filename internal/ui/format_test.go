// ABOUTME: Tests for terminal UI formatting functions.
// ABOUTME: Validates summaries, tables, previews and markdown rendering.

package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harper/wordcloud/internal/layout"
	"github.com/harper/wordcloud/internal/models"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestMessages(t *testing.T) {
	withoutColor(t)

	if got := Success("saved"); got != "✓ saved" {
		t.Errorf("Success = %q", got)
	}
	if got := Error("failed"); got != "✗ failed" {
		t.Errorf("Error = %q", got)
	}
	if got := Warning("careful"); got != "! careful" {
		t.Errorf("Warning = %q", got)
	}
}

func TestFormatSummary(t *testing.T) {
	withoutColor(t)

	output := FormatSummary(&models.MostFrequent{Word: "cat", Count: 2, IsTie: true}, 5, 3)

	for _, want := range []string{"cat", "(2 times)", "(tie)", "Words: 5", "Unique: 3"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}

	output = FormatSummary(nil, 0, 0)
	if strings.Contains(output, "Most frequent") {
		t.Error("nil summary should omit the most frequent line")
	}
}

func TestFormatFrequencyTable(t *testing.T) {
	entries := []models.FrequencyEntry{
		{Word: "work", Count: 5},
		{Word: "personal", Count: 3},
	}

	output := FormatFrequencyTable(entries)

	if !strings.Contains(output, "work") {
		t.Error("expected output to contain 'work'")
	}
	if !strings.Contains(output, "5") {
		t.Error("expected output to contain count '5'")
	}
	if strings.Index(output, "work") > strings.Index(output, "personal") {
		t.Error("expected entries in given order")
	}
	if FormatFrequencyTable(nil) != "" {
		t.Error("expected empty output for no entries")
	}
}

func TestFormatBarChart(t *testing.T) {
	withoutColor(t)

	output := FormatBarChart([]models.FrequencyEntry{
		{Word: "big", Count: 10},
		{Word: "small", Count: 1},
	}, 20)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), output)
	}
	if n := strings.Count(lines[0], "█"); n != 20 {
		t.Errorf("largest bar = %d cells, want 20", n)
	}
	if n := strings.Count(lines[1], "█"); n != 2 {
		t.Errorf("smallest bar = %d cells, want 2", n)
	}
}

func TestFormatPreview(t *testing.T) {
	withoutColor(t)

	res := layout.Result{Words: []models.StyledWord{
		{SizedWord: models.SizedWord{FrequencyEntry: models.FrequencyEntry{Word: "alpha", Count: 2}}, Color: "#e74c3c", Emphasis: true},
		{SizedWord: models.SizedWord{FrequencyEntry: models.FrequencyEntry{Word: "beta", Count: 1}}, Color: "hsl(200, 60%, 50%)"},
		{SizedWord: models.SizedWord{FrequencyEntry: models.FrequencyEntry{Word: "gamma", Count: 1}}, Color: "bogus"},
	}}

	output := FormatPreview(res, 11)
	if output != "alpha beta\ngamma\n" {
		t.Errorf("FormatPreview = %q", output)
	}

	empty := FormatPreview(layout.Result{Empty: true, Placeholder: layout.Placeholder}, 80)
	if !strings.Contains(empty, layout.Placeholder) {
		t.Errorf("expected placeholder, got %q", empty)
	}
}

func TestFormatReport(t *testing.T) {
	content := "# Word frequencies\n\n| Word | Count |\n|---|---:|\n| cat | 2 |\n"

	output, err := FormatReport(content)
	if err != nil {
		t.Fatalf("failed to format report: %v", err)
	}

	if output == "" {
		t.Error("expected non-empty output")
	}
}

func TestFormatStopwords(t *testing.T) {
	output := FormatStopwords([]string{"a", "about", "the"}, 2)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", output)
	}
	if !strings.Contains(lines[0], "about") || !strings.Contains(lines[1], "the") {
		t.Errorf("unexpected layout %q", output)
	}
}

func TestConfigureColor(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	ConfigureColor(f.Fd(), false)
	if !color.NoColor {
		t.Error("expected color disabled for a regular file")
	}

	ConfigureColor(f.Fd(), true)
	if color.NoColor {
		t.Error("expected force to keep color on")
	}
}
