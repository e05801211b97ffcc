// ABOUTME: Summary analyzer for the most frequent word and top-N words.
// ABOUTME: Ties resolve to the first word counted, not alphabetically.

package summary

import (
	"fmt"

	"github.com/harper/wordcloud/internal/frequency"
	"github.com/harper/wordcloud/internal/models"
)

// DefaultTopN is the number of words shown in the frequency chart.
const DefaultTopN = 10

// MostFrequent returns the first entry reaching the highest count, flagged as
// a tie when other entries share that count. It returns nil for no entries.
func MostFrequent(entries []models.FrequencyEntry) *models.MostFrequent {
	if len(entries) == 0 {
		return nil
	}

	best := 0
	atMax := 1
	for i := 1; i < len(entries); i++ {
		switch c := entries[i].Count; {
		case c > entries[best].Count:
			best = i
			atMax = 1
		case c == entries[best].Count:
			atMax++
		}
	}

	return &models.MostFrequent{
		Word:  entries[best].Word,
		Count: entries[best].Count,
		IsTie: atMax > 1,
	}
}

// Describe renders the one-line summary shown above a cloud.
func Describe(mf *models.MostFrequent) string {
	if mf == nil {
		return ""
	}
	line := fmt.Sprintf("Most frequent word: %q (%d %s)", mf.Word, mf.Count, models.Plural(mf.Count, "time", "times"))
	if mf.IsTie {
		line += " (tie)"
	}
	return line
}

// Top returns up to n entries with the highest counts, most frequent first.
func Top(entries []models.FrequencyEntry, n int) []models.FrequencyEntry {
	sorted := frequency.SortByCount(entries)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
