// ABOUTME: Frequency counter aggregating tokens into word counts.
// ABOUTME: Keeps first-appearance order; callers sort explicitly when order matters.

package frequency

import (
	"sort"

	"github.com/harper/wordcloud/internal/models"
)

// Count aggregates tokens into one entry per distinct word, in order of first
// appearance. Stopwords are skipped before counting when excludeStopwords is set.
func Count(tokens []string, excludeStopwords bool) []models.FrequencyEntry {
	index := make(map[string]int)
	entries := make([]models.FrequencyEntry, 0)

	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if excludeStopwords && IsStopword(tok) {
			continue
		}
		if i, ok := index[tok]; ok {
			entries[i].Count++
			continue
		}
		index[tok] = len(entries)
		entries = append(entries, models.FrequencyEntry{Word: tok, Count: 1})
	}

	return entries
}

// SortByCount returns a copy of entries ordered by descending count. Ties keep
// their original relative order.
func SortByCount(entries []models.FrequencyEntry) []models.FrequencyEntry {
	sorted := make([]models.FrequencyEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	return sorted
}

// Total returns the number of counted tokens.
func Total(entries []models.FrequencyEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	return total
}
