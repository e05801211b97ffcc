// ABOUTME: Size normalizer mapping word counts onto a font size range.
// ABOUTME: Pure and deterministic; uniform counts land on the midpoint.

package sizing

import (
	"math"

	"github.com/harper/wordcloud/internal/models"
)

// Normalize assigns every entry a font size in [minFontSize, maxFontSize].
// Sizes are linear in count and rounded to whole units; when every count is
// the same each word gets the exact midpoint. Order is preserved.
func Normalize(entries []models.FrequencyEntry, minFontSize, maxFontSize float64) []models.SizedWord {
	sized := make([]models.SizedWord, 0, len(entries))
	if len(entries) == 0 {
		return sized
	}

	minCount, maxCount := countRange(entries)

	for _, e := range entries {
		var size float64
		if maxCount == minCount {
			size = (minFontSize + maxFontSize) / 2
		} else {
			ratio := float64(e.Count-minCount) / float64(maxCount-minCount)
			size = roundHalfUp(minFontSize + ratio*(maxFontSize-minFontSize))
		}
		sized = append(sized, models.SizedWord{FrequencyEntry: e, FontSize: size})
	}

	return sized
}

func countRange(entries []models.FrequencyEntry) (int, int) {
	lo, hi := entries[0].Count, entries[0].Count
	for _, e := range entries[1:] {
		lo = min(lo, e.Count)
		hi = max(hi, e.Count)
	}
	return lo, hi
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
