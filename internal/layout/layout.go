// ABOUTME: Render model turning sized words into styled words for presentation.
// ABOUTME: Orders by count, assigns color and rotation, and marks the most frequent word.

package layout

import (
	"sort"

	"github.com/harper/wordcloud/internal/models"
	"github.com/harper/wordcloud/internal/palette"
)

// Placeholder is shown by presenters when there is nothing to draw.
const Placeholder = "No words to display. Try a different text or adjust settings."

// Result is the styled word list, or an empty signal with a placeholder.
type Result struct {
	Words       []models.StyledWord `json:"words"`
	Empty       bool                `json:"empty"`
	Placeholder string              `json:"placeholder,omitempty"`
}

// Build sorts words by descending count (stable) and styles each one. Color
// is drawn before rotation for every word, so a deterministic rng yields a
// deterministic result.
func Build(sized []models.SizedWord, opts models.Options, mostFrequent *models.MostFrequent, rng palette.Random) Result {
	if len(sized) == 0 {
		return Result{Words: []models.StyledWord{}, Empty: true, Placeholder: Placeholder}
	}

	ordered := make([]models.SizedWord, len(sized))
	copy(ordered, sized)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Count > ordered[j].Count
	})

	picker := palette.NewPicker(rng)
	words := make([]models.StyledWord, 0, len(ordered))
	for _, w := range ordered {
		sw := models.StyledWord{
			SizedWord: w,
			Color:     picker.Pick(opts.ColorScheme),
			Rotation:  models.RotationNone,
		}
		if opts.WordRotation && rng.IntN(2) == 1 {
			sw.Rotation = models.RotationVertical
		}
		if mostFrequent != nil && w.Word == mostFrequent.Word {
			sw.Emphasis = true
		}
		if opts.ShowFrequencyOnHover {
			sw.Tooltip = models.Tooltip(w.Word, w.Count)
		}
		words = append(words, sw)
	}

	return Result{Words: words}
}
