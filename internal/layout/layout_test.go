// ABOUTME: Tests for the render model and flow placement.
// ABOUTME: Uses a scripted random source so styling is deterministic.

package layout

import (
	"testing"
	"unicode/utf8"

	"github.com/harper/wordcloud/internal/models"
	"github.com/harper/wordcloud/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scripted struct {
	values []int
	pos    int
}

func (s *scripted) IntN(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

type fixedMeasurer struct{}

func (fixedMeasurer) MeasureString(text, _ string, size float64, _ bool) float64 {
	return float64(utf8.RuneCountInString(text)) * size * 0.5
}

func sized(word string, count int, size float64) models.SizedWord {
	return models.SizedWord{FrequencyEntry: models.FrequencyEntry{Word: word, Count: count}, FontSize: size}
}

func TestBuildSortsByCountStable(t *testing.T) {
	input := []models.SizedWord{sized("a", 1, 10), sized("b", 3, 30), sized("c", 1, 10), sized("d", 3, 30)}

	res := Build(input, models.DefaultOptions(), nil, &scripted{values: []int{0}})

	require.False(t, res.Empty)
	var got []string
	for _, w := range res.Words {
		got = append(got, w.Word)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, got)
	assert.Equal(t, "a", input[0].Word, "input must not be reordered")
}

func TestBuildAssignsColorAndRotation(t *testing.T) {
	opts := models.DefaultOptions()
	opts.WordRotation = true
	opts.ColorScheme = palette.SchemeWarm

	// color index, rotation coin, color index, rotation coin
	res := Build([]models.SizedWord{sized("x", 2, 20), sized("y", 1, 10)}, opts, nil, &scripted{values: []int{1, 1, 0, 0}})

	require.Len(t, res.Words, 2)
	warm := palette.Palette(palette.SchemeWarm)
	assert.Equal(t, warm[1], res.Words[0].Color)
	assert.Equal(t, models.RotationVertical, res.Words[0].Rotation)
	assert.Equal(t, warm[0], res.Words[1].Color)
	assert.Equal(t, models.RotationNone, res.Words[1].Rotation)
}

func TestBuildWithoutRotation(t *testing.T) {
	opts := models.DefaultOptions()
	opts.WordRotation = false

	res := Build([]models.SizedWord{sized("x", 2, 20), sized("y", 1, 10)}, opts, nil, palette.NewRandom(3))

	for _, w := range res.Words {
		assert.Equal(t, 0, w.Rotation)
	}
}

func TestBuildEmphasisAndTooltip(t *testing.T) {
	opts := models.DefaultOptions()
	opts.ShowFrequencyOnHover = true
	mf := &models.MostFrequent{Word: "cat", Count: 3}

	res := Build([]models.SizedWord{sized("dog", 1, 10), sized("cat", 3, 30)}, opts, mf, palette.NewRandom(1))

	require.Len(t, res.Words, 2)
	assert.True(t, res.Words[0].Emphasis)
	assert.Equal(t, `"cat" — 3 times`, res.Words[0].Tooltip)
	assert.False(t, res.Words[1].Emphasis)

	opts.ShowFrequencyOnHover = false
	res = Build([]models.SizedWord{sized("dog", 1, 10)}, opts, nil, palette.NewRandom(1))
	assert.Empty(t, res.Words[0].Tooltip)
}

func TestBuildEmpty(t *testing.T) {
	res := Build(nil, models.DefaultOptions(), nil, palette.NewRandom(1))

	assert.True(t, res.Empty)
	assert.Equal(t, Placeholder, res.Placeholder)
	assert.Empty(t, res.Words)
}

func styled(word string, size float64, rotation int) models.StyledWord {
	return models.StyledWord{SizedWord: sized(word, 1, size), Color: "#000000", Rotation: rotation}
}

func TestFlowWrapsRows(t *testing.T) {
	fo := FlowOptions{Width: 250, Padding: 20, Gap: 10, LineHeight: 1.2, MinHeight: 50}
	// each word is 100px wide at size 20 ("abcdefghij" = 10 runes * 20 * 0.5)
	words := []models.StyledWord{
		styled("abcdefghij", 20, 0),
		styled("klmnopqrst", 20, 0),
		styled("uvwxyzabcd", 20, 0),
	}

	s := Flow(words, fixedMeasurer{}, fo)

	require.Len(t, s.Boxes, 3)
	assert.Equal(t, 250, s.Width)
	assert.Equal(t, s.Boxes[0].Y, s.Boxes[1].Y, "first two share a row")
	assert.Greater(t, s.Boxes[2].Y, s.Boxes[0].Y, "third wraps")
	assert.InDelta(t, 20.0, s.Boxes[0].X, 1e-9)
	assert.InDelta(t, 130.0, s.Boxes[1].X, 1e-9)
	// lone word on the second row is centered
	assert.InDelta(t, 75.0, s.Boxes[2].X, 1e-9)
	// padding + two rows of 24 + gap + padding
	assert.Equal(t, 20+24+10+24+20, s.Height)
}

func TestFlowCarriesRotationAsData(t *testing.T) {
	fo := FlowOptions{Width: 800, Padding: 20, Gap: 10, LineHeight: 1.2, MinHeight: 200, FontFamily: "serif", Background: "#fff"}
	words := []models.StyledWord{styled("vertical", 40, 90), styled("flat", 20, 0)}

	s := Flow(words, fixedMeasurer{}, fo)

	require.Len(t, s.Boxes, 2)
	require.NotNil(t, s.Boxes[0].Rotation)
	assert.Equal(t, 90, *s.Boxes[0].Rotation)
	assert.Nil(t, s.Boxes[0].Transform)
	assert.Equal(t, 90.0, s.Boxes[0].Angle())
	assert.Equal(t, 160.0, s.Boxes[0].Width, "box width is the unrotated text width")
	assert.Equal(t, "serif", s.Boxes[1].FontFamily)
	assert.Equal(t, "#fff", s.Background)
	assert.Equal(t, 200, s.Height)
}

func TestFlowMinHeight(t *testing.T) {
	s := Flow(nil, fixedMeasurer{}, FlowOptions{Width: 300, MinHeight: 120})

	assert.Empty(t, s.Boxes)
	assert.Equal(t, 120, s.Height)
}

func TestDefaultFlowOptions(t *testing.T) {
	opts := models.DefaultOptions()

	fo := DefaultFlowOptions(opts)

	assert.Equal(t, opts.Width, fo.Width)
	assert.Equal(t, opts.FontFamily, fo.FontFamily)
	assert.Equal(t, opts.Background, fo.Background)
}
