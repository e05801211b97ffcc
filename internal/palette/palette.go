// ABOUTME: Color selector assigning a display color per word.
// ABOUTME: Named schemes draw from fixed palettes; anything else synthesizes a vivid HSL color.

package palette

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Random is the source of randomness for color and rotation choices.
// *rand.Rand satisfies it.
type Random interface {
	IntN(n int) int
}

// Scheme names with fixed palettes. Any other name, including "random" and
// the empty string, produces synthesized HSL colors.
const (
	SchemeDefault   = "default"
	SchemeWarm      = "warm"
	SchemeCool      = "cool"
	SchemeGrayscale = "grayscale"
	SchemeRandom    = "random"
)

var palettes = map[string][]string{
	SchemeDefault:   {"#3498db", "#e74c3c", "#2ecc71", "#9b59b6", "#f39c12", "#1abc9c", "#34495e", "#e67e22"},
	SchemeWarm:      {"#e74c3c", "#c0392b", "#e67e22", "#d35400", "#f39c12", "#ff6b6b", "#b03a2e"},
	SchemeCool:      {"#3498db", "#2980b9", "#1abc9c", "#16a085", "#9b59b6", "#8e44ad", "#2c3e50"},
	SchemeGrayscale: {"#111111", "#333333", "#555555", "#777777", "#999999"},
}

// HSL ranges for synthesized colors, lower bound inclusive, upper exclusive.
const (
	hueSpan      = 360
	satMin       = 50
	satSpan      = 50
	lightnessMin = 40
	lightSpan    = 30
)

// Picker chooses colors using an injected random source.
type Picker struct {
	rng Random
}

// NewPicker returns a Picker drawing from rng.
func NewPicker(rng Random) *Picker {
	return &Picker{rng: rng}
}

// Pick returns a color for one word under scheme.
func (p *Picker) Pick(scheme string) string {
	if colors := Palette(scheme); len(colors) > 0 {
		return colors[p.rng.IntN(len(colors))]
	}
	return FormatHSL(p.rng.IntN(hueSpan), satMin+p.rng.IntN(satSpan), lightnessMin+p.rng.IntN(lightSpan))
}

// Palette returns the fixed colors of scheme, or nil when the scheme is
// synthesized.
func Palette(scheme string) []string {
	return palettes[scheme]
}

// Schemes lists the recognized scheme names.
func Schemes() []string {
	names := make([]string, 0, len(palettes)+1)
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, SchemeRandom)
}

// FormatHSL renders a CSS hsl() color.
func FormatHSL(h, s, l int) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// NewRandom returns a random source seeded from the runtime, or from seed
// when it is non-zero.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
