// ABOUTME: Parses the color strings produced by the selector.
// ABOUTME: Used by the raster renderer and terminal preview to get RGB values.

package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var named = map[string]string{
	"white": "#ffffff",
	"black": "#000000",
}

// Parse reads a hex (#rgb or #rrggbb), hsl() or rgb() color.
func Parse(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := named[s]; ok {
		s = hex
	}

	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return c, nil
	case strings.HasPrefix(s, "hsl("):
		v, err := funcArgs(s, "hsl(")
		if err != nil {
			return colorful.Color{}, err
		}
		return colorful.Hsl(v[0], v[1]/100, v[2]/100).Clamped(), nil
	case strings.HasPrefix(s, "rgb("):
		v, err := funcArgs(s, "rgb(")
		if err != nil {
			return colorful.Color{}, err
		}
		return colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}.Clamped(), nil
	default:
		return colorful.Color{}, fmt.Errorf("unsupported color %q", s)
	}
}

func funcArgs(s, prefix string) ([3]float64, error) {
	var out [3]float64

	body := strings.TrimSuffix(strings.TrimPrefix(s, prefix), ")")
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("color %q: expected 3 components", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(p), "%"), 64)
		if err != nil {
			return out, fmt.Errorf("color %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
