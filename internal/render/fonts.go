// ABOUTME: Bundled Go fonts used for text measurement and raster drawing.
// ABOUTME: Faces are cached per size, weight and monospace flag.

package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	size float64
	bold bool
	mono bool
}

// Fonts measures and draws text with the Go font family. Any CSS family
// naming a monospace font maps to Go Mono; everything else maps to Go
// Regular, so measurements approximate rather than match the browser.
type Fonts struct {
	regular, bold, mono, monoBold *truetype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// LoadFonts parses the embedded font files.
func LoadFonts() (*Fonts, error) {
	parse := func(name string, data []byte) (*truetype.Font, error) {
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s font: %w", name, err)
		}
		return f, nil
	}

	var (
		fs  = &Fonts{faces: make(map[faceKey]font.Face)}
		err error
	)
	if fs.regular, err = parse("regular", goregular.TTF); err != nil {
		return nil, err
	}
	if fs.bold, err = parse("bold", gobold.TTF); err != nil {
		return nil, err
	}
	if fs.mono, err = parse("mono", gomono.TTF); err != nil {
		return nil, err
	}
	if fs.monoBold, err = parse("mono bold", gomonobold.TTF); err != nil {
		return nil, err
	}
	return fs, nil
}

// Face returns a cached face for the family at size pixels.
func (f *Fonts) Face(family string, size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold, mono: isMonospace(family)}

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[key]; ok {
		return face
	}

	ttf := f.regular
	switch {
	case key.mono && bold:
		ttf = f.monoBold
	case key.mono:
		ttf = f.mono
	case bold:
		ttf = f.bold
	}

	face := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	f.faces[key] = face
	return face
}

// MeasureString returns the advance width of text in pixels.
func (f *Fonts) MeasureString(text, family string, size float64, bold bool) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	adv := font.MeasureString(f.Face(family, size, bold), text)
	return float64(adv) / 64
}

func isMonospace(family string) bool {
	family = strings.ToLower(family)
	for _, hint := range []string{"mono", "courier", "consolas"} {
		if strings.Contains(family, hint) {
			return true
		}
	}
	return false
}
