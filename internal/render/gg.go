// ABOUTME: In-process rasterizer drawing surfaces with fogleman/gg.
// ABOUTME: Coordinates and font sizes are scaled up front so glyphs stay crisp.

package render

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/harper/wordcloud/internal/models"
	"github.com/harper/wordcloud/internal/palette"
)

// GG rasterizes surfaces without external processes.
type GG struct {
	fonts *Fonts
	scale float64
}

// NewGG returns a gg rasterizer drawing at scale.
func NewGG(fonts *Fonts, scale float64) *GG {
	return &GG{fonts: fonts, scale: scale}
}

// RenderSurfaceToImage draws the background and every box, then encodes PNG.
func (r *GG) RenderSurfaceToImage(_ context.Context, surface models.Surface) ([]byte, error) {
	if surface.Width <= 0 || surface.Height <= 0 {
		return nil, fmt.Errorf("%w: surface has no area", ErrRenderFailed)
	}

	s := r.scale
	dc := gg.NewContext(int(math.Ceil(float64(surface.Width)*s)), int(math.Ceil(float64(surface.Height)*s)))

	bg, err := palette.Parse(surface.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: background: %v", ErrRenderFailed, err)
	}
	dc.SetColor(bg)
	dc.Clear()

	for _, b := range surface.Boxes {
		if err := r.drawBox(dc, b); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func (r *GG) drawBox(dc *gg.Context, b models.Box) error {
	c, err := palette.Parse(b.Color)
	if err != nil {
		return fmt.Errorf("%w: word %q: %v", ErrRenderFailed, b.Word, err)
	}

	s := r.scale
	x, y, fs := b.X*s, b.Y*s, b.FontSize*s

	dc.Push()
	defer dc.Pop()

	if angle := b.Angle(); angle != 0 {
		cx, cy := b.Center()
		dc.RotateAbout(gg.Radians(angle), cx*s, cy*s)
	}

	dc.SetFontFace(r.fonts.Face(b.FontFamily, fs, b.Emphasis))
	dc.SetColor(c)
	dc.DrawString(b.Word, x, y+fs)

	if b.Emphasis {
		w, _ := dc.MeasureString(b.Word)
		underline := y + fs*1.1
		dc.SetLineWidth(math.Max(1, fs/12))
		dc.DrawLine(x, underline, x+w, underline)
		dc.Stroke()
	}
	return nil
}
