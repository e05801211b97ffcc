// ABOUTME: Simple flow placement of styled words onto a fixed-width surface.
// ABOUTME: Rows fill left to right, wrap at the surface edge and are centered.

package layout

import (
	"math"

	"github.com/harper/wordcloud/internal/models"
)

// Measurer reports the advance width of text set in a font.
type Measurer interface {
	MeasureString(text, family string, size float64, bold bool) float64
}

// FlowOptions controls surface geometry.
type FlowOptions struct {
	Width      int
	Padding    float64
	Gap        float64
	LineHeight float64
	MinHeight  int
	FontFamily string
	Background string
}

// DefaultFlowOptions derives surface geometry from generation options.
func DefaultFlowOptions(opts models.Options) FlowOptions {
	return FlowOptions{
		Width:      opts.Width,
		Padding:    20,
		Gap:        10,
		LineHeight: 1.2,
		MinHeight:  200,
		FontFamily: opts.FontFamily,
		Background: opts.Background,
	}
}

type placed struct {
	word         models.StyledWord
	width        float64
	footW, footH float64
	rowX         float64
}

// Flow places words in order. Rotated words reserve their turned footprint
// so they do not cover their neighbours; the stored box stays unrotated and
// carries the rotation as data.
func Flow(words []models.StyledWord, m Measurer, fo FlowOptions) models.Surface {
	surface := models.Surface{
		Width:      fo.Width,
		Background: fo.Background,
		Boxes:      make([]models.Box, 0, len(words)),
	}

	avail := float64(fo.Width) - 2*fo.Padding
	var rows [][]placed
	var row []placed
	rowW := 0.0

	for _, w := range words {
		p := placed{word: w, width: m.MeasureString(w.Word, fo.FontFamily, w.FontSize, w.Emphasis)}
		lineH := w.FontSize * fo.LineHeight
		p.footW, p.footH = p.width, lineH
		if w.Rotation == models.RotationVertical {
			p.footW, p.footH = lineH, p.width
		}

		need := p.footW
		if len(row) > 0 {
			need += fo.Gap
		}
		if len(row) > 0 && rowW+need > avail {
			rows = append(rows, row)
			row, rowW, need = nil, 0, p.footW
		}
		p.rowX = rowW
		if len(row) > 0 {
			p.rowX += fo.Gap
		}
		rowW += need
		row = append(row, p)
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	y := fo.Padding
	for i, r := range rows {
		if i > 0 {
			y += fo.Gap
		}
		rowH, rowW := 0.0, 0.0
		for _, p := range r {
			rowH = math.Max(rowH, p.footH)
			rowW = p.rowX + p.footW
		}
		offset := fo.Padding + math.Max(0, (avail-rowW)/2)

		for _, p := range r {
			// Center the word's own box on the centre of its footprint.
			cx := offset + p.rowX + p.footW/2
			cy := y + rowH/2
			rot := p.word.Rotation
			surface.Boxes = append(surface.Boxes, models.Box{
				Word:       p.word.Word,
				X:          cx - p.width/2,
				Y:          cy - p.word.FontSize/2,
				Width:      p.width,
				FontSize:   p.word.FontSize,
				FontFamily: fo.FontFamily,
				Color:      p.word.Color,
				Emphasis:   p.word.Emphasis,
				Tooltip:    p.word.Tooltip,
				Rotation:   &rot,
			})
		}
		y += rowH
	}

	surface.Height = max(fo.MinHeight, int(math.Ceil(y+fo.Padding)))
	return surface
}
