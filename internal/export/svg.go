// ABOUTME: Vector serializer re-expressing rendered word boxes as SVG.
// ABOUTME: Rotations pivot on each word's approximate center.

package export

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/harper/wordcloud/internal/models"
)

// SVG renders the surface as a standalone SVG document with a solid
// background and one text element per box.
func SVG(surface models.Surface) (string, error) {
	if len(surface.Boxes) == 0 {
		return "", ErrNoData
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		surface.Width, surface.Height, surface.Width, surface.Height)
	fmt.Fprintf(&sb, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escape(surface.Background))

	for _, b := range surface.Boxes {
		writeText(&sb, b)
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// SVGFile wraps SVG output as a downloadable file.
func SVGFile(surface models.Surface) (File, error) {
	data, err := SVG(surface)
	if err != nil {
		return File{}, err
	}
	return File{Name: SVGFilename, MIMEType: SVGMIMEType, Data: []byte(data)}, nil
}

func writeText(sb *strings.Builder, b models.Box) {
	fmt.Fprintf(sb, `  <text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s"`,
		num(b.X), num(b.Y+b.FontSize), escape(b.FontFamily), num(b.FontSize), escape(b.Color))

	if b.Emphasis {
		sb.WriteString(` font-weight="bold" text-decoration="underline"`)
	}
	if angle := b.Angle(); angle != 0 {
		cx, cy := b.Center()
		fmt.Fprintf(sb, ` transform="rotate(%s, %s, %s)"`, num(angle), num(cx), num(cy))
	}
	sb.WriteString(">")

	if b.Tooltip != "" {
		fmt.Fprintf(sb, "<title>%s</title>", escape(b.Tooltip))
	}
	sb.WriteString(escape(b.Word))
	sb.WriteString("</text>\n")
}

// num prints at most two decimals and drops trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
