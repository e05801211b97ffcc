// ABOUTME: Raster export contract and renderer selection.
// ABOUTME: A rasterizer turns a finished surface into PNG bytes at 2x scale.

package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harper/wordcloud/internal/export"
	"github.com/harper/wordcloud/internal/models"
)

// DefaultScale is the device pixel ratio used for raster exports.
const DefaultScale = 2.0

// ErrRenderFailed wraps every rasterization failure.
var ErrRenderFailed = errors.New("failed to render image")

// Renderer names accepted by New.
const (
	RendererGG      = "gg"
	RendererBrowser = "browser"
)

// Rasterizer renders a surface to a PNG image. A call runs to completion or
// failure; it is not retried.
type Rasterizer interface {
	RenderSurfaceToImage(ctx context.Context, surface models.Surface) ([]byte, error)
}

// Options selects and tunes a rasterizer.
type Options struct {
	Renderer    string
	Scale       float64
	Timeout     time.Duration
	BrowserPath string
}

// New returns the rasterizer named in opts.
func New(opts Options, fonts *Fonts) (Rasterizer, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	switch opts.Renderer {
	case "", RendererGG:
		return NewGG(fonts, scale), nil
	case RendererBrowser:
		return &Browser{Scale: scale, Timeout: opts.Timeout, ExecPath: opts.BrowserPath}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", opts.Renderer)
	}
}

// PNGFile rasterizes the surface into a downloadable file.
func PNGFile(ctx context.Context, r Rasterizer, surface models.Surface) (export.File, error) {
	if len(surface.Boxes) == 0 {
		return export.File{}, export.ErrNoData
	}

	data, err := r.RenderSurfaceToImage(ctx, surface)
	if err != nil {
		return export.File{}, err
	}
	return export.File{Name: export.PNGFilename, MIMEType: export.PNGMIMEType, Data: data}, nil
}
