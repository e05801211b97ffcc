// ABOUTME: Headless Chrome rasterizer for surfaces.
// ABOUTME: Loads the SVG export in a page and screenshots the viewport at 2x.

package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/harper/wordcloud/internal/export"
	"github.com/harper/wordcloud/internal/models"
)

// DefaultBrowserTimeout bounds one browser render.
const DefaultBrowserTimeout = 30 * time.Second

// Browser renders through a local Chrome or Chromium install, so fonts match
// what a browser would show for the SVG export.
type Browser struct {
	Scale    float64
	Timeout  time.Duration
	ExecPath string
}

// RenderSurfaceToImage starts a headless browser, renders the surface and
// returns the screenshot.
func (b *Browser) RenderSurfaceToImage(ctx context.Context, surface models.Surface) ([]byte, error) {
	svg, err := export.SVG(surface)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	if b.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	scale := b.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	var png []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(surface.Width), int64(surface.Height), chromedp.EmulateScale(scale)),
		chromedp.Navigate(pageURL(svg, surface.Background)),
		chromedp.WaitVisible("svg", chromedp.ByQuery),
		chromedp.CaptureScreenshot(&png),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return png, nil
}

// pageURL wraps the SVG in a margin-free page as a data URL.
func pageURL(svg, background string) string {
	page := fmt.Sprintf(`<!DOCTYPE html><html><head><meta charset="utf-8"><style>html,body{margin:0;padding:0;background:%s}svg{display:block}</style></head><body>%s</body></html>`,
		background, svg)
	return "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(page))
}
