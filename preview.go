package pygmt

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/image/draw"
)

// Display defaults used by Show. Adjustable through Config.
var (
	showDPI   atomic.Int64
	showWidth atomic.Int64
)

func init() {
	showDPI.Store(300)
	showWidth.Store(500)
}

// previewOptions holds optional configuration for PNGPreview and Show.
type previewOptions struct {
	dpi       int
	width     int
	antiAlias bool
}

// PreviewOption adjusts how a figure preview is rendered.
type PreviewOption func(*previewOptions)

// WithPreviewDPI sets the preview resolution in dots per inch.
func WithPreviewDPI(dpi int) PreviewOption {
	return func(o *previewOptions) { o.dpi = dpi }
}

// WithDisplayWidth sets the pixel width Show scales the image to.
func WithDisplayWidth(px int) PreviewOption {
	return func(o *previewOptions) { o.width = px }
}

// NoAntiAlias disables the anti-aliasing applied to previews by default.
func NoAntiAlias() PreviewOption {
	return func(o *previewOptions) { o.antiAlias = false }
}

// PNGPreview renders the figure to a PNG in a temporary directory and
// returns the image bytes. The directory and its contents are removed
// before returning, so the preview leaves no file artifacts.
//
// The default resolution is a quick 70 dpi with anti-aliasing on.
func (f *Figure) PNGPreview(opts ...PreviewOption) ([]byte, error) {
	options := previewOptions{dpi: 70, antiAlias: true}
	for _, opt := range opts {
		opt(&options)
	}
	return f.renderPNG(options.dpi, options.antiAlias)
}

// renderPNG saves the figure as a PNG into a fresh temp dir and reads the
// bytes back.
func (f *Figure) renderPNG(dpi int, antiAlias bool) ([]byte, error) {
	tmpdir, err := os.MkdirTemp("", "pygmt-preview-")
	if err != nil {
		return nil, fmt.Errorf("pygmt: creating preview dir: %w", err)
	}
	defer func() {
		if rerr := os.RemoveAll(tmpdir); rerr != nil {
			Logger().Warn("preview cleanup failed", "dir", tmpdir, "err", rerr)
		}
	}()

	saveOpts := []SaveOption{WithDPI(dpi)}
	if antiAlias {
		saveOpts = append(saveOpts, WithAntiAlias())
	}
	fname := filepath.Join(tmpdir, f.name+"-preview.png")
	if err := f.Savefig(fname, saveOpts...); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("pygmt: reading preview: %w", err)
	}
	return data, nil
}

// Show renders the figure for inline display and returns the PNG bytes,
// scaled down to the display width. The defaults, 300 dpi scaled to 500
// pixels wide, come from Config; per-call options override them.
func (f *Figure) Show(opts ...PreviewOption) ([]byte, error) {
	options := previewOptions{
		dpi:       int(showDPI.Load()),
		width:     int(showWidth.Load()),
		antiAlias: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	data, err := f.renderPNG(options.dpi, options.antiAlias)
	if err != nil {
		return nil, err
	}
	return scalePNG(data, options.width)
}

// scalePNG scales PNG bytes down to the given pixel width, preserving the
// aspect ratio. Images at or below the target width pass through untouched.
func scalePNG(data []byte, width int) ([]byte, error) {
	if width <= 0 {
		return data, nil
	}
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("pygmt: decoding preview: %w", err)
	}
	bounds := src.Bounds()
	if bounds.Dx() <= width {
		return data, nil
	}

	height := int(math.Round(float64(bounds.Dy()) * float64(width) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("pygmt: encoding preview: %w", err)
	}
	return buf.Bytes(), nil
}
