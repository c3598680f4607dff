package pygmt

import (
	"path/filepath"
	"strings"
)

// Orientation selects the page orientation of converted output.
type Orientation string

const (
	// Portrait keeps the plot unrotated on the page. This is the default.
	Portrait Orientation = "portrait"
	// Landscape plots are rotated back so they show unrotated.
	Landscape Orientation = "landscape"
)

// formatCodes maps the extensions Savefig supports to psconvert format
// codes. Transparency upgrades the png code to its uppercase variant.
var formatCodes = map[string]string{
	"png": "g",
	"pdf": "f",
	"jpg": "j",
	"bmp": "b",
	"eps": "e",
	"tif": "t",
}

// ConvertParams are options for the psconvert module, which converts the
// current figure's PostScript to other formats using GhostScript.
type ConvertParams struct {
	// Prefix forces the output file name, without extension (-F). The
	// extension is appended by GMT according to Format. Required when
	// converting the current figure.
	Prefix string `gmt:"F"`
	// Format is the output format code (-T): b=BMP, e=EPS, E=EPS with
	// PageSize, f=PDF, F=multi-page PDF, j=JPEG, g=PNG, G=transparent PNG,
	// m=PPM, s=SVG, t=TIFF. For b, j, g and t a trailing "-" selects
	// grayscale.
	Format string `gmt:"T"`
	// Crop adjusts the BoundingBox to the minimum required by the image
	// content (-A).
	Crop bool `gmt:"A"`
	// DPI sets the raster resolution in dots per inch (-E). GMT defaults
	// to 720 for PDF and 300 for the raster formats.
	DPI int `gmt:"E"`
	// Portrait forces portrait mode: landscape plots are rotated back (-P).
	Portrait bool `gmt:"P"`
	// AntiAliasGraphics sets the graphics anti-aliasing subsample box
	// size, 1, 2 or 4 (-Qg).
	AntiAliasGraphics int `gmt:"Qg"`
	// AntiAliasText sets the text anti-aliasing subsample box size (-Qt).
	AntiAliasText int `gmt:"Qt"`
	// ICCGray enforces gray-shades by using ICC profiles (-I).
	ICCGray bool `gmt:"I"`
	// GhostScript passes a single custom option to GhostScript as is (-C).
	GhostScript string `gmt:"C"`
}

// Psconvert converts the current figure with explicit psconvert options.
// Unset fields are simply not passed; GMT's own defaults apply. Most code
// wants Savefig instead, which fills in the usual cropping and orientation.
func (f *Figure) Psconvert(p ConvertParams) error {
	if p.Prefix == "" {
		return ErrMissingPrefix
	}
	return f.dispatch("psconvert", p)
}

// saveOptions holds optional configuration for Savefig.
type saveOptions struct {
	orientation       Orientation
	transparent       bool
	crop              bool
	dpi               int
	antiAliasGraphics int
	antiAliasText     int
}

func defaultSaveOptions() saveOptions {
	return saveOptions{
		orientation: Portrait,
		crop:        true,
	}
}

// SaveOption adjusts how Savefig converts the figure.
type SaveOption func(*saveOptions)

// WithOrientation sets the page orientation, Portrait or Landscape.
func WithOrientation(o Orientation) SaveOption {
	return func(s *saveOptions) { s.orientation = o }
}

// Transparent requests a transparent background. Only valid for PNG output.
func Transparent() SaveOption {
	return func(s *saveOptions) { s.transparent = true }
}

// NoCrop keeps the full page instead of cropping to the plotted area.
func NoCrop() SaveOption {
	return func(s *saveOptions) { s.crop = false }
}

// WithDPI sets the raster resolution in dots per inch.
func WithDPI(dpi int) SaveOption {
	return func(s *saveOptions) { s.dpi = dpi }
}

// WithAntiAlias enables anti-aliasing of graphics and text with the largest
// subsample box GhostScript offers.
func WithAntiAlias() SaveOption {
	return func(s *saveOptions) {
		s.antiAliasGraphics = 4
		s.antiAliasText = 4
	}
}

// Savefig saves the figure to a file, choosing the output format from the
// file extension. Supported: .png, .jpg, .pdf, .bmp, .tif and .eps.
//
// All validation happens before any native call: an unknown extension
// returns an [*UnsupportedFormatError], a bad orientation an
// [*InvalidOrientationError], and transparency with a non-PNG format
// [ErrTransparentFormat]. On failure no output file is produced.
func (f *Figure) Savefig(path string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if options.orientation != Portrait && options.orientation != Landscape {
		return &InvalidOrientationError{Orientation: options.orientation}
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	code, ok := formatCodes[ext]
	if !ok {
		return &UnsupportedFormatError{Ext: ext}
	}
	if options.transparent {
		if ext != "png" {
			return ErrTransparentFormat
		}
		code = strings.ToUpper(code)
	}
	prefix := strings.TrimSuffix(path, "."+ext)

	return f.Psconvert(ConvertParams{
		Prefix:            prefix,
		Format:            code,
		Crop:              options.crop,
		Portrait:          options.orientation == Portrait,
		DPI:               options.dpi,
		AntiAliasGraphics: options.antiAliasGraphics,
		AntiAliasText:     options.antiAliasText,
	})
}
