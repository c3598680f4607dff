package pygmt

import (
	"errors"
	"fmt"
)

// Package errors for the figure and save/convert layer.
var (
	// ErrTransparentFormat is returned when transparency is requested for
	// any output format other than PNG.
	ErrTransparentFormat = errors.New("pygmt: transparency is only available for PNG output")

	// ErrMissingPrefix is returned when Psconvert is called without an
	// output name prefix.
	ErrMissingPrefix = errors.New("pygmt: psconvert requires an output name prefix")
)

// UnsupportedFormatError is returned by Savefig when the output path carries
// an extension with no corresponding GMT format code.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("pygmt: unsupported figure format %q", e.Ext)
}

// InvalidOrientationError is returned when a save option names an orientation
// other than Portrait or Landscape.
type InvalidOrientationError struct {
	Orientation Orientation
}

func (e *InvalidOrientationError) Error() string {
	return fmt.Sprintf("pygmt: invalid orientation %q", string(e.Orientation))
}
