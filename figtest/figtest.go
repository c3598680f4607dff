// Package figtest helps test plotting code by comparing rendered figures.
//
// CheckFiguresEqual rasterizes a reference figure and a test figure and
// fails when the root-mean-square difference of their pixels exceeds a
// tolerance:
//
//	ref := pygmt.NewFigure()
//	ref.Basemap(pygmt.BasemapParams{Projection: "X10c", Region: pygmt.Region{0, 10, 0, 10}, Frame: "af"})
//
//	fig := pygmt.NewFigure()
//	fig.Basemap(pygmt.BasemapParams{Projection: "X10c", Region: pygmt.Region{0, 10, 0, 10}, Frame: "af"})
//
//	if err := figtest.CheckFiguresEqual(ref, fig); err != nil {
//	    t.Fatal(err)
//	}
//
// On success no image files are left behind. Pass WithResultDir to keep the
// rendered images of a failing comparison for inspection.
package figtest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Chaostremor/pygmt"
)

// ComparisonError reports a figure comparison whose pixel difference
// exceeded the tolerance.
type ComparisonError struct {
	RMS float64 // root-mean-square difference found
	Tol float64 // tolerance that was exceeded
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("figtest: images not equal: rms %.4f exceeds tolerance %.4f", e.RMS, e.Tol)
}

// Option configures CheckFiguresEqual.
type Option func(*options)

type options struct {
	tol       float64
	resultDir string
}

// WithTolerance accepts comparisons up to the given RMS difference. The
// default tolerance is 0: images must match exactly.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tol = tol }
}

// WithResultDir renders the figures into dir and keeps them there when the
// comparison fails. By default a temporary directory is used and removed.
func WithResultDir(dir string) Option {
	return func(o *options) { o.resultDir = dir }
}

// CheckFiguresEqual renders both figures to PNG and compares them pixel by
// pixel. A difference beyond the tolerance is returned as a
// [*ComparisonError]; rendering and decoding failures are returned as is.
// On success the rendered images are always removed.
func CheckFiguresEqual(ref, test *pygmt.Figure, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	dir := o.resultDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "figtest-")
		if err != nil {
			return fmt.Errorf("figtest: creating result dir: %w", err)
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("figtest: creating result dir: %w", err)
	}

	refPath := filepath.Join(dir, ref.Name()+".png")
	testPath := filepath.Join(dir, test.Name()+".png")
	if err := ref.Savefig(refPath); err != nil {
		return fmt.Errorf("figtest: rendering reference figure: %w", err)
	}
	if err := test.Savefig(testPath); err != nil {
		return fmt.Errorf("figtest: rendering test figure: %w", err)
	}

	rms, err := CompareImages(refPath, testPath)
	if err != nil {
		return err
	}
	if rms > o.tol {
		return &ComparisonError{RMS: rms, Tol: o.tol}
	}
	os.Remove(refPath)
	os.Remove(testPath)
	return nil
}
