package pygmt

import "github.com/Chaostremor/pygmt/clib"

// FigureOption configures a Figure during creation.
// Use functional options to customize Figure behavior.
//
// Example:
//
//	// Default: unique name, process-wide GMT library
//	fig := pygmt.NewFigure()
//
//	// Custom module runner (dependency injection)
//	fig := pygmt.NewFigure(pygmt.WithRunner(fake))
type FigureOption func(*figureOptions)

// figureOptions holds optional configuration for Figure creation.
type figureOptions struct {
	name   string
	runner ModuleRunner
}

// defaultFigureOptions returns the default figure options.
func defaultFigureOptions() figureOptions {
	return figureOptions{
		name:   "",  // Will be set to a generated unique name if empty
		runner: nil, // Will be set to the clib-backed runner if nil
	}
}

// WithName sets an explicit figure name instead of a generated one.
// Two figures sharing a name address the same GMT-side figure state, so
// explicit names are mostly useful in tests.
func WithName(name string) FigureOption {
	return func(o *figureOptions) {
		o.name = name
	}
}

// WithRunner sets a custom module runner for the Figure.
// Use this for dependency injection of fakes in tests, or to route module
// calls through a specific library instance:
//
//	lib, err := clib.LoadLibrary("/opt/gmt/lib")
//	...
//	fig := pygmt.NewFigure(pygmt.WithRunner(pygmt.LibraryRunner(lib)))
func WithRunner(r ModuleRunner) FigureOption {
	return func(o *figureOptions) {
		o.runner = r
	}
}

// LibraryRunner returns a ModuleRunner that dispatches each module call in
// a fresh scoped session on lib.
func LibraryRunner(lib *clib.Library) ModuleRunner {
	return runnerFunc(func(module, args string) error {
		return lib.WithSession(func(s *clib.Session) error {
			return s.CallModule(module, args)
		})
	})
}
