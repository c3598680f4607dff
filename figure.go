package pygmt

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Chaostremor/pygmt/clib"
	"github.com/Chaostremor/pygmt/internal/args"
)

// ModuleRunner dispatches a single GMT module call. The default runner opens
// a fresh API session per call against the process-wide GMT library; tests
// inject recording fakes through WithRunner.
type ModuleRunner interface {
	RunModule(module, args string) error
}

// runnerFunc adapts a plain function to the ModuleRunner interface.
type runnerFunc func(module, args string) error

func (f runnerFunc) RunModule(module, args string) error { return f(module, args) }

// defaultRunner dispatches through the process-wide GMT library.
var defaultRunner ModuleRunner = runnerFunc(clib.RunModule)

// Figure is a plotting target. A Figure owns no plot data itself: GMT keeps
// all figure state internally, keyed by a process-unique name that every
// call from this Figure re-activates first. Construction touches no native
// code; the GMT library is loaded on the first plotting call.
//
// A Figure is not safe for concurrent use.
type Figure struct {
	name   string
	runner ModuleRunner
}

// NewFigure creates a figure with a fresh unique name.
func NewFigure(opts ...FigureOption) *Figure {
	options := defaultFigureOptions()
	for _, opt := range opts {
		opt(&options)
	}

	name := options.name
	if name == "" {
		name = uniqueName()
	}
	runner := options.runner
	if runner == nil {
		runner = defaultRunner
	}

	return &Figure{name: name, runner: runner}
}

// uniqueName returns a figure name no other figure in this process has used.
func uniqueName() string {
	return "pygmt-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Name returns the figure's unique name.
func (f *Figure) Name() string { return f.name }

// activate makes this figure GMT's current figure. The trailing "-" format
// tells the figure module not to produce an output file of its own.
func (f *Figure) activate() error {
	return f.runner.RunModule("figure", f.name+" -")
}

// Call activates the figure and dispatches a raw module call. It is the
// escape hatch for GMT modules that have no typed method yet; the argument
// string is passed through untouched.
func (f *Figure) Call(module, arguments string) error {
	if err := f.activate(); err != nil {
		return err
	}
	return f.runner.RunModule(module, arguments)
}

// dispatch encodes params, activates the figure, and runs one module.
// Positional file arguments precede the flags, mirroring GMT's command
// lines. Encoding errors fail before any native call is made.
func (f *Figure) dispatch(module string, params any, files ...string) error {
	flags, err := args.Marshal(params)
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(files)+1)
	parts = append(parts, files...)
	if flags != "" {
		parts = append(parts, flags)
	}
	arguments := strings.Join(parts, " ")

	if err := f.activate(); err != nil {
		return err
	}
	Logger().Debug("dispatching module", "figure", f.name, "module", module, "args", arguments)
	return f.runner.RunModule(module, arguments)
}
