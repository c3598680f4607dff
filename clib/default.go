package clib

import "sync"

// Process-wide default library, loaded on first use. One copy per process
// is the useful granularity: the dynamic loader caches the image anyway and
// GMT keeps per-image global state.
var (
	defaultMu  sync.Mutex
	defaultLib *Library
)

// Default returns the process-wide GMT library, loading it on first use.
// Load failures are not cached, so a later call retries; this lets a
// program fix GMT_LIBRARY_PATH (or install GMT) and carry on.
func Default() (*Library, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLib != nil {
		return defaultLib, nil
	}
	lib, err := LoadLibrary()
	if err != nil {
		return nil, err
	}
	defaultLib = lib
	return lib, nil
}

// SetDefault replaces the process-wide library, e.g. with one loaded from
// an explicit path. Passing nil resets the default so the next call to
// [Default] loads again. Tests use this to install fakes.
func SetDefault(lib *Library) {
	defaultMu.Lock()
	defaultLib = lib
	defaultMu.Unlock()
}

// RunModule executes a single module call in a fresh scoped session against
// the default library. This mirrors how GMT is driven from the higher-level
// plotting API: one short-lived session per operation, destroyed before
// RunModule returns.
func RunModule(module, args string) error {
	lib, err := Default()
	if err != nil {
		return err
	}
	return lib.WithSession(func(s *Session) error {
		return s.CallModule(module, args)
	})
}
