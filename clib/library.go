package clib

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ebitengine/purego"
)

// Library is a loaded GMT shared library with the C entry points bound as
// callable Go functions. Libraries stay loaded for the life of the process;
// GMT keeps global state per loaded image and does not support unloading.
type Library struct {
	path string

	// Bound entry points. Tests inside this package substitute Go
	// implementations to exercise session logic without a real GMT install.
	create  func(tag string, pad, mode uint32, printFunc uintptr) uintptr
	call    func(api uintptr, module string, mode int32, args string) int32
	destroy func(api uintptr) int32
}

// Path returns the name or path the library was loaded from.
func (l *Library) Path() string { return l.path }

// LoadLibrary loads the GMT shared library and binds the C API entry points.
//
// With no arguments the candidates are tried in order: platform library
// names under the directory named by the GMT_LIBRARY_PATH environment
// variable, then the bare names resolved by the system loader. Explicit
// arguments replace the default candidate list; each may be a full path, a
// loader-resolvable name, or a directory to search for the platform names.
//
// If no candidate loads, the returned error wraps [ErrLibraryNotFound] and
// lists everything that was tried. A candidate that loads but lacks one of
// the required symbols fails immediately: that is a broken installation,
// not a missing one.
func LoadLibrary(paths ...string) (*Library, error) {
	var candidates []string
	for _, p := range paths {
		candidates = append(candidates, expandCandidate(p)...)
	}
	if len(candidates) == 0 {
		candidates = libraryCandidates(runtime.GOOS, os.Getenv)
	}
	for _, cand := range candidates {
		handle, err := openLibrary(cand)
		if err != nil {
			logger().Debug("GMT library candidate rejected", "path", cand, "error", err)
			continue
		}
		lib, err := bindLibrary(cand, handle)
		if err != nil {
			_ = closeLibrary(handle)
			return nil, err
		}
		logger().Info("loaded GMT library", "path", cand)
		return lib, nil
	}
	return nil, fmt.Errorf("%w (tried %s)", ErrLibraryNotFound, strings.Join(candidates, ", "))
}

// libraryNames returns the shared-library file names to try on an OS.
func libraryNames(goos string) []string {
	switch goos {
	case "windows":
		return []string{"gmt.dll", "gmt_w64.dll", "gmt_w32.dll"}
	case "darwin":
		return []string{"libgmt.dylib"}
	default:
		return []string{"libgmt.so", "libgmt.so.6"}
	}
}

// libraryCandidates lists load candidates in priority order. getenv is a
// parameter so the resolution order is testable without touching the
// process environment.
func libraryCandidates(goos string, getenv func(string) string) []string {
	names := libraryNames(goos)
	var candidates []string
	if dir := getenv("GMT_LIBRARY_PATH"); dir != "" {
		for _, name := range names {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	return append(candidates, names...)
}

// expandCandidate turns one user-supplied path into load candidates. A
// directory expands to the platform library names inside it; anything else
// passes through for the loader to resolve.
func expandCandidate(path string) []string {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return []string{path}
	}
	names := libraryNames(runtime.GOOS)
	candidates := make([]string, len(names))
	for i, name := range names {
		candidates[i] = filepath.Join(path, name)
	}
	return candidates
}

// bindLibrary resolves the three required symbols and registers them as Go
// functions. Registration panics only on a signature mismatch in this
// package, never on user input.
func bindLibrary(path string, handle uintptr) (*Library, error) {
	lib := &Library{path: path}
	for _, sym := range []struct {
		name string
		fptr any
	}{
		{"GMT_Create_Session", &lib.create},
		{"GMT_Call_Module", &lib.call},
		{"GMT_Destroy_Session", &lib.destroy},
	} {
		addr, err := lookupSymbol(handle, sym.name)
		if err != nil {
			return nil, fmt.Errorf("gmt: binding %s in %s: %w", sym.name, path, err)
		}
		purego.RegisterFunc(sym.fptr, addr)
	}
	return lib, nil
}
