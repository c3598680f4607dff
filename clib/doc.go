// Package clib binds the subset of the GMT C API needed to drive plotting
// from Go.
//
// The GMT shared library is loaded at runtime by name (no cgo), so this
// package compiles everywhere and fails with [ErrLibraryNotFound] only when
// a session is actually needed on a machine without GMT. Install GMT 6 from
// your package manager. On macOS:
//
//	brew install gmt
//
// On Ubuntu/Debian:
//
//	apt-get install gmt libgmt6
//
// Three entry points are bound: GMT_Create_Session, GMT_Call_Module and
// GMT_Destroy_Session. Everything this package does is expressed through
// them: open a session, pass a module name plus a command-line style
// argument string, and destroy the session again. [Library.WithSession]
// guarantees destruction on every exit path and is the intended way to use
// sessions:
//
//	lib, err := clib.Default()
//	if err != nil {
//	    // GMT not installed, or not found via GMT_LIBRARY_PATH
//	}
//	err = lib.WithSession(func(s *clib.Session) error {
//	    return s.CallModule("basemap", "-R0/10/0/10 -JX10c -Baf")
//	})
//
// Sessions are not safe for concurrent use. A Library may be shared freely;
// each call sequence should run in its own session.
package clib
