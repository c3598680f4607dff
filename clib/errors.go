package clib

import (
	"errors"
	"fmt"
)

// Package errors for the GMT C API boundary.
var (
	// ErrLibraryNotFound is returned when no GMT shared library could be
	// loaded from any candidate location.
	ErrLibraryNotFound = errors.New("gmt: could not find the GMT shared library")

	// ErrSessionCreate is returned when GMT_Create_Session yields a NULL
	// pointer.
	ErrSessionCreate = errors.New("gmt: failed to create an API session")

	// ErrSessionClosed is returned when a module call is attempted on a
	// session that has already been destroyed.
	ErrSessionClosed = errors.New("gmt: session is closed")

	// ErrSessionDestroy is returned when GMT_Destroy_Session reports a
	// nonzero status.
	ErrSessionDestroy = errors.New("gmt: failed to destroy the API session")
)

// ModuleError reports a nonzero status returned by GMT_Call_Module. GMT
// documents zero as the only success value; any other status means the
// module did not run to completion and no partial output should be trusted.
type ModuleError struct {
	Module string // module name as passed to the call
	Status int    // raw status code from the C API
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("gmt: module %q failed with status %d", e.Module, e.Status)
}
