package clib

import (
	"errors"
	"fmt"
)

// Session wraps the opaque GMTAPI_CTRL pointer returned by
// GMT_Create_Session. The pointer has no structure visible to Go: it is
// created, threaded through module calls, and destroyed exactly once.
//
// A Session is not safe for concurrent use.
type Session struct {
	lib    *Library
	ptr    uintptr
	closed bool
}

// NewSession creates a fresh API session. The NULL print-callback makes GMT
// use its default message printer. A NULL session pointer from the C side
// is reported as [ErrSessionCreate].
func (l *Library) NewSession() (*Session, error) {
	tag := SessionTag()
	ptr := l.create(tag, PadDefault, SessionExternal, 0)
	if ptr == 0 {
		return nil, ErrSessionCreate
	}
	logger().Debug("created GMT API session", "tag", tag)
	return &Session{lib: l, ptr: ptr}, nil
}

// CallModule invokes a named GMT module with a command-line style argument
// string, e.g.
//
//	s.CallModule("basemap", "-R0/10/0/10 -JX10c -Baf")
//
// A nonzero status from the C API is returned as a [*ModuleError]; it is
// never swallowed. Calling on a closed session returns [ErrSessionClosed]
// without touching the native library.
func (s *Session) CallModule(module, args string) error {
	if s.closed {
		return ErrSessionClosed
	}
	logger().Debug("calling GMT module", "module", module, "args", args)
	status := s.lib.call(s.ptr, module, ModuleCmd, args)
	if status != 0 {
		return &ModuleError{Module: module, Status: int(status)}
	}
	return nil
}

// Close destroys the native session. Close is idempotent: only the first
// call reaches GMT_Destroy_Session, so double-destroy cannot happen.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	status := s.lib.destroy(s.ptr)
	s.ptr = 0
	if status != 0 {
		return fmt.Errorf("%w: status %d", ErrSessionDestroy, status)
	}
	logger().Debug("destroyed GMT API session")
	return nil
}

// WithSession creates a session, runs fn, and destroys the session on every
// exit path: normal return, error, or panic. When both fn and Close fail,
// the errors are joined so neither is lost.
func (l *Library) WithSession(fn func(*Session) error) (err error) {
	s, err := l.NewSession()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(s)
}
