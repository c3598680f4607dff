package clib

import (
	"errors"
	"testing"
)

type moduleCall struct {
	module string
	args   string
}

// fakeGMT records activity against a Library whose entry points are plain
// Go functions, so session logic runs without a real GMT install.
type fakeGMT struct {
	created   int
	destroyed int
	calls     []moduleCall

	createTag  string
	createPad  uint32
	createMode uint32
	printFunc  uintptr
	callMode   int32

	failCreate  bool
	status      int32
	destroyCode int32
}

func (f *fakeGMT) library() *Library {
	return &Library{
		path: "fake",
		create: func(tag string, pad, mode uint32, printFunc uintptr) uintptr {
			f.created++
			f.createTag = tag
			f.createPad = pad
			f.createMode = mode
			f.printFunc = printFunc
			if f.failCreate {
				return 0
			}
			return uintptr(f.created)
		},
		call: func(api uintptr, module string, mode int32, args string) int32 {
			f.callMode = mode
			f.calls = append(f.calls, moduleCall{module: module, args: args})
			return f.status
		},
		destroy: func(api uintptr) int32 {
			f.destroyed++
			return f.destroyCode
		},
	}
}

func TestNewSessionPassesAPIConstants(t *testing.T) {
	fake := &fakeGMT{}
	s, err := fake.library().NewSession()
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	defer func() { _ = s.Close() }()

	if fake.createTag != SessionName {
		t.Errorf("session tag = %q, want %q", fake.createTag, SessionName)
	}
	if fake.createPad != PadDefault {
		t.Errorf("pad = %d, want %d", fake.createPad, PadDefault)
	}
	if fake.createMode != SessionExternal {
		t.Errorf("mode = %d, want %d", fake.createMode, SessionExternal)
	}
	if fake.printFunc != 0 {
		t.Errorf("print callback = %#x, want NULL", fake.printFunc)
	}
}

func TestNewSessionNullPointer(t *testing.T) {
	fake := &fakeGMT{failCreate: true}
	s, err := fake.library().NewSession()
	if !errors.Is(err, ErrSessionCreate) {
		t.Fatalf("NewSession() error = %v, want ErrSessionCreate", err)
	}
	if s != nil {
		t.Errorf("NewSession() session = %v, want nil", s)
	}
}

func TestCallModule(t *testing.T) {
	fake := &fakeGMT{}
	s, err := fake.library().NewSession()
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.CallModule("basemap", "-R0/10/0/10 -JX10c -Baf"); err != nil {
		t.Fatalf("CallModule() = %v", err)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("recorded %d calls, want 1", len(fake.calls))
	}
	got := fake.calls[0]
	if got.module != "basemap" || got.args != "-R0/10/0/10 -JX10c -Baf" {
		t.Errorf("recorded call = %+v", got)
	}
	if fake.callMode != ModuleCmd {
		t.Errorf("call mode = %d, want %d", fake.callMode, ModuleCmd)
	}
}

func TestCallModuleNonzeroStatus(t *testing.T) {
	fake := &fakeGMT{status: 78}
	s, err := fake.library().NewSession()
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	defer func() { _ = s.Close() }()

	err = s.CallModule("coast", "-JM6i")
	if err == nil {
		t.Fatal("CallModule() = nil, want ModuleError")
	}
	var merr *ModuleError
	if !errors.As(err, &merr) {
		t.Fatalf("CallModule() error = %T, want *ModuleError", err)
	}
	if merr.Module != "coast" || merr.Status != 78 {
		t.Errorf("ModuleError = %+v, want {coast 78}", merr)
	}
}

func TestCallModuleOnClosedSession(t *testing.T) {
	fake := &fakeGMT{}
	s, err := fake.library().NewSession()
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	if err := s.CallModule("basemap", "-Baf"); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("CallModule() after Close = %v, want ErrSessionClosed", err)
	}
	if len(fake.calls) != 0 {
		t.Errorf("closed session reached the native library: %+v", fake.calls)
	}
}

func TestCloseIdempotent(t *testing.T) {
	fake := &fakeGMT{}
	s, err := fake.library().NewSession()
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("first Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	if fake.destroyed != 1 {
		t.Errorf("destroy called %d times, want exactly 1", fake.destroyed)
	}
}

func TestCloseDestroyFailure(t *testing.T) {
	fake := &fakeGMT{destroyCode: 1}
	s, err := fake.library().NewSession()
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}

	if err := s.Close(); !errors.Is(err, ErrSessionDestroy) {
		t.Errorf("Close() = %v, want ErrSessionDestroy", err)
	}
}

func TestWithSessionEmptyScope(t *testing.T) {
	// Create followed immediately by destroy: no module calls, nothing left
	// behind except the create/destroy pair.
	fake := &fakeGMT{}
	err := fake.library().WithSession(func(*Session) error { return nil })
	if err != nil {
		t.Fatalf("WithSession() = %v", err)
	}
	if fake.created != 1 || fake.destroyed != 1 {
		t.Errorf("created/destroyed = %d/%d, want 1/1", fake.created, fake.destroyed)
	}
	if len(fake.calls) != 0 {
		t.Errorf("empty scope issued module calls: %+v", fake.calls)
	}
}

func TestWithSessionDestroysOnError(t *testing.T) {
	fake := &fakeGMT{}
	boom := errors.New("plotting failed")
	err := fake.library().WithSession(func(*Session) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("WithSession() = %v, want wrapped fn error", err)
	}
	if fake.destroyed != 1 {
		t.Errorf("destroy called %d times after fn error, want 1", fake.destroyed)
	}
}

func TestWithSessionDestroysOnPanic(t *testing.T) {
	fake := &fakeGMT{}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()
		_ = fake.library().WithSession(func(*Session) error { panic("boom") })
	}()
	if fake.destroyed != 1 {
		t.Errorf("destroy called %d times after panic, want 1", fake.destroyed)
	}
}

func TestWithSessionJoinsCloseError(t *testing.T) {
	fake := &fakeGMT{destroyCode: 3}
	boom := errors.New("plotting failed")
	err := fake.library().WithSession(func(*Session) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("WithSession() = %v, want fn error preserved", err)
	}
	if !errors.Is(err, ErrSessionDestroy) {
		t.Errorf("WithSession() = %v, want close error joined", err)
	}
}

func TestSessionTagOverride(t *testing.T) {
	t.Cleanup(func() { SetSessionTag("") })

	SetSessionTag("survey-42")
	fake := &fakeGMT{}
	s, err := fake.library().NewSession()
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	defer func() { _ = s.Close() }()

	if fake.createTag != "survey-42" {
		t.Errorf("session tag = %q, want %q", fake.createTag, "survey-42")
	}

	SetSessionTag("")
	if got := SessionTag(); got != SessionName {
		t.Errorf("SessionTag() after reset = %q, want %q", got, SessionName)
	}
}

func TestRunModuleUsesDefaultLibrary(t *testing.T) {
	fake := &fakeGMT{}
	SetDefault(fake.library())
	t.Cleanup(func() { SetDefault(nil) })

	if err := RunModule("basemap", "-R0/1/0/1 -JX2c -Baf"); err != nil {
		t.Fatalf("RunModule() = %v", err)
	}
	if fake.created != 1 || fake.destroyed != 1 {
		t.Errorf("created/destroyed = %d/%d, want 1/1", fake.created, fake.destroyed)
	}
	if len(fake.calls) != 1 || fake.calls[0].module != "basemap" {
		t.Errorf("recorded calls = %+v", fake.calls)
	}
}

func TestRunModuleSurfacesStatus(t *testing.T) {
	fake := &fakeGMT{status: 71}
	SetDefault(fake.library())
	t.Cleanup(func() { SetDefault(nil) })

	err := RunModule("psconvert", "-A -P -Tg -Fmap")
	var merr *ModuleError
	if !errors.As(err, &merr) {
		t.Fatalf("RunModule() error = %v, want *ModuleError", err)
	}
	if merr.Status != 71 {
		t.Errorf("status = %d, want 71", merr.Status)
	}
	if fake.destroyed != 1 {
		t.Errorf("session not destroyed after failed call (destroyed=%d)", fake.destroyed)
	}
}
