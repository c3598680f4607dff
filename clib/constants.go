package clib

import "sync"

// Values fixed by the GMT C API (gmt_resources.h). They are part of the
// library's binary interface and must not be changed.
const (
	// PadDefault is the number of rows and columns of boundary padding GMT
	// keeps around grids.
	PadDefault = 2

	// SessionExternal marks a session as driven by an external API rather
	// than the gmt command-line program, so GMT reports errors instead of
	// exiting the process.
	SessionExternal = 2

	// ModuleCmd tells GMT_Call_Module that arguments arrive as a single
	// command string.
	ModuleCmd = 0
)

// SessionName is the default tag new API sessions are created under. The
// tag shows up in GMT error messages and history files.
const SessionName = "pygmt"

var (
	tagMu      sync.RWMutex
	currentTag = SessionName
)

// SessionTag returns the tag used for new API sessions.
func SessionTag() string {
	tagMu.RLock()
	defer tagMu.RUnlock()
	return currentTag
}

// SetSessionTag changes the tag used for new API sessions. An empty tag
// restores [SessionName].
func SetSessionTag(tag string) {
	if tag == "" {
		tag = SessionName
	}
	tagMu.Lock()
	currentTag = tag
	tagMu.Unlock()
}
