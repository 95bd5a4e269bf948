package log

import (
	"fmt"
	"io"
	"sync"
)

// FragmentLogger records every rendered code fragment with its side and
// object name, for tracing what a run substituted.
type FragmentLogger interface {
	Log(side, object, code string)
}

type fragmentLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewFragments creates a new FragmentLogger. If writer is nil, returns a no-op logger.
func NewFragments(w io.Writer) FragmentLogger {
	return &fragmentLogger{w: w}
}

// Log emits a single line: "<side> <object>: <code>".
func (f *fragmentLogger) Log(side, object, code string) {
	if f.w == nil || code == "" {
		return
	}
	line := fmt.Sprintf("%s %s: %s\n", side, object, code)

	f.mu.Lock()
	_, _ = f.w.Write([]byte(line))
	f.mu.Unlock()
}
