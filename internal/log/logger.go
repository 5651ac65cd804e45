// Package log writes verbose progress messages for the readage CLI.
package log

import (
	"fmt"
	"io"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr). A nil
// *Logger discards everything.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes a formatted message followed by a newline to W.
// It is a no-op when the logger is nil or disabled.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
