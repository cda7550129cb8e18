// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger returns a text logger on dst tagged with a fresh run ID.
// Levels: quiet=Error, default=Warn, -v=Info, -vv and up=Debug.
func NewLogger(dst io.Writer, verbosity int, quiet bool) (*slog.Logger, string) {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity > 1:
		level = slog.LevelDebug
	}
	runID := uuid.NewString()[:8]
	h := slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("run", runID), runID
}

// Warnf prints a plain warning line unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
