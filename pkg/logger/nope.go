package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that discards everything.
// Used as the default before an application logger is configured, and in tests.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
