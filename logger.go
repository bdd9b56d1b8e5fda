package hellomcp

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Use this when you want silent operation with no logging overhead.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// loggerOrNop returns log tagged with the component field, substituting a
// NopLogger when log is nil.
func loggerOrNop(log *slog.Logger, component string) *slog.Logger {
	if log == nil {
		log = NopLogger()
	}

	return log.With("component", component)
}
