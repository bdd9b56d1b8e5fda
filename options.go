package hellomcp

import (
	"log/slog"
	"time"
)

// Option configures a Server using the functional options pattern.
type Option func(*serverOptions)

// serverOptions collects the configurable parts of a Server.
type serverOptions struct {
	logger *slog.Logger
	clock  func() time.Time
}

// applyServerOptions applies functional options to a serverOptions struct.
func applyServerOptions(opts []Option) *serverOptions {
	options := &serverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for diagnostic output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *serverOptions) {
		o.logger = logger
	}
}

// WithClock overrides the wall-clock source used by the time tool and the
// server manifest timestamps. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *serverOptions) {
		o.clock = clock
	}
}
