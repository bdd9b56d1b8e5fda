package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	hellomcp "github.com/wagiedev/hello-world-mcp"
	"github.com/wagiedev/hello-world-mcp/internal/config"
)

// main starts the Hello World MCP server on stdio.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hello-world-mcp: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := hellomcp.NewServer(hellomcp.WithLogger(logger))
	if err := server.Run(ctx); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger described by cfg. The protocol owns
// stdout, so diagnostics must never write there.
func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}

	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
