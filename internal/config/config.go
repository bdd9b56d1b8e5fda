// Package config loads server configuration from HELLO_MCP_* environment
// variables. Every field has a default, so an empty environment yields a
// working server.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Log output formats accepted by HELLO_MCP_LOG_FORMAT.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the server's environment configuration.
type Config struct {
	LogLevel  string `env:"HELLO_MCP_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"HELLO_MCP_LOG_FORMAT" envDefault:"text"`
}

// Load reads and validates configuration from environment variables.
// Values are normalized to lowercase.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("HELLO_MCP_LOG_LEVEL: %w", err)
	}

	switch cfg.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return Config{}, fmt.Errorf(
			"HELLO_MCP_LOG_FORMAT: unknown log format %q (want text or json)",
			cfg.LogFormat,
		)
	}

	return cfg, nil
}

// Level returns the configured slog level. Configs produced by Load are
// already validated; unknown values fall back to info.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return level
}

// parseLevel maps a level name to its slog value.
func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf(
			"unknown log level %q (want debug, info, warn, or error)",
			name,
		)
	}
}
