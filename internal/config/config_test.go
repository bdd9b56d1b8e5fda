package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, LogFormatText, cfg.LogFormat)
	require.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HELLO_MCP_LOG_LEVEL", "debug")
	t.Setenv("HELLO_MCP_LOG_FORMAT", "json")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, cfg.Level())
	require.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestLoadNormalizesCase(t *testing.T) {
	t.Setenv("HELLO_MCP_LOG_LEVEL", "WARN")
	t.Setenv("HELLO_MCP_LOG_FORMAT", "JSON")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	t.Setenv("HELLO_MCP_LOG_LEVEL", "verbose")

	_, err := Load()

	require.Error(t, err)
	require.Contains(t, err.Error(), "HELLO_MCP_LOG_LEVEL")
	require.Contains(t, err.Error(), `"verbose"`)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	t.Setenv("HELLO_MCP_LOG_FORMAT", "yaml")

	_, err := Load()

	require.Error(t, err)
	require.Contains(t, err.Error(), "HELLO_MCP_LOG_FORMAT")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "mixed case", input: "DEBUG", want: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := parseLevel(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, level)
		})
	}
}

func TestLevelFallsBackToInfo(t *testing.T) {
	cfg := Config{LogLevel: "nonsense"}

	require.Equal(t, slog.LevelInfo, cfg.Level())
}
