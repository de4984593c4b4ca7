package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	logger := New("debug", "production")
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(nil, slog.LevelDebug))

	logger = New("warn", "development")
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(nil, slog.LevelInfo))
}

func TestNamed(t *testing.T) {
	logger := Default().Named("booking")
	require.NotNil(t, logger)
}
