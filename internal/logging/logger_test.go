package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"trace", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.level))
		})
	}
}

func TestNew_AppliesLevel(t *testing.T) {
	for _, format := range []string{"", FormatConsole, FormatJSON} {
		logger, err := New(Config{Level: "warn", Format: format})

		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	logger, err := New(Config{Format: "xml"})

	assert.Error(t, err)
	assert.Nil(t, logger)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(LevelEnv, "debug")
	t.Setenv(FormatEnv, "json")

	cfg := ConfigFromEnv()

	assert.Equal(t, Config{Level: "debug", Format: "json"}, cfg)
}
