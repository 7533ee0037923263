package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelEnv  = "MAILSTUB_LOG_LEVEL"
	FormatEnv = "MAILSTUB_LOG_FORMAT"

	FormatConsole = "console"
	FormatJSON    = "json"
)

type Config struct {
	// Level is one of debug, info, warn or error. Defaults to info.
	Level string
	// Format is console (human readable, default) or json.
	Format string
}

func ConfigFromEnv() Config {
	return Config{
		Level:  os.Getenv(LevelEnv),
		Format: os.Getenv(FormatEnv),
	}
}

// ProvideLogger builds the CLI logger from the environment.
func ProvideLogger() (*zap.Logger, error) {
	return New(ConfigFromEnv())
}

func New(cfg Config) (*zap.Logger, error) {
	level := ParseLevel(cfg.Level)

	var zcfg zap.Config
	switch strings.ToLower(cfg.Format) {
	case FormatJSON:
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case "", FormatConsole:
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zcfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown log format '%s'", cfg.Format)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel falls back to info for empty or unknown levels.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
