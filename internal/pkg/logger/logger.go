package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Service string
	Env     string
	Level   string
	// Verbose forces debug level regardless of Level.
	Verbose bool
}

// New builds a JSON production logger tagged with service and env.
// Non-production environments get the human-readable development encoder.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if isDev(opts.Env) {
		cfg = zap.NewDevelopmentConfig()
	}

	level := ParseLevel(opts.Level)
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.With(
		zap.String("service", opts.Service),
		zap.String("env", opts.Env),
	), nil
}

func ParseLevel(lvl string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
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

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	}
	return false
}
