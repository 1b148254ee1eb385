package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.SugaredLogger

// Init builds the process-wide console logger at the requested level and
// installs it. Level names follow zap ("debug", "info", "warn", "error").
func Init(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = parsed < zapcore.ErrorLevel

	z, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	global = z.Sugar()
	return nil
}

// Logger must return a non-nil *SugaredLogger, so callers before Init
// (and tests) get a no-op logger instead of a nil dereference.
func Logger() *zap.SugaredLogger {
	if global == nil {
		return zap.NewNop().Sugar()
	}
	return global
}

// Sync flushes buffered log entries. Safe to call without Init.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
