// Package logging builds the zap logger used by daikinctl.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jattkaim/daikinhttp"
)

// Log levels accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// defaultLevel applies when an unknown level string is configured.
const defaultLevel = zapcore.WarnLevel

func toZapLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultLevel
	}
}

// newConsoleCore writes to stderr so command output on stdout stays parseable.
func newConsoleCore(level zapcore.Level) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(cfg)
	ws := zapcore.Lock(os.Stderr)
	return zapcore.NewCore(encoder, ws, zap.NewAtomicLevelAt(level))
}

// New returns a sugared console logger filtered at level.
func New(level string) *zap.SugaredLogger {
	return zap.New(newConsoleCore(toZapLevel(level))).Sugar()
}

// ForClient wraps logger for the daikinhttp client.
func ForClient(logger *zap.SugaredLogger) daikinhttp.Logger {
	return daikinhttp.NewZapAdapter(logger.Named("daikin"))
}
