package utils

import (
	"testing"

	"cuidarmais/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func buildLoggerWithLevel(t *testing.T, level string) *zap.Logger {
	t.Helper()
	prev := config.AppConfig.LogLevel
	prevLogger := Logger
	t.Cleanup(func() {
		config.AppConfig.LogLevel = prev
		Logger = prevLogger
	})
	config.AppConfig.LogLevel = level
	Logger = nil
	return GetLogger()
}

func TestLoggerHonorsConfiguredLevel(t *testing.T) {
	logger := buildLoggerWithLevel(t, "warn")
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info must be suppressed at LOG_LEVEL=warn")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn must be enabled at LOG_LEVEL=warn")
	}

	logger = buildLoggerWithLevel(t, "debug")
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug must be enabled at LOG_LEVEL=debug")
	}
}

func TestLoggerFallsBackOnInvalidLevel(t *testing.T) {
	logger := buildLoggerWithLevel(t, "barulhento")
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("an invalid LOG_LEVEL must fall back to debug in development")
	}
}
