package utils

import (
	"log"

	"cuidarmais/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// logLevel resolves the configured LOG_LEVEL, falling back to info in
// production and debug otherwise.
func logLevel() zapcore.Level {
	if lvl, err := zapcore.ParseLevel(config.AppConfig.LogLevel); err == nil {
		return lvl
	}
	if IsProduction() {
		return zap.InfoLevel
	}
	return zap.DebugLevel
}

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var cfg zap.Config

	if IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel())

	// Create logger
	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
