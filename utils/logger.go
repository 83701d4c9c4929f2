package utils

import (
	"log"

	"coursely/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide zap instance. Prefer GetLogger over reading it
// directly.
var Logger *zap.Logger

// InitializeLogger builds the logger: JSON output in production, colored
// console output in development, level taken from LOG_LEVEL.
func InitializeLogger() {
	var cfg zap.Config
	if IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel())

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// logLevel resolves the configured level, falling back to info in production
// and debug everywhere else.
func logLevel() zapcore.Level {
	var lvl zapcore.Level
	if s := config.AppConfig.LogLevel; s != "" {
		if err := lvl.UnmarshalText([]byte(s)); err == nil {
			return lvl
		}
	}
	if IsProduction() {
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// GetLogger returns the global logger, building it on first use.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
