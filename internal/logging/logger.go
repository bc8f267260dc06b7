package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "GUESTSHEET_LOG_LEVEL"

// LogFileEnvVar overrides where log output is written.
const LogFileEnvVar = "GUESTSHEET_LOG_FILE"

// ParseLevel maps a level name to a zap level.
// Unknown non-empty names fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize creates a new logger with the specified level writing to outputPath.
// If level is empty, it checks the GUESTSHEET_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// The TUI owns the terminal, so callers should pass a file path. An empty
// outputPath falls back to GUESTSHEET_LOG_FILE, then stderr.
func Initialize(level string, outputPath string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if outputPath == "" {
		outputPath = os.Getenv(LogFileEnvVar)
	}
	if outputPath == "" {
		outputPath = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{outputPath},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Log files get no color codes
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// SetLogger replaces the global logger. Intended for tests (zaptest/observer).
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogFieldUpdate logs an edit to a sheet field.
// Only the length is recorded; values may be secrets (WiFi password).
func LogFieldUpdate(section string, field string, length int) {
	Debug("Field updated",
		zap.String("section", section),
		zap.String("field", field),
		zap.Int("length", length),
	)
}

// LogEntryAdded logs a pet or note being appended to its list
func LogEntryAdded(kind string, count int) {
	Info("Entry added",
		zap.String("kind", kind),
		zap.Int("count", count),
	)
}

// LogEntryRejected logs an add attempt on an incomplete entry
func LogEntryRejected(kind string) {
	Debug("Entry incomplete, not added",
		zap.String("kind", kind),
	)
}

// LogValidation logs the outcome of a validation pass. A nil err means it passed.
func LogValidation(err error) {
	if err == nil {
		Debug("Validation passed")
		return
	}
	Info("Validation failed", zap.Error(err))
}

// LogModeChange logs a switch between editing and viewing
func LogModeChange(from string, to string) {
	Info("Mode changed",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
