package logging

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "LOADMON_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks LOADMON_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel := ParseLevel(level)

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"}, // stdout belongs to the menu
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level. Matching is case-insensitive;
// unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// SetLogger replaces the global logger. Passing nil restores silent mode.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// InitializeFromEnv initializes the logger from the LOADMON_LOG_LEVEL
// environment variable. Logging stays silent unless it is set.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		// This ensures no unexpected log output in CLI commands
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

// LogRegistered logs a newly stored appliance
func LogRegistered(name string, powerWatts, dailyHours float64, storeSize int) {
	Info("Appliance registered",
		zap.String("name", name),
		zap.Float64("power_watts", powerWatts),
		zap.Float64("daily_hours", dailyHours),
		zap.Int("store_size", storeSize),
	)
}

// LogSearch logs a completed name search
func LogSearch(query string, matches int, storeSize int) {
	Info("Appliance search",
		zap.String("query", query),
		zap.Int("matches", matches),
		zap.Int("store_size", storeSize),
	)
}

// LogRejectedInput logs input the console refused or normalized.
// field is empty for menu input.
func LogRejectedInput(field string, input string, err error) {
	Debug("Input rejected",
		zap.String("field", field),
		zap.String("input", truncate(input)),
		zap.Error(err),
	)
}

// LogStateChange logs a menu state transition
func LogStateChange(from, to string) {
	Debug("Menu state change",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// Helper functions

// maxLoggedInput is the most bytes of user input written to a log entry
const maxLoggedInput = 256

func truncate(s string) string {
	if len(s) <= maxLoggedInput {
		return s
	}
	// Cut on a rune boundary
	cut := maxLoggedInput
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
