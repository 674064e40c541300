package log

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidLevel = errors.New("invalid log level")

var Logger = zap.NewNop()

func InitProductionLogger() {
	Logger, _ = zap.NewProduction()
}

func InitDevelopmentLogger() {
	Logger, _ = zap.NewDevelopment()
}

// ParseLevel accepts debug, info, warn and error, case-insensitively
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("%q: %w", s, ErrInvalidLevel)
}

// New builds a JSON logger at level writing to file, or to stderr when file is empty
// The terminal front-end passes a file so log lines never reach the screen
func New(level, file string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Init replaces the package logger, see New
func Init(level, file string) error {
	logger, err := New(level, file)
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}
