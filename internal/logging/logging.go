package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. JSON production output by default, or the
// console development encoder when development is set. verbose forces debug.
func New(level string, development bool, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	atomicLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		atomicLevel = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.Level = atomicLevel

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("musclemap"), nil
}

// ParseLevel treats an empty level as info.
func ParseLevel(level string) (zap.AtomicLevel, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
	atomicLevel, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return atomicLevel, nil
}
