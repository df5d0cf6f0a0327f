// Package zaplog adapts go.uber.org/zap to the observability.Logger
// interface used throughout the library.
package zaplog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/akshara/lipi/observability"
)

const defaultLevel = "info"

// New wraps an existing zap logger.
func New(logger *zap.Logger) observability.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger}
}

// NewProduction builds a structured JSON logger writing to stdout. The
// LOG_LEVEL environment variable selects the level; invalid or unset
// values fall back to info.
func NewProduction() (observability.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))))); err != nil {
		_ = level.UnmarshalText([]byte(defaultLevel))
	}
	cfg := zap.Config{
		Level:    level,
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "message",
			TimeKey:     "timestamp",
			LevelKey:    "severity",
			EncodeTime:  zapcore.RFC3339NanoTimeEncoder,
			EncodeLevel: zapcore.LowercaseLevelEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{logger: logger}, nil
}

type zapLogger struct {
	logger *zap.Logger
}

func (l *zapLogger) Debug(msg string, fields ...observability.Field) {
	l.logger.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...observability.Field) {
	l.logger.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...observability.Field) {
	l.logger.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...observability.Field) {
	l.logger.Error(msg, zapFields(fields)...)
}

func (l *zapLogger) With(fields ...observability.Field) observability.Logger {
	return &zapLogger{logger: l.logger.With(zapFields(fields)...)}
}

func zapFields(fields []observability.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key(), f.Value()))
	}
	return out
}
