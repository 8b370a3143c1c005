// Package logger implements the application logger port on zap.
package logger

import (
	"ops-assistant/internal/application/port/output"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ output.LoggerPort = (*LoggerAdapter)(nil)

type LoggerAdapter struct {
	sugar *zap.SugaredLogger
}

// NewLoggerAdapter builds a production JSON logger. level accepts zap's
// level names ("debug", "info", ...); anything unparseable falls back
// to info.
func NewLoggerAdapter(level string) (*LoggerAdapter, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if parsed, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}

	log, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &LoggerAdapter{sugar: log.Sugar()}, nil
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() *LoggerAdapter {
	return &LoggerAdapter{sugar: zap.NewNop().Sugar()}
}

func (l *LoggerAdapter) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *LoggerAdapter) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *LoggerAdapter) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *LoggerAdapter) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *LoggerAdapter) WithField(key string, value any) output.LoggerPort {
	return &LoggerAdapter{sugar: l.sugar.With(key, value)}
}

func (l *LoggerAdapter) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &LoggerAdapter{sugar: l.sugar.With(args...)}
}

func (l *LoggerAdapter) Close() error {
	return l.sugar.Sync()
}
