package logging

import (
	"context"
	"log/slog"

	"leetstats/internal/domain/ports"
)

type ctxKey struct{}

// SLogger is an adapter around slog.Logger implementing ports.Logger.
type SLogger struct {
	logger *slog.Logger
}

var _ ports.Logger = (*SLogger)(nil)

// New creates a new SLogger.
func New(logger *slog.Logger) *SLogger {
	return &SLogger{logger: logger}
}

// WithRequestID returns a context whose log lines carry requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID returns the id stored by WithRequestID, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Info logs an informational message.
func (l *SLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args)
}

// Warn logs a recoverable failure.
func (l *SLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args)
}

// Error logs an error message.
func (l *SLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, msg, args)
}

func (l *SLogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	if l == nil || l.logger == nil {
		return
	}
	if id := RequestID(ctx); id != "" {
		// Full slice expression so the caller's backing array is never written.
		args = append(args[:len(args):len(args)], "request_id", id)
	}
	l.logger.Log(ctx, level, msg, args...)
}
