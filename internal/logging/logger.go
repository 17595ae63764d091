// Package logging wraps log/slog with the field names used by the sparsecorr
// command.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
)

// Logger wraps slog.Logger with sparsecorr-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, a discarding handler is used.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(io.Discard, nil)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return New(nil)
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("logging: invalid level %q: %w", s, err)
	}
	return l, nil
}

// WithInput adds the input path field.
func (l *Logger) WithInput(path string) *Logger {
	return &Logger{Logger: l.Logger.With("input", path)}
}

// LogLoad logs loading and validating the input matrix.
func (l *Logger) LogLoad(ctx context.Context, layout string, rows, cols, nnz int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"layout", layout,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "matrix loaded",
		"layout", layout,
		"rows", rows,
		"cols", cols,
		"nnz", nnz,
	)
}

// LogCorrelation logs one correlation call.
func (l *Logger) LogCorrelation(ctx context.Context, col1, col2 int, r float64, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "correlation failed",
			"col1", col1,
			"col2", col2,
			"error", err,
		)
	case math.IsNaN(r):
		l.WarnContext(ctx, "correlation undefined: constant column",
			"col1", col1,
			"col2", col2,
		)
	default:
		l.DebugContext(ctx, "correlation computed",
			"col1", col1,
			"col2", col2,
			"r", r,
		)
	}
}
