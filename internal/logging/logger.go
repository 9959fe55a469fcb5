// Package logging defines the structured logger used by the converter.
// The only implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Warn(ctx, "reference fields are not supported", "record", title, "field", name)
type Logger interface {
	// Debug logs per-record progress.
	Debug(ctx context.Context, msg string, args ...any)
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)
	// Warn logs a non-fatal condition (dropped or unsupported data).
	Warn(ctx context.Context, msg string, args ...any)
	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)
	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
