// Package logging defines the structured-logging contract used across the
// client kit. Implementations wrap slog or zerolog; consumers depend only on
// the Logger interface so each binary can pick its backend.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "searching assignments", "keyword", kw, "page", page)
type Logger interface {
	// Debug logs fine-grained request/response details.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but recoverable conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
