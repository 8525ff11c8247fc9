// Package logging defines the structured-logging interface shared by the
// client, the sync coordinator and the reference backend.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are key–value pairs:
//
//	log.Warn(ctx, "remote mirror failed", "op", "createEmployee", "error", err)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
