// Package logger configures the structured logger shared by the daemon,
// the HTTP layer, and the CLI.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ContextKey is the type for context keys used by the logger.
type ContextKey string

// LoggerKey is the context key for the request-scoped logger instance.
const LoggerKey ContextKey = "logger"

// New creates a console logger writing to stdout.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewWithWriter creates a logger with a custom writer. Tests pass a
// buffer; the daemon can point this at a file.
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// WithContext adds the logger to the context.
func WithContext(ctx context.Context, log zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, log)
}

// FromContext retrieves the logger from the context, falling back to a
// fresh default logger. The pointer return mirrors zerolog.Ctx, so event
// chains can start directly on the call.
func FromContext(ctx context.Context) *zerolog.Logger {
	if log, ok := ctx.Value(LoggerKey).(zerolog.Logger); ok {
		return &log
	}
	log := New()
	return &log
}
