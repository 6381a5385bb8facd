// Package logging builds the process logger and carries request-scoped
// loggers through context.
//
// Services log failures with the operation, the entity identifiers and the
// full error chain:
//
//	logger.ErrorContext(ctx, "failed to fetch seller",
//	    slog.String("operation", "Seller"),
//	    slog.Int64("id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error in any case, defaulting to info. format "text" selects the text
// handler and anything else JSON. Debug loggers also record the call site.
// Every attribute passes through the redaction rules in redact.go.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
