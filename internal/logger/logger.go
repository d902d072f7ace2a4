package logger

import (
	"log/slog"
	"os"
)

// New creates the preconfigured slog.Logger used across the storefront.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "storefront"))
}
