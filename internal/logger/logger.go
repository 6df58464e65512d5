// Package logger builds the diagnostic logger used across kapa.
// Query results never go through it; they are written by the renderer.
package logger

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Verbose enables debug output,
// otherwise only warnings and errors are emitted.
func New(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
