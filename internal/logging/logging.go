// Package logging holds the slog plumbing shared by the library packages and
// the CLI.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// nullHandler discards every record.
type nullHandler struct{}

func (h *nullHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (h *nullHandler) Handle(context.Context, slog.Record) error { return nil }
func (h *nullHandler) WithAttrs(attrs []slog.Attr) slog.Handler  { return h }
func (h *nullHandler) WithGroup(name string) slog.Handler        { return h }

// Discard returns a logger that drops everything. Library defaults use it so
// callers opt in to output.
func Discard() *slog.Logger {
	return slog.New(&nullHandler{})
}

// OrDiscard returns logger, or Discard when logger is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}

// ParseLevel accepts debug, info, warn/warning and error.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", raw)
	}
}

// NewText builds a text handler logger writing to w at level.
func NewText(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
