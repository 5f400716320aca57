package rug

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// Logger returns the logger the Context writes to.
// A Context created without WithLogger returns a silent logger.
//
// Log levels used by rug:
//   - [slog.LevelDebug]: image loads, transforms, layer allocation and release
//   - [slog.LevelWarn]: draws that were dropped (released source or target)
func (c *Context) Logger() *slog.Logger {
	return c.logger
}
