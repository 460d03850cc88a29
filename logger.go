package raster

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent drops every record and reports itself disabled at all levels.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var (
	quiet  = slog.New(silent{})
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(quiet)
}

// SetLogger routes diagnostics from raster and displaylist to l. A nil l
// turns logging back off, which is also the initial state.
//
// The draw calls never log. Playing a display list emits:
//   - Debug: one record per decoded op, with its name and position
//   - Warn: an OpClear on a surface that cannot be cleared
//
// rasterdump adds an Info record with the frame size once a list is played.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = quiet
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
