// Package logger holds the process-wide logger shared by all the
// hexcave subpackages. Logging is silent until someone calls [Set].
package logger

import "context"
import "log/slog"
import "sync/atomic"

// Discards every record. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct {}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(nopHandler{}))
}

// Replaces the active logger. A nil logger restores the silent default.
// Safe to call from any goroutine.
func Set(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	current.Store(logger)
}

// Returns the active logger. Never nil.
func Get() *slog.Logger {
	return current.Load()
}
