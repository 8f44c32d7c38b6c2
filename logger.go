package hexcave

import "log/slog"

import "github.com/tinne26/hexcave/internal/logger"

// Sets the logger used by hexcave and all its subpackages. Passing
// nil restores the default logger, which discards everything.
//
// The logger can be swapped at any time and from any goroutine.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Returns the logger currently in use.
func Logger() *slog.Logger {
	return logger.Get()
}
