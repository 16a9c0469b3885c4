package pipes

import (
	"log/slog"

	"github.com/fxsml/pipes/message"
)

// Logger defines an interface for logging at different severity levels.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)
	// Info logs a message at info level.
	Info(msg string, args ...any)
	// Warn logs a message at warning level.
	Warn(msg string, args ...any)
	// Error logs a message at error level.
	Error(msg string, args ...any)
}

var logger Logger = slog.Default()

// SetDefaultLogger sets the logger used by all fittings.
// slog.Default() is used by default.
func SetDefaultLogger(l Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// DefaultLogger returns the logger used by all fittings.
func DefaultLogger() Logger {
	return logger
}

func messageArgs(msg *message.Message) []any {
	return []any{"id", msg.ID, "type", msg.Type, "priority", msg.Priority}
}
