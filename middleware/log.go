package middleware

import (
	"log/slog"
	"strings"

	"github.com/fxsml/pipes"
	"github.com/fxsml/pipes/message"
)

// LogLevel represents the severity level for logging messages.
type LogLevel string

const (
	// LogLevelDebug is used for detailed information.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is used for general information messages.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is used for warning conditions.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is used for error conditions.
	LogLevelError LogLevel = "error"
)

// LogConfig holds configuration for the log middleware.
type LogConfig struct {
	// Args are additional arguments to include in all log messages.
	Args []any

	// LevelDelivered is the log level used for successful writes.
	// Defaults to LogLevelDebug.
	LevelDelivered LogLevel
	// LevelFailed is the log level used for failed writes.
	// Defaults to LogLevelWarn.
	LevelFailed LogLevel

	// MessageDelivered is the message logged on successful writes.
	// Defaults to "PIPES: Delivered".
	MessageDelivered string
	// MessageFailed is the message logged on failed writes.
	// Defaults to "PIPES: Not delivered".
	MessageFailed string
}

func parseLogLevel(level LogLevel) LogLevel {
	return LogLevel(strings.ToLower(string(level)))
}

func (c LogConfig) parse() LogConfig {
	c.LevelDelivered = parseLogLevel(c.LevelDelivered)
	if c.LevelDelivered == "" {
		c.LevelDelivered = LogLevelDebug
	}
	c.LevelFailed = parseLogLevel(c.LevelFailed)
	if c.LevelFailed == "" {
		c.LevelFailed = LogLevelWarn
	}
	if c.MessageDelivered == "" {
		c.MessageDelivered = "PIPES: Delivered"
	}
	if c.MessageFailed == "" {
		c.MessageFailed = "PIPES: Not delivered"
	}
	return c
}

func logFunc(level LogLevel, log pipes.Logger) func(msg string, args ...any) {
	switch level {
	case LogLevelDebug:
		return log.Debug
	case LogLevelWarn:
		return log.Warn
	case LogLevelError:
		return log.Error
	default:
		return log.Info
	}
}

func appendArgs(args ...[]any) []any {
	l := 0
	for _, a := range args {
		l += len(a)
	}
	result := make([]any, 0, l)
	for _, a := range args {
		result = append(result, a...)
	}
	return result
}

// Log creates middleware that logs the outcome of every write with the
// message id, type, kind and priority.
func Log(log pipes.Logger, config LogConfig) pipes.Middleware {
	if log == nil {
		log = pipes.DefaultLogger()
	}
	config = config.parse()
	logDelivered := logFunc(config.LevelDelivered, log)
	logFailed := logFunc(config.LevelFailed, log)
	return func(next pipes.WriteFunc) pipes.WriteFunc {
		return func(msg message.Envelope) bool {
			ok := next(msg)
			m := msg.Envelope()
			args := []any{"id", m.ID, "type", m.Type, "kind", m.Kind().String(), "priority", m.Priority}
			if ok {
				logDelivered(config.MessageDelivered, appendArgs(config.Args, args)...)
			} else {
				logFailed(config.MessageFailed, appendArgs(config.Args, args)...)
			}
			return ok
		}
	}
}

// Slog creates log middleware using the default slog logger.
// Additional arguments are included in all log messages.
func Slog(args ...any) pipes.Middleware {
	return Log(slog.Default(), LogConfig{Args: args})
}
