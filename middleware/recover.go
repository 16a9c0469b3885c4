package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/fxsml/pipes"
	"github.com/fxsml/pipes/message"
)

// RecoveryError wraps a panic value with the stack trace.
type RecoveryError struct {
	// PanicValue is the original value that was passed to panic().
	PanicValue any
	// StackTrace contains the full stack trace at the point of panic.
	StackTrace string
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("panic recovered: %v", e.PanicValue)
}

// RecoverFunc is called with the message whose write panicked.
type RecoverFunc func(msg message.Envelope, err *RecoveryError)

// Recover creates middleware that turns a panic anywhere downstream of the
// wrapped fitting into a failed write. The panic is logged at error level
// with its stack trace. Pass nil to use pipes.DefaultLogger().
func Recover(log pipes.Logger) pipes.Middleware {
	if log == nil {
		log = pipes.DefaultLogger()
	}
	return RecoverWith(func(msg message.Envelope, err *RecoveryError) {
		m := msg.Envelope()
		log.Error("[PIPES] Write panicked", "id", m.ID, "type", m.Type, "error", err, "stack", err.StackTrace)
	})
}

// RecoverWith creates recover middleware that reports panics to handle.
func RecoverWith(handle RecoverFunc) pipes.Middleware {
	return func(next pipes.WriteFunc) pipes.WriteFunc {
		return func(msg message.Envelope) (ok bool) {
			defer func() {
				if r := recover(); r != nil {
					ok = false
					if handle != nil {
						handle(msg, &RecoveryError{
							PanicValue: r,
							StackTrace: string(debug.Stack()),
						})
					}
				}
			}()
			return next(msg)
		}
	}
}
