package pipes

import "github.com/fxsml/pipes/message"

// WriteFunc delivers a message and reports whether delivery succeeded.
type WriteFunc func(msg message.Envelope) bool

// Middleware wraps the write path of a fitting.
type Middleware func(next WriteFunc) WriteFunc

// Use returns a fitting that routes Write through middleware before
// reaching f. Connect and Disconnect go straight to f.
// Middleware is applied in reverse order: for middlewares A, B, C,
// the execution flow is A→B→C→f.Write.
//
// Only writes addressed to the returned fitting pass through middleware.
// Upstream fittings must be connected to the wrapper, not to f.
func Use(f Fitting, middleware ...Middleware) Fitting {
	write := WriteFunc(f.Write)
	for i := len(middleware) - 1; i >= 0; i-- {
		write = middleware[i](write)
	}
	return &wrapped{Fitting: f, write: write}
}

// Unwrap returns the fitting wrapped by Use, or f itself.
func Unwrap(f Fitting) Fitting {
	for {
		w, ok := f.(*wrapped)
		if !ok {
			return f
		}
		f = w.Fitting
	}
}

type wrapped struct {
	Fitting
	write WriteFunc
}

func (w *wrapped) Write(msg message.Envelope) bool {
	return w.write(msg)
}
