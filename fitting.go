package pipes

import "github.com/fxsml/pipes/message"

// Fitting is a node in a pipes graph.
type Fitting interface {
	// Connect attaches next as the downstream fitting.
	// Single-output fittings return false if an output is already connected.
	Connect(next Fitting) bool
	// Disconnect detaches and returns the downstream fitting, or nil.
	Disconnect() Fitting
	// Write delivers msg downstream and reports whether delivery succeeded
	// all the way through.
	Write(msg message.Envelope) bool
}

var (
	_ Fitting = (*Pipe)(nil)
	_ Fitting = (*Listener)(nil)
	_ Fitting = (*Filter)(nil)
	_ Fitting = (*Queue)(nil)
	_ Fitting = (*TeeSplit)(nil)
	_ Fitting = (*TeeMerge)(nil)
)
