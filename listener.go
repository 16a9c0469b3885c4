package pipes

import "github.com/fxsml/pipes/message"

// Handler receives messages at the end of a chain.
type Handler interface {
	HandlePipeMessage(msg message.Envelope)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(msg message.Envelope)

// HandlePipeMessage calls f(msg).
func (f HandlerFunc) HandlePipeMessage(msg message.Envelope) {
	f(msg)
}

// Listener terminates a chain by invoking a Handler.
// It never accepts a downstream connection.
type Listener struct {
	handler Handler
}

// NewListener creates a listener that calls h for every write.
func NewListener(h Handler) *Listener {
	return &Listener{handler: h}
}

// Connect always returns false.
func (l *Listener) Connect(Fitting) bool {
	return false
}

// Disconnect always returns nil.
func (l *Listener) Disconnect() Fitting {
	return nil
}

// Write calls the handler synchronously and returns true.
func (l *Listener) Write(msg message.Envelope) bool {
	if l.handler != nil {
		l.handler.HandlePipeMessage(msg)
	}
	return true
}
