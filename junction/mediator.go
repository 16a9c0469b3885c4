package junction

import (
	"github.com/fxsml/pipes"
	"github.com/fxsml/pipes/message"
)

// PipeAware is implemented by modules that accept pipes from other modules.
type PipeAware interface {
	// AcceptInputPipe takes a pipe that delivers messages into the module.
	AcceptInputPipe(name string, f pipes.Fitting) bool
	// AcceptOutputPipe takes a pipe that carries messages out of the module.
	AcceptOutputPipe(name string, f pipes.Fitting) bool
}

// Mediator connects a module's message handler to its junction.
// Every accepted input pipe delivers to the same handler.
type Mediator struct {
	junction *Junction
	handler  pipes.Handler
}

// NewMediator creates a mediator for j. If j is nil a new junction with
// default config is created. h receives messages from every accepted input.
func NewMediator(j *Junction, h pipes.Handler) *Mediator {
	if j == nil {
		j = New(Config{})
	}
	return &Mediator{junction: j, handler: h}
}

// Junction returns the mediated junction.
func (m *Mediator) Junction() *Junction {
	return m.junction
}

// AcceptInputPipe registers f as input pipe name and attaches the handler.
// Returns false if registration or listening fails; a pipe that was
// registered but could not be listened to stays registered.
func (m *Mediator) AcceptInputPipe(name string, f pipes.Fitting) bool {
	if err := m.junction.Register(name, Input, f); err != nil {
		return false
	}
	if err := m.junction.Listen(name, m.handler); err != nil {
		m.junction.logger.Warn("[PIPES] Input pipe accepted without listener", "pipe", name, "error", err)
		return false
	}
	return true
}

// AcceptOutputPipe registers f as output pipe name.
func (m *Mediator) AcceptOutputPipe(name string, f pipes.Fitting) bool {
	return m.junction.Register(name, Output, f) == nil
}

// Send writes msg to output pipe name.
func (m *Mediator) Send(name string, msg message.Envelope) error {
	return m.junction.Send(name, msg)
}

var _ PipeAware = (*Mediator)(nil)
