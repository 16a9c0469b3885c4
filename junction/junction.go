package junction

import (
	"fmt"
	"slices"
	"sync"

	"github.com/fxsml/pipes"
	"github.com/fxsml/pipes/message"
)

// Direction tags a registered pipe as an input or an output of the module.
type Direction string

const (
	// Input pipes carry messages into the module.
	Input Direction = "input"
	// Output pipes carry messages out of the module.
	Output Direction = "output"
)

// Config configures a Junction.
type Config struct {
	// Logger receives registration and delivery diagnostics.
	// Default: pipes.DefaultLogger().
	Logger pipes.Logger
}

func (c Config) parse() Config {
	if c.Logger == nil {
		c.Logger = pipes.DefaultLogger()
	}
	return c
}

// Junction is a per-module registry of named pipes.
// Registration and removal are mutually exclusive with lookups; message
// traversal runs outside the lock.
type Junction struct {
	logger pipes.Logger

	mu       sync.RWMutex
	fittings map[string]pipes.Fitting
	types    map[string]Direction
	inputs   []string
	outputs  []string
}

// New creates an empty junction.
func New(cfg Config) *Junction {
	cfg = cfg.parse()
	return &Junction{
		logger:   cfg.Logger,
		fittings: make(map[string]pipes.Fitting),
		types:    make(map[string]Direction),
	}
}

// Register records f under name with direction dir.
// Returns ErrPipeExists if name is registered in either direction,
// ErrInvalidDirection for anything but Input or Output and ErrNilFitting
// for nil f.
func (j *Junction) Register(name string, dir Direction, f pipes.Fitting) error {
	if f == nil {
		return ErrNilFitting
	}
	if dir != Input && dir != Output {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.fittings[name]; ok {
		j.logger.Warn("[PIPES] Pipe registration rejected", "pipe", name, "direction", dir, "error", ErrPipeExists)
		return fmt.Errorf("%w: %s", ErrPipeExists, name)
	}
	j.fittings[name] = f
	j.types[name] = dir
	if dir == Input {
		j.inputs = append(j.inputs, name)
	} else {
		j.outputs = append(j.outputs, name)
	}
	j.logger.Debug("[PIPES] Pipe registered", "pipe", name, "direction", dir)
	return nil
}

// RegisterPipe is Register reporting only success.
func (j *Junction) RegisterPipe(name string, dir Direction, f pipes.Fitting) bool {
	return j.Register(name, dir, f) == nil
}

// HasPipe reports whether name is registered in either direction.
func (j *Junction) HasPipe(name string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, ok := j.fittings[name]
	return ok
}

// HasInputPipe reports whether name is a registered input pipe.
func (j *Junction) HasInputPipe(name string) bool {
	_, ok := j.lookup(name, Input)
	return ok
}

// HasOutputPipe reports whether name is a registered output pipe.
func (j *Junction) HasOutputPipe(name string) bool {
	_, ok := j.lookup(name, Output)
	return ok
}

// RemovePipe unregisters name. It is a no-op if name is not registered.
// The fitting itself is left connected.
func (j *Junction) RemovePipe(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	dir, ok := j.types[name]
	if !ok {
		return
	}
	switch dir {
	case Input:
		j.inputs = removeName(j.inputs, name)
	case Output:
		j.outputs = removeName(j.outputs, name)
	}
	delete(j.fittings, name)
	delete(j.types, name)
	j.logger.Debug("[PIPES] Pipe removed", "pipe", name, "direction", dir)
}

// RetrievePipe returns the fitting registered under name, or nil.
func (j *Junction) RetrievePipe(name string) pipes.Fitting {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.fittings[name]
}

// InputPipes returns the input pipe names in registration order.
func (j *Junction) InputPipes() []string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.inputs)
}

// OutputPipes returns the output pipe names in registration order.
func (j *Junction) OutputPipes() []string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.outputs)
}

// Listen connects a listener calling h as the downstream of input pipe name.
// Returns ErrNotInput if name is not a registered input and
// ErrAlreadyConnected if the pipe already has a downstream fitting.
func (j *Junction) Listen(name string, h pipes.Handler) error {
	f, ok := j.lookup(name, Input)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotInput, name)
	}
	if !f.Connect(pipes.NewListener(h)) {
		return fmt.Errorf("%w: %s", ErrAlreadyConnected, name)
	}
	return nil
}

// AddPipeListener is Listen reporting only success.
func (j *Junction) AddPipeListener(name string, h pipes.Handler) bool {
	if err := j.Listen(name, h); err != nil {
		j.logger.Debug("[PIPES] Listener not attached", "pipe", name, "error", err)
		return false
	}
	return true
}

// Send writes msg to output pipe name. Returns ErrNotOutput without
// touching any fitting if name is not a registered output, and
// ErrNotDelivered if the write reported failure.
func (j *Junction) Send(name string, msg message.Envelope) error {
	f, ok := j.lookup(name, Output)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotOutput, name)
	}
	if !f.Write(msg) {
		return fmt.Errorf("%w: %s", ErrNotDelivered, name)
	}
	return nil
}

// SendMessage is Send reporting only success.
func (j *Junction) SendMessage(name string, msg message.Envelope) bool {
	if err := j.Send(name, msg); err != nil {
		j.logger.Debug("[PIPES] Message not sent", "pipe", name, "id", msg.Envelope().ID, "error", err)
		return false
	}
	return true
}

func (j *Junction) lookup(name string, dir Direction) (pipes.Fitting, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.types[name] != dir {
		return nil, false
	}
	f, ok := j.fittings[name]
	return f, ok
}

func removeName(names []string, name string) []string {
	if i := slices.Index(names, name); i >= 0 {
		return slices.Delete(names, i, i+1)
	}
	return names
}
