package pipes

import (
	"slices"
	"sync"

	"github.com/fxsml/pipes/message"
)

// TeeSplit writes every message to all of its outputs.
// Unlike single-output fittings it accepts any number of connections.
type TeeSplit struct {
	mu      sync.RWMutex
	outputs []Fitting
}

// NewTeeSplit creates a tee split connected to the given outputs.
func NewTeeSplit(outputs ...Fitting) *TeeSplit {
	t := &TeeSplit{}
	for _, out := range outputs {
		t.Connect(out)
	}
	return t
}

// Connect appends output. Returns false only if output is nil.
func (t *TeeSplit) Connect(output Fitting) bool {
	if output == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.outputs = append(t.outputs, output)
	return true
}

// Disconnect removes and returns the most recently connected output,
// or nil if there are none.
func (t *TeeSplit) Disconnect() Fitting {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(t.outputs)
	if n == 0 {
		return nil
	}
	out := t.outputs[n-1]
	t.outputs[n-1] = nil
	t.outputs = t.outputs[:n-1]
	return out
}

// DisconnectFitting removes the first output identical to target and
// returns it, or nil if target is not connected.
func (t *TeeSplit) DisconnectFitting(target Fitting) Fitting {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := slices.IndexFunc(t.outputs, func(out Fitting) bool { return out == target })
	if i < 0 {
		return nil
	}
	out := t.outputs[i]
	t.outputs = slices.Delete(t.outputs, i, i+1)
	return out
}

// Outputs returns the connected outputs in connection order.
func (t *TeeSplit) Outputs() []Fitting {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.outputs)
}

// Write delivers msg to every output connected at call time, in connection
// order. Every output is visited; the result is false if any failed.
func (t *TeeSplit) Write(msg message.Envelope) bool {
	ok := true
	for _, out := range t.Outputs() {
		if !out.Write(msg) {
			ok = false
		}
	}
	return ok
}

// TeeMerge joins several input fittings into one output.
// Inputs are connected into the merge, which then behaves as a Pipe:
// writes pass through in call order.
type TeeMerge struct {
	Pipe
}

// NewTeeMerge creates a merge and connects each input into it.
func NewTeeMerge(inputs ...Fitting) *TeeMerge {
	m := &TeeMerge{}
	for _, in := range inputs {
		m.ConnectInput(in)
	}
	return m
}

// ConnectInput connects input's output to the merge. Returns false if
// input is nil or already has an output.
func (m *TeeMerge) ConnectInput(input Fitting) bool {
	if input == nil {
		return false
	}
	return input.Connect(m)
}
