// Package test provides shared fixtures for pipes tests.
package test

import (
	"sync"

	"github.com/fxsml/pipes"
	"github.com/fxsml/pipes/message"
)

// Recorder is a pipes.Handler that keeps every message it receives.
type Recorder struct {
	mu       sync.Mutex
	messages []message.Envelope
}

// HandlePipeMessage records msg.
func (r *Recorder) HandlePipeMessage(msg message.Envelope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns the recorded messages in arrival order.
func (r *Recorder) Messages() []message.Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]message.Envelope(nil), r.messages...)
}

// Len returns the number of recorded messages.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

// Reset drops all recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}

// Failing is a terminal fitting whose Write always reports failure.
// It counts the writes it receives.
type Failing struct {
	mu     sync.Mutex
	writes int
}

// Connect always returns false.
func (f *Failing) Connect(pipes.Fitting) bool { return false }

// Disconnect always returns nil.
func (f *Failing) Disconnect() pipes.Fitting { return nil }

// Write counts msg and returns false.
func (f *Failing) Write(message.Envelope) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	return false
}

// Writes returns the number of writes received.
func (f *Failing) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

// Listen returns a listener that records into a new Recorder.
func Listen() (*pipes.Listener, *Recorder) {
	r := &Recorder{}
	return pipes.NewListener(r), r
}

var _ pipes.Fitting = (*Failing)(nil)
