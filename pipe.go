package pipes

import (
	"sync"

	"github.com/fxsml/pipes/message"
)

// Pipe is a single-output passthrough fitting.
// It is embedded by Filter, Queue and TeeMerge for output handling.
type Pipe struct {
	mu     sync.RWMutex
	output Fitting
}

// NewPipe creates an unconnected pipe.
func NewPipe() *Pipe {
	return &Pipe{}
}

// Connect attaches next as the output.
// Returns false if next is nil or an output is already connected.
func (p *Pipe) Connect(next Fitting) bool {
	if next == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.output != nil {
		logger.Debug("[PIPES] Connect rejected, output already connected")
		return false
	}
	p.output = next
	return true
}

// Disconnect detaches and returns the output, or nil if none is connected.
func (p *Pipe) Disconnect() Fitting {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.output
	p.output = nil
	return out
}

// Output returns the connected output, or nil.
func (p *Pipe) Output() Fitting {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.output
}

// Write forwards msg to the output.
func (p *Pipe) Write(msg message.Envelope) bool {
	return p.forward(msg)
}

// forward writes msg to the output without holding the lock, so the
// downstream may rewire this pipe. Returns false if nothing is connected.
func (p *Pipe) forward(msg message.Envelope) bool {
	out := p.Output()
	if out == nil {
		logger.Debug("[PIPES] Write dropped, no output connected", messageArgs(msg.Envelope())...)
		return false
	}
	return out.Write(msg)
}
