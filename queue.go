package pipes

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/fxsml/pipes/message"
)

// QueueMode selects the ordering discipline of a Queue.
type QueueMode string

const (
	// ModeFIFO releases messages in write order. Default.
	ModeFIFO QueueMode = "fifo"
	// ModeSort keeps the buffer stably sorted by ascending priority value.
	ModeSort QueueMode = "sort"
)

// ControlPolicy decides what a Queue does with message types it does not
// recognize.
type ControlPolicy string

const (
	// AbsorbUnknown consumes unrecognized messages and reports success.
	// Default.
	AbsorbUnknown ControlPolicy = "absorb"
	// ForwardUnknown writes unrecognized messages to the output and
	// returns the downstream result.
	ForwardUnknown ControlPolicy = "forward"
)

// QueueConfig configures a Queue.
type QueueConfig struct {
	// Mode is the initial ordering discipline. Default: ModeFIFO.
	Mode QueueMode
	// UnknownControl handles message types other than normal and queue
	// control. Default: AbsorbUnknown.
	UnknownControl ControlPolicy
}

func (c QueueConfig) parse() QueueConfig {
	c.Mode = parseQueueMode(c.Mode)
	if ControlPolicy(strings.ToLower(string(c.UnknownControl))) == ForwardUnknown {
		c.UnknownControl = ForwardUnknown
	} else {
		c.UnknownControl = AbsorbUnknown
	}
	return c
}

func parseQueueMode(m QueueMode) QueueMode {
	if QueueMode(strings.ToLower(string(m))) == ModeSort {
		return ModeSort
	}
	return ModeFIFO
}

// Queue is a single-output fitting that buffers normal messages until a
// flush control message releases them downstream.
//
// Queues are not named: the first queue in a chain consumes every queue
// control message, so a queue further down never sees them.
type Queue struct {
	Pipe

	unknown ControlPolicy

	bufMu  sync.Mutex
	mode   QueueMode
	buffer []message.Envelope
}

// NewQueue creates an unconnected, empty queue.
func NewQueue(cfg QueueConfig) *Queue {
	cfg = cfg.parse()
	return &Queue{
		mode:    cfg.Mode,
		unknown: cfg.UnknownControl,
	}
}

// Mode returns the current ordering discipline.
func (q *Queue) Mode() QueueMode {
	q.bufMu.Lock()
	defer q.bufMu.Unlock()
	return q.mode
}

// Len returns the number of buffered messages.
func (q *Queue) Len() int {
	q.bufMu.Lock()
	defer q.bufMu.Unlock()
	return len(q.buffer)
}

// Write buffers normal messages and acts on queue control messages.
// Buffering always succeeds. A flush returns true only if every buffered
// message was delivered.
func (q *Queue) Write(msg message.Envelope) bool {
	switch msg.Envelope().Kind() {
	case message.KindNormal:
		q.store(msg)
		return true
	case message.KindFlush:
		return q.flush()
	case message.KindSort:
		q.setMode(ModeSort)
		return true
	case message.KindFIFO:
		q.setMode(ModeFIFO)
		return true
	default:
		if q.unknown == ForwardUnknown {
			return q.forward(msg)
		}
		logger.Debug("[PIPES] Queue absorbed message", messageArgs(msg.Envelope())...)
		return true
	}
}

func (q *Queue) store(msg message.Envelope) {
	q.bufMu.Lock()
	defer q.bufMu.Unlock()
	q.buffer = append(q.buffer, msg)
	if q.mode == ModeSort {
		slices.SortStableFunc(q.buffer, byPriority)
	}
}

// setMode affects subsequent writes only. Messages already buffered keep
// their order until the next insertion in sort mode.
func (q *Queue) setMode(mode QueueMode) {
	q.bufMu.Lock()
	defer q.bufMu.Unlock()
	q.mode = mode
}

// flush drains the buffer downstream. It never stops early: failures are
// only reflected in the result. If a downstream write panics, the messages
// not yet written go back to the front of the buffer.
func (q *Queue) flush() bool {
	q.bufMu.Lock()
	pending := q.buffer
	q.buffer = nil
	q.bufMu.Unlock()

	next := 0
	defer func() {
		if next < len(pending) {
			q.restore(pending[next:])
		}
	}()

	ok := true
	failed := 0
	for next < len(pending) {
		msg := pending[next]
		next++
		if !q.forward(msg) {
			ok = false
			failed++
		}
	}
	if !ok {
		logger.Warn("[PIPES] Queue flush incomplete", "flushed", len(pending), "failed", failed)
	}
	return ok
}

// restore puts unflushed messages ahead of anything buffered since the
// flush started.
func (q *Queue) restore(unflushed []message.Envelope) {
	q.bufMu.Lock()
	defer q.bufMu.Unlock()
	q.buffer = append(slices.Clone(unflushed), q.buffer...)
	if q.mode == ModeSort {
		slices.SortStableFunc(q.buffer, byPriority)
	}
	logger.Warn("[PIPES] Queue flush interrupted", "restored", len(unflushed))
}

func byPriority(a, b message.Envelope) int {
	return cmp.Compare(a.Envelope().Priority, b.Envelope().Priority)
}
