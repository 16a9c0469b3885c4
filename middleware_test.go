package pipes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxsml/pipes"
	"github.com/fxsml/pipes/internal/test"
	"github.com/fxsml/pipes/message"
)

func TestUse_Order(t *testing.T) {
	var order []string
	trace := func(name string) pipes.Middleware {
		return func(next pipes.WriteFunc) pipes.WriteFunc {
			return func(msg message.Envelope) bool {
				order = append(order, name+">")
				ok := next(msg)
				order = append(order, "<"+name)
				return ok
			}
		}
	}

	listener, rec := test.Listen()
	pipe := pipes.NewPipe()
	require.True(t, pipe.Connect(listener))

	wrapped := pipes.Use(pipe, trace("a"), trace("b"))
	assert.True(t, wrapped.Write(message.New(nil, nil, message.PriorityMed)))

	assert.Equal(t, []string{"a>", "b>", "<b", "<a"}, order)
	assert.Equal(t, 1, rec.Len())
}

func TestUse_ShortCircuit(t *testing.T) {
	listener, rec := test.Listen()
	pipe := pipes.NewPipe()
	require.True(t, pipe.Connect(listener))

	drop := func(pipes.WriteFunc) pipes.WriteFunc {
		return func(message.Envelope) bool { return false }
	}
	wrapped := pipes.Use(pipe, drop)

	assert.False(t, wrapped.Write(message.New(nil, nil, message.PriorityMed)))
	assert.Equal(t, 0, rec.Len())
}

func TestUse_DelegatesConnect(t *testing.T) {
	pipe := pipes.NewPipe()
	wrapped := pipes.Use(pipe)
	next := pipes.NewPipe()

	assert.True(t, wrapped.Connect(next))
	assert.Same(t, next, pipe.Output())
	assert.False(t, wrapped.Connect(pipes.NewPipe()))
	assert.Same(t, next, wrapped.Disconnect())
}

func TestUnwrap(t *testing.T) {
	split := pipes.NewTeeSplit()
	wrapped := pipes.Use(pipes.Use(split))

	assert.Same(t, split, pipes.Unwrap(wrapped))
	assert.Same(t, split, pipes.Unwrap(split))
}

func TestUse_UpstreamThroughWrapper(t *testing.T) {
	var seen int
	count := func(next pipes.WriteFunc) pipes.WriteFunc {
		return func(msg message.Envelope) bool {
			seen++
			return next(msg)
		}
	}
	listener, rec := test.Listen()
	queue := pipes.NewQueue(pipes.QueueConfig{})
	require.True(t, queue.Connect(listener))

	head := pipes.NewPipe()
	require.True(t, head.Connect(pipes.Use(queue, count)))

	head.Write(message.New(nil, nil, message.PriorityMed))
	head.Write(message.NewFlush())

	assert.Equal(t, 2, seen)
	assert.Equal(t, 1, rec.Len())
}
