package junction_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxsml/pipes"
	"github.com/fxsml/pipes/internal/test"
	"github.com/fxsml/pipes/junction"
	"github.com/fxsml/pipes/message"
)

func TestJunction_RegisterAndRetrieve(t *testing.T) {
	j := junction.New(junction.Config{})
	in := pipes.NewPipe()
	out := pipes.NewPipe()

	assert.True(t, j.RegisterPipe("in", junction.Input, in))
	assert.True(t, j.RegisterPipe("out", junction.Output, out))

	assert.True(t, j.HasPipe("in"))
	assert.True(t, j.HasInputPipe("in"))
	assert.False(t, j.HasOutputPipe("in"))
	assert.True(t, j.HasOutputPipe("out"))
	assert.False(t, j.HasInputPipe("out"))
	assert.False(t, j.HasPipe("missing"))

	assert.Same(t, in, j.RetrievePipe("in"))
	assert.Same(t, out, j.RetrievePipe("out"))
	assert.Nil(t, j.RetrievePipe("missing"))

	assert.Equal(t, []string{"in"}, j.InputPipes())
	assert.Equal(t, []string{"out"}, j.OutputPipes())
}

func TestJunction_NameCollisionAcrossDirections(t *testing.T) {
	log := &test.Logger{}
	j := junction.New(junction.Config{Logger: log})

	require.True(t, j.RegisterPipe("x", junction.Input, pipes.NewPipe()))
	assert.False(t, j.RegisterPipe("x", junction.Output, pipes.NewPipe()))
	assert.ErrorIs(t, j.Register("x", junction.Input, pipes.NewPipe()), junction.ErrPipeExists)

	assert.True(t, j.HasInputPipe("x"))
	assert.Empty(t, j.OutputPipes())
	assert.Equal(t, 2, log.Count("warn"))
}

func TestJunction_RegisterInvalid(t *testing.T) {
	j := junction.New(junction.Config{})

	assert.ErrorIs(t, j.Register("x", junction.Direction("sideways"), pipes.NewPipe()), junction.ErrInvalidDirection)
	assert.ErrorIs(t, j.Register("x", junction.Input, nil), junction.ErrNilFitting)
	assert.False(t, j.HasPipe("x"))

	assert.ErrorIs(t, j.Register("y", "OUTPUT", pipes.NewPipe()), junction.ErrInvalidDirection)
	assert.False(t, j.HasPipe("y"))
	assert.NoError(t, j.Register("y", "output", pipes.NewPipe()))
	assert.True(t, j.HasOutputPipe("y"))
}

func TestJunction_RemovePipe(t *testing.T) {
	j := junction.New(junction.Config{})
	require.True(t, j.RegisterPipe("a", junction.Input, pipes.NewPipe()))
	require.True(t, j.RegisterPipe("b", junction.Input, pipes.NewPipe()))
	require.True(t, j.RegisterPipe("c", junction.Output, pipes.NewPipe()))

	j.RemovePipe("a")
	j.RemovePipe("c")
	j.RemovePipe("missing")

	assert.False(t, j.HasPipe("a"))
	assert.False(t, j.HasPipe("c"))
	assert.Equal(t, []string{"b"}, j.InputPipes())
	assert.Empty(t, j.OutputPipes())

	// a removed name can be reused in the other direction
	assert.True(t, j.RegisterPipe("a", junction.Output, pipes.NewPipe()))
	assert.True(t, j.HasOutputPipe("a"))
}

func TestJunction_AddPipeListener(t *testing.T) {
	j := junction.New(junction.Config{})
	in := pipes.NewPipe()
	require.True(t, j.RegisterPipe("in", junction.Input, in))

	rec := &test.Recorder{}
	assert.True(t, j.AddPipeListener("in", rec))

	msg := message.New(nil, "payload", message.PriorityMed)
	assert.True(t, in.Write(msg))
	require.Equal(t, 1, rec.Len())
	assert.Same(t, msg, rec.Messages()[0])

	// single-output rule: a second listener is rejected
	assert.False(t, j.AddPipeListener("in", &test.Recorder{}))
	assert.ErrorIs(t, j.Listen("in", &test.Recorder{}), junction.ErrAlreadyConnected)
}

func TestJunction_AddPipeListenerRequiresInput(t *testing.T) {
	j := junction.New(junction.Config{})
	out := pipes.NewPipe()
	require.True(t, j.RegisterPipe("out", junction.Output, out))

	assert.False(t, j.AddPipeListener("out", &test.Recorder{}))
	assert.ErrorIs(t, j.Listen("missing", &test.Recorder{}), junction.ErrNotInput)
	assert.Nil(t, out.Output())
}

func TestJunction_SendMessage(t *testing.T) {
	j := junction.New(junction.Config{})
	listener, rec := test.Listen()
	out := pipes.NewPipe()
	require.True(t, out.Connect(listener))
	require.True(t, j.RegisterPipe("out", junction.Output, out))

	msg := message.New(nil, nil, message.PriorityMed)
	assert.True(t, j.SendMessage("out", msg))
	require.Equal(t, 1, rec.Len())
	assert.Same(t, msg, rec.Messages()[0])
}

func TestJunction_SendMessageRejectsUnknownAndInput(t *testing.T) {
	j := junction.New(junction.Config{})
	failing := &test.Failing{}
	require.True(t, j.RegisterPipe("in", junction.Input, failing))

	msg := message.New(nil, nil, message.PriorityMed)
	assert.False(t, j.SendMessage("missing", msg))
	assert.False(t, j.SendMessage("in", msg))
	assert.ErrorIs(t, j.Send("in", msg), junction.ErrNotOutput)
	assert.Equal(t, 0, failing.Writes())
}

func TestJunction_SendNotDelivered(t *testing.T) {
	j := junction.New(junction.Config{})
	require.True(t, j.RegisterPipe("out", junction.Output, pipes.NewPipe()))

	assert.ErrorIs(t, j.Send("out", message.New(nil, nil, message.PriorityMed)), junction.ErrNotDelivered)
}

func TestJunction_ConcurrentRegistration(t *testing.T) {
	j := junction.New(junction.Config{Logger: &test.Logger{}})

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan bool, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			results <- j.RegisterPipe("shared", junction.Output, pipes.NewPipe())
			_ = j.HasOutputPipe("shared")
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
}
