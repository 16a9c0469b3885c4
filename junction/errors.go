package junction

import "errors"

var (
	// ErrPipeExists is returned when a name is already registered in either
	// direction.
	ErrPipeExists = errors.New("junction: pipe already registered")
	// ErrInvalidDirection is returned for a direction other than Input or Output.
	ErrInvalidDirection = errors.New("junction: invalid direction")
	// ErrNilFitting is returned when registering a nil fitting.
	ErrNilFitting = errors.New("junction: nil fitting")
	// ErrNotInput is returned when a name is not a registered input pipe.
	ErrNotInput = errors.New("junction: no such input pipe")
	// ErrNotOutput is returned when a name is not a registered output pipe.
	ErrNotOutput = errors.New("junction: no such output pipe")
	// ErrAlreadyConnected is returned when an input pipe already has a
	// downstream fitting.
	ErrAlreadyConnected = errors.New("junction: input pipe already connected")
	// ErrNotDelivered is returned when an output pipe reported a failed write.
	ErrNotDelivered = errors.New("junction: message not delivered")
)
