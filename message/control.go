package message

// FilterControl is a control message addressed to a named filter.
// Predicate is set only for TypeSetFilter and Params only for TypeSetParams.
type FilterControl struct {
	Message

	// Target is the name of the filter that should act on the message.
	Target string
	// Predicate replaces the filter predicate on TypeSetFilter.
	Predicate Predicate
	// Params replaces the filter params on TypeSetParams.
	Params Params
}

// NewSetParams creates a control message that replaces the params of target.
func NewSetParams(target string, params Params) *FilterControl {
	return newFilterControl(TypeSetParams, target, nil, params)
}

// NewSetFilter creates a control message that replaces the predicate of target.
func NewSetFilter(target string, predicate Predicate) *FilterControl {
	return newFilterControl(TypeSetFilter, target, predicate, nil)
}

// NewBypass creates a control message that switches target to bypass mode.
func NewBypass(target string) *FilterControl {
	return newFilterControl(TypeBypass, target, nil, nil)
}

// NewFilterMode creates a control message that switches target to filter mode.
func NewFilterMode(target string) *FilterControl {
	return newFilterControl(TypeFilter, target, nil, nil)
}

func newFilterControl(typ, target string, predicate Predicate, params Params) *FilterControl {
	return &FilterControl{
		Message: Message{
			ID:       DefaultIDGenerator(),
			Type:     typ,
			Header:   make(Header),
			Priority: PriorityMed,
		},
		Target:    target,
		Predicate: predicate,
		Params:    params,
	}
}

// IsTarget reports whether the message is addressed to name.
func (c *FilterControl) IsTarget(name string) bool {
	return c.Target == name
}

// QueueControl is an untargeted control message consumed by queues.
type QueueControl struct {
	Message
}

// NewFlush creates a control message that drains a queue.
func NewFlush() *QueueControl {
	return newQueueControl(TypeFlush)
}

// NewSort creates a control message that puts a queue into sort mode.
func NewSort() *QueueControl {
	return newQueueControl(TypeSort)
}

// NewFIFO creates a control message that puts a queue into FIFO mode.
func NewFIFO() *QueueControl {
	return newQueueControl(TypeFIFO)
}

func newQueueControl(typ string) *QueueControl {
	return &QueueControl{
		Message: Message{
			ID:       DefaultIDGenerator(),
			Type:     typ,
			Header:   make(Header),
			Priority: PriorityMed,
		},
	}
}

var (
	_ Envelope = (*FilterControl)(nil)
	_ Envelope = (*QueueControl)(nil)
)
