package message

// Message priorities. Lower values sort first in a priority queue.
const (
	PriorityHigh = 1
	PriorityMed  = 5
	PriorityLow  = 10
)

// Envelope is implemented by every value that can be written to a fitting.
// It exposes the base message shared by data and control messages.
type Envelope interface {
	Envelope() *Message
}

// Message is the unit of data carried through a pipes graph.
// Header and Body are opaque to the graph; only Type and Priority are
// interpreted by fittings.
type Message struct {
	// ID uniquely identifies the message. Set by New from DefaultIDGenerator.
	ID string
	// Type discriminates data from control messages. See TypeNormal.
	Type string
	// Header carries message metadata.
	Header Header
	// Body is the message payload.
	Body any
	// Priority orders messages in a sorting queue, PriorityHigh first.
	Priority int
}

// New creates a normal message with the given header, body and priority.
// Pass nil for header if no metadata is needed.
func New(header Header, body any, priority int) *Message {
	return NewWithType(TypeNormal, header, body, priority)
}

// NewWithType creates a message of an arbitrary type. Types outside the
// reserved vocabulary are treated as unknown control traffic by fittings.
func NewWithType(typ string, header Header, body any, priority int) *Message {
	if header == nil {
		header = make(Header)
	}
	return &Message{
		ID:       DefaultIDGenerator(),
		Type:     typ,
		Header:   header,
		Body:     body,
		Priority: priority,
	}
}

// Envelope returns m itself.
func (m *Message) Envelope() *Message {
	return m
}

// Kind returns the dispatch kind of the message type.
func (m *Message) Kind() Kind {
	return KindOf(m.Type)
}

// IsNormal reports whether m carries application data.
func (m *Message) IsNormal() bool {
	return m.Type == TypeNormal
}

var _ Envelope = (*Message)(nil)
