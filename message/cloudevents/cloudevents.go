package cloudevents

import (
	"encoding/json"
	"errors"
	"fmt"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/cloudevents/sdk-go/v2/types"

	"github.com/fxsml/pipes/message"
)

// Extension attribute names.
const (
	ExtensionPriority = "priority"
	ExtensionHeader   = "header"
)

// HeaderEventType holds the CloudEvents type of a converted event.
// Messages are always normal messages, so a foreign event type travels in
// the header and is restored by ToEvent.
const HeaderEventType = "event_type"

var (
	// ErrControlMessage is returned when converting a control message.
	ErrControlMessage = errors.New("cloudevents: control messages cannot be converted")
	// ErrNilEvent is returned by FromEvent for a nil event.
	ErrNilEvent = errors.New("cloudevents: nil event")
	// ErrNilMessage is returned by ToEvent for a nil envelope.
	ErrNilMessage = errors.New("cloudevents: nil message")
)

// ToEvent converts a normal message into a CloudEvent with the given source.
// The body is encoded as JSON; a nil body produces an event without data.
func ToEvent(env message.Envelope, source string) (cloudevents.Event, error) {
	if env == nil || env.Envelope() == nil {
		return cloudevents.Event{}, ErrNilMessage
	}
	msg := env.Envelope()
	if !msg.IsNormal() {
		return cloudevents.Event{}, fmt.Errorf("%w: %s", ErrControlMessage, msg.Type)
	}

	e := cloudevents.NewEvent()
	e.SetID(msg.ID)
	typ, ok := msg.Header.String(HeaderEventType)
	if !ok || typ == "" {
		typ = msg.Type
	}
	e.SetType(typ)
	e.SetSource(source)
	e.SetExtension(ExtensionPriority, msg.Priority)

	if subject, ok := msg.Header.Subject(); ok {
		e.SetSubject(subject)
	}
	if t, ok := msg.Header.CreatedAt(); ok {
		e.SetTime(t)
	}
	if len(msg.Header) > 0 {
		header, err := json.Marshal(msg.Header)
		if err != nil {
			return cloudevents.Event{}, fmt.Errorf("cloudevents: marshal header: %w", err)
		}
		e.SetExtension(ExtensionHeader, string(header))
	}
	if msg.Body != nil {
		if err := e.SetData(cloudevents.ApplicationJSON, msg.Body); err != nil {
			return cloudevents.Event{}, fmt.Errorf("cloudevents: set data: %w", err)
		}
	}

	if err := e.Validate(); err != nil {
		return cloudevents.Event{}, fmt.Errorf("cloudevents: invalid event: %w", err)
	}
	return e, nil
}

// FromEvent converts a CloudEvent into a normal message. Event data is
// decoded as generic JSON. A missing priority extension yields
// message.PriorityMed. Event types outside the reserved vocabulary are kept
// in the HeaderEventType header; reserved control types are rejected.
func FromEvent(e *cloudevents.Event) (*message.Message, error) {
	if e == nil {
		return nil, ErrNilEvent
	}
	if message.KindOf(e.Type()).IsControl() {
		return nil, fmt.Errorf("%w: %s", ErrControlMessage, e.Type())
	}

	ext := e.Extensions()

	priority := message.PriorityMed
	if v, ok := ext[ExtensionPriority]; ok {
		p, err := types.ToInteger(v)
		if err != nil {
			return nil, fmt.Errorf("cloudevents: extension %s: %w", ExtensionPriority, err)
		}
		priority = int(p)
	}

	header := make(message.Header)
	if v, ok := ext[ExtensionHeader]; ok {
		s, err := types.ToString(v)
		if err != nil {
			return nil, fmt.Errorf("cloudevents: extension %s: %w", ExtensionHeader, err)
		}
		if err := json.Unmarshal([]byte(s), &header); err != nil {
			return nil, fmt.Errorf("cloudevents: unmarshal header: %w", err)
		}
	}
	if e.Type() != message.TypeNormal {
		header[HeaderEventType] = e.Type()
	}
	if subject := e.Subject(); subject != "" {
		header[message.HeaderSubject] = subject
	}
	if t := e.Time(); !t.IsZero() {
		header[message.HeaderCreatedAt] = t
	}

	var body any
	if len(e.Data()) > 0 {
		if err := json.Unmarshal(e.Data(), &body); err != nil {
			return nil, fmt.Errorf("cloudevents: unmarshal data: %w", err)
		}
	}

	return &message.Message{
		ID:       e.ID(),
		Type:     message.TypeNormal,
		Header:   header,
		Body:     body,
		Priority: priority,
	}, nil
}
