package message

import "time"

// Reserved header keys.
const (
	// HeaderSubject indicates the subject of the message.
	HeaderSubject = "subject"
	// HeaderCorrelationID correlates related messages across modules.
	HeaderCorrelationID = "correlation_id"
	// HeaderCreatedAt stores when the message was created.
	HeaderCreatedAt = "created_at"
)

// Header is the metadata map of a message.
type Header map[string]any

// Params is the parameter map handed to a filter predicate.
type Params map[string]any

// String retrieves a string value by key.
func (h Header) String(key string) (string, bool) {
	return lookupString(h, key)
}

// Int retrieves an integer value by key. Numeric values of other widths,
// including float64 produced by JSON decoding, are converted.
func (h Header) Int(key string) (int, bool) {
	return lookupInt(h, key)
}

// Time retrieves a time.Time value by key.
func (h Header) Time(key string) (time.Time, bool) {
	if v, ok := h[key]; ok {
		if t, ok := v.(time.Time); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// Subject returns the subject header.
func (h Header) Subject() (string, bool) {
	return h.String(HeaderSubject)
}

// CorrelationID returns the correlation ID header.
func (h Header) CorrelationID() (string, bool) {
	return h.String(HeaderCorrelationID)
}

// CreatedAt returns the creation timestamp header.
func (h Header) CreatedAt() (time.Time, bool) {
	return h.Time(HeaderCreatedAt)
}

// String retrieves a string parameter by key.
func (p Params) String(key string) (string, bool) {
	return lookupString(p, key)
}

// Int retrieves an integer parameter by key.
func (p Params) Int(key string) (int, bool) {
	return lookupInt(p, key)
}

// Bool retrieves a boolean parameter by key.
func (p Params) Bool(key string) (bool, bool) {
	if v, ok := p[key]; ok {
		if b, ok := v.(bool); ok {
			return b, true
		}
	}
	return false, false
}

func lookupString[M ~map[string]any](m M, key string) (string, bool) {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

func lookupInt[M ~map[string]any](m M, key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
