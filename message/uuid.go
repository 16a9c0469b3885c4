package message

import "github.com/google/uuid"

// IDGenerator generates unique message IDs.
type IDGenerator func() string

// DefaultIDGenerator is used by New and the control message constructors.
// Replace it to get deterministic IDs in tests.
var DefaultIDGenerator IDGenerator = NewID

// NewID generates a RFC 4122 UUID v4 string.
func NewID() string {
	return uuid.NewString()
}
