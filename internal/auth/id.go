package auth

import "github.com/google/uuid"

// NewID returns an opaque random identifier, independent of any mutable
// attribute of the record it keys.
func NewID() string {
	return uuid.NewString()
}
