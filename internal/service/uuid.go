package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidUUID indicates the string is not a valid UUID
var ErrInvalidUUID = errors.New("invalid UUID format")

// NewID returns a time-ordered UUIDv7, falling back to a random UUIDv4
// if the v7 generator fails
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ValidateUUID checks that id is a UUID of any version
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}
	return nil
}
