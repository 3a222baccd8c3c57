package service

import (
	"errors"
	"strings"

	"github.com/thrivetrack/backend/internal/moodengine"
	"github.com/thrivetrack/backend/internal/repository"
)

var (
	// ErrValidation is matched by every *ValidationError
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when an entry does not exist for the user
	ErrNotFound = repository.ErrNotFound
	// ErrSnapshotUnavailable means the mood history could not be loaded;
	// nothing is derived from a partial snapshot
	ErrSnapshotUnavailable = errors.New("could not load mood entries")
	// ErrVisitNotFound is returned for unknown, expired or foreign visits
	ErrVisitNotFound = errors.New("visit not found")
	// ErrInvalidRange is returned for range keys other than week, month, all
	ErrInvalidRange = moodengine.ErrInvalidRange
)

// FieldError describes one invalid request field
type FieldError struct {
	Field   string
	Message string
	Code    string
}

// ValidationError collects every invalid field of a request
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) hold
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) add(field, message, code string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message, Code: code})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
