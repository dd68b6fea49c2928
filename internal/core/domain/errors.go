package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel every id-keyed lookup failure matches via errors.Is.
var ErrNotFound = errors.New("not found")

// ErrValidation is the sentinel every ValidationError matches via errors.Is.
var ErrValidation = errors.New("validation failed")

// MsgEmailTaken is the message for an email already held by another user.
const MsgEmailTaken = "Email already registered"

// ValidationError reports a violated field or referential rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports that an entity of Kind with ID does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError builds a NotFoundError for an entity kind and id.
func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}
