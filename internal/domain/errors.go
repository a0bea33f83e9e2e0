package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrDuplicateEmoji     = errors.New("duplicate emoji")
	ErrInvalidChannelType = errors.New("invalid channel type")
	ErrValidation         = errors.New("validation error")
	ErrForbidden          = errors.New("forbidden")
	ErrPlatform           = errors.New("platform error")

	// ErrUnknownResource is returned by the platform adapter when the target
	// role, channel, message or reaction no longer exists.
	ErrUnknownResource = errors.New("unknown platform resource")
)

// NotFoundError reports the first missing link of a name chain.
type NotFoundError struct {
	Level EntityType
	Name  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: not found", e.Level.Label(), e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError for the given hierarchy level.
func NewNotFoundError(level EntityType, name string) *NotFoundError {
	return &NotFoundError{Level: level, Name: name}
}

// DuplicateNameError is returned when a name is already taken at a level.
type DuplicateNameError struct {
	Level EntityType
	Name  string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s %q: already exists", e.Level.Label(), e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return ErrAlreadyExists }

// DuplicateEmojiError is returned when a Pole already has a Thematic bound to the emoji.
type DuplicateEmojiError struct {
	Pole     string
	Emoji    string
	Thematic string
}

func (e *DuplicateEmojiError) Error() string {
	return fmt.Sprintf("emoji %s already used by thematic %q in pole %q", e.Emoji, e.Thematic, e.Pole)
}

func (e *DuplicateEmojiError) Unwrap() error { return ErrDuplicateEmoji }

// PlatformError wraps a failure of the chat platform.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform: %s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrPlatform and the underlying cause.
func (e *PlatformError) Unwrap() []error { return []error{ErrPlatform, e.Err} }

// NewPlatformError wraps err. It returns nil when err is nil.
func NewPlatformError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PlatformError{Op: op, Err: err}
}

// PartialFailureError reports a multi-step operation that stopped half way.
// Created lists the platform objects left behind for manual cleanup.
type PartialFailureError struct {
	Step    string
	Created []string
	Err     error
}

func (e *PartialFailureError) Error() string {
	if len(e.Created) == 0 {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s: %v (left behind: %s)", e.Step, e.Err, strings.Join(e.Created, ", "))
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
