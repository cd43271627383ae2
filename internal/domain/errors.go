package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services and delivery.
var (
	ErrNotFound            = errors.New("not found")
	ErrEventExpired        = errors.New("event expired")
	ErrDuplicateAttendance = errors.New("attendance already recorded for this event")
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
)

// ValidationError lists the problems found in a request. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Problems []string
}

// NewValidationError returns nil when problems is empty.
func NewValidationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
