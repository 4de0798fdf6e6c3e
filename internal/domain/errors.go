package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a referenced motorcycle, proposal, contract or
	// profile that does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrDataUnavailable signals a store that could not be reached or
	// returned an error. Safe to retry; never to be read as "available".
	ErrDataUnavailable = errors.New("data store unavailable")
	// ErrTimeout signals a store round-trip that exceeded its deadline.
	ErrTimeout = errors.New("data store timed out")
	// ErrUnauthorized signals a caller acting on a resource they do not own.
	ErrUnauthorized = errors.New("not allowed to act on this resource")
)

// ValidationError reports invalid input, raised before any store call.
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

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a date-range conflict with existing approved
// rentals. Conflicts carries the overlapping periods for diagnostics.
type ConflictError struct {
	MotorcycleID string
	Conflicts    []RentalPeriod
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested dates conflict with %d approved rental(s) for motorcycle %s", len(e.Conflicts), e.MotorcycleID)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a date-range conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
