// Package common defines shared sentinel errors and typed errors used across
// the StayKonnect stores, services and terminal client. Callers should use
// errors.Is / errors.As to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// Service-level errors.
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Configuration errors (fatal at startup).
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
)

// ValidationError describes malformed or out-of-range user input. Error
// returns Message verbatim so it can be shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a *ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError reports a uniqueness violation, e.g. an email that is
// already registered. Err optionally carries the store error that caused it.
type ConflictError struct {
	Message string
	Err     error
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Unwrap exposes both ErrConflict and the underlying cause, if any.
func (e *ConflictError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConflict, e.Err}
	}
	return []error{ErrConflict}
}

// FieldOf returns the field name carried by a *ValidationError in err's
// chain, or "" when there is none.
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}
