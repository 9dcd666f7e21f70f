package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes every operation can surface.
// Handlers match these with errors.Is and map them to HTTP responses;
// nothing below the handler layer writes to the client.
var (
	ErrAuthFailure      = errors.New("invalid username or password")
	ErrPermissionDenied = errors.New("insufficient permission")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrValidation       = errors.New("invalid input")
)

// Validation wraps a validation failure so it carries both the
// field-level detail and the ErrValidation class.
func Validation(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// Validationf builds a validation failure from a message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Store wraps an underlying persistence failure. The wrapped detail is
// logged server-side; clients only ever see a generic message.
func Store(err error) error {
	return &StoreError{Err: err}
}

// StoreError reports a failure of the underlying data store.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStore reports whether err is a StoreError.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
