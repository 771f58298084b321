package api

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUDID marks a UDID that is not hex digits and dashes.
	ErrInvalidUDID = errors.New("invalid UDID")

	// ErrInvalidID marks an id that is negative or beyond MaxSafeInteger.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidBulkSize marks a bulk move outside 1..MaxBulkMove UDIDs.
	ErrInvalidBulkSize = errors.New("invalid bulk size")

	// ErrInvalidArgument marks any other unusable input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned by lookups that found no matching record.
	ErrNotFound = errors.New("api: not found")
)

// ValidationError is returned before any network call when an argument
// is unusable. It wraps one of the ErrInvalid* sentinels.
type ValidationError struct {
	Op    string
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("api: %s: %s %v: %v", e.Op, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ErrorKind labels the error for metrics.
func (e *ValidationError) ErrorKind() string { return "validation_error" }

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(op, field string, value any, sentinel error) error {
	return &ValidationError{Op: op, Field: field, Value: value, Err: sentinel}
}
