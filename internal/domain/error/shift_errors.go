// Package error defines domain-specific errors for the shift ledger.
package error

import "errors"

// Shift domain errors.
var (
	// ErrShiftNotFound is returned when no shift with the given ID exists in the collection.
	ErrShiftNotFound = errors.New("shift not found")

	// ErrInvalidShiftDate is returned when the shift date is missing or cannot be parsed.
	ErrInvalidShiftDate = errors.New("invalid shift date")

	// ErrMissingShiftFields is returned when the request body cannot be bound.
	ErrMissingShiftFields = errors.New("missing required shift fields")
)

// ShiftErrorCode defines error codes for shift errors.
// Format: SHF-XXYYYY where XX is category and YYYY is specific error.
type ShiftErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeShiftNotFound      ShiftErrorCode = "SHF-010001"
	ErrCodeInvalidShiftDate   ShiftErrorCode = "SHF-010002"
	ErrCodeMissingShiftFields ShiftErrorCode = "SHF-010003"

	// Internal errors (99XXXX)
	ErrCodeShiftInternalError ShiftErrorCode = "SHF-990001"
)

// ShiftError represents a shift error with code and message.
type ShiftError struct {
	Code    ShiftErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ShiftError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ShiftError) Unwrap() error {
	return e.Err
}

// NewShiftError creates a new ShiftError with the given code and message.
func NewShiftError(code ShiftErrorCode, message string, err error) *ShiftError {
	return &ShiftError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
