// Package error defines domain-specific errors for the shift ledger.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidPeriod is returned when the period is not day, week or month.
	ErrInvalidPeriod = errors.New("period must be: day, week, or month")

	// ErrMissingPeriod is returned when period is not provided.
	ErrMissingPeriod = errors.New("period is required")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidSeriesLength is returned when a requested chart length is out of range.
	ErrInvalidSeriesLength = errors.New("length must be between 1 and 366")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod       DashboardErrorCode = "DSH-010004"
	ErrCodeMissingPeriod       DashboardErrorCode = "DSH-010005"
	ErrCodeInvalidDateFormat   DashboardErrorCode = "DSH-010006"
	ErrCodeInvalidSeriesLength DashboardErrorCode = "DSH-010007"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
