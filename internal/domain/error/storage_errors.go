// Package error defines domain-specific errors for the shift ledger.
package error

import "errors"

// Storage domain errors.
var (
	// ErrStoreNotLoaded is returned when the shift collection is used before it was loaded.
	ErrStoreNotLoaded = errors.New("shift collection is not loaded yet")

	// ErrUnknownBackend is returned when the configured storage backend is not supported.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrBackendUnavailable is returned when the selected storage backend cannot be reached.
	ErrBackendUnavailable = errors.New("storage backend unavailable")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STG-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	ErrCodeStoreNotLoaded     StorageErrorCode = "STG-010001"
	ErrCodeUnknownBackend     StorageErrorCode = "STG-020001"
	ErrCodeBackendUnavailable StorageErrorCode = "STG-020002"
)

// StorageError represents a storage error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
