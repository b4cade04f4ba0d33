// Package error defines domain-specific errors for the shift ledger.
package error

import "errors"

// Auth domain errors.
var (
	// ErrMissingToken is returned when a protected route is called without a bearer token.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when the bearer token cannot be validated.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrRateLimited is returned when too many write requests arrive in one window.
	ErrRateLimited = errors.New("too many requests")

	// ErrTokenSecretMissing is returned when a token is requested but no signing secret is configured.
	ErrTokenSecretMissing = errors.New("token signing secret is not configured")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (01XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-020001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
