// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims contained in an API bearer token.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for API bearer token operations.
type TokenService interface {
	// IssueToken signs a new token for the given subject, valid for ttl.
	IssueToken(ctx context.Context, subject string, ttl time.Duration) (string, error)

	// ValidateToken validates a bearer token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
