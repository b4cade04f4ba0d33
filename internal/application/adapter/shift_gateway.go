// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/taxometer/backend/internal/domain/entity"
)

// ShiftGateway loads and saves the whole shift collection stored under one key.
type ShiftGateway interface {
	// Load returns the normalized collection stored under key.
	// A missing key or an undecodable payload yields an empty collection and no error;
	// only backend failures are returned.
	Load(ctx context.Context, key string) ([]entity.Shift, error)

	// Save replaces the collection stored under key.
	Save(ctx context.Context, key string, shifts []entity.Shift) error
}
