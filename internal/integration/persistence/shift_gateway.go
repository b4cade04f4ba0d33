// Package persistence implements storage adapters for the shift collection.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/taxometer/backend/internal/application/adapter"
	"github.com/taxometer/backend/internal/domain/entity"
	"github.com/taxometer/backend/internal/integration/persistence/model"
)

// shiftGateway implements the adapter.ShiftGateway interface on top of a KeyValueStore.
type shiftGateway struct {
	kv  adapter.KeyValueStore
	loc *time.Location
}

// NewShiftGateway creates a new shift gateway. Loaded dates are placed in loc.
func NewShiftGateway(kv adapter.KeyValueStore, loc *time.Location) adapter.ShiftGateway {
	if loc == nil {
		loc = time.Local
	}
	return &shiftGateway{
		kv:  kv,
		loc: loc,
	}
}

// Load reads and normalizes the collection stored under key.
func (g *shiftGateway) Load(ctx context.Context, key string) ([]entity.Shift, error) {
	raw, found, err := g.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read shift collection: %w", err)
	}
	if !found || raw == "" {
		return []entity.Shift{}, nil
	}

	var records []model.ShiftRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		slog.Warn("Stored shift collection is not decodable, treating as empty",
			"key", key,
			"error", err,
		)
		return []entity.Shift{}, nil
	}

	shifts := make([]entity.Shift, 0, len(records))
	for i := range records {
		shift, err := records[i].ToEntity(g.loc)
		if err != nil {
			slog.Warn("Shift record has an invalid date",
				"key", key,
				"shift_id", records[i].ID,
				"error", err,
			)
		}
		shifts = append(shifts, shift)
	}
	return shifts, nil
}

// Save encodes the collection and stores it under key.
func (g *shiftGateway) Save(ctx context.Context, key string, shifts []entity.Shift) error {
	records := make([]model.ShiftRecord, len(shifts))
	for i, shift := range shifts {
		records[i] = model.ShiftRecordFromEntity(shift)
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode shift collection: %w", err)
	}

	if err := g.kv.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("failed to write shift collection: %w", err)
	}
	return nil
}
