// Package shift contains shift-related use cases.
package shift

import (
	"context"
	"log/slog"

	"github.com/taxometer/backend/internal/domain/entity"
)

// DeleteShiftInput represents the input for shift deletion.
type DeleteShiftInput struct {
	ShiftID string
}

// DeleteShiftOutput represents the output of shift deletion.
type DeleteShiftOutput struct {
	Success bool
}

// DeleteShiftUseCase handles shift deletion logic.
type DeleteShiftUseCase struct {
	collection ShiftCollection
}

// NewDeleteShiftUseCase creates a new DeleteShiftUseCase instance.
func NewDeleteShiftUseCase(collection ShiftCollection) *DeleteShiftUseCase {
	return &DeleteShiftUseCase{
		collection: collection,
	}
}

// Execute removes the shift with the given ID from the collection.
func (uc *DeleteShiftUseCase) Execute(ctx context.Context, input DeleteShiftInput) (*DeleteShiftOutput, error) {
	if err := ensureLoaded(uc.collection); err != nil {
		return nil, err
	}

	found := false
	uc.collection.Modify(func(current []entity.Shift) ([]entity.Shift, bool) {
		kept := current[:0]
		for _, s := range current {
			if s.ID == input.ShiftID {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		return kept, found
	})

	if !found {
		return nil, notFound()
	}

	slog.Info("Shift deleted", "shift_id", input.ShiftID)

	return &DeleteShiftOutput{Success: true}, nil
}
