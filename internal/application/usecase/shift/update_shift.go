// Package shift contains shift-related use cases.
package shift

import (
	"context"
	"log/slog"

	"github.com/taxometer/backend/internal/domain/entity"
)

// UpdateShiftInput represents the input for shift update.
type UpdateShiftInput struct {
	ShiftID string
	Fields  ShiftFields
}

// UpdateShiftOutput represents the output of shift update.
type UpdateShiftOutput struct {
	Shift *ShiftOutput
}

// UpdateShiftUseCase handles shift update logic.
type UpdateShiftUseCase struct {
	collection ShiftCollection
}

// NewUpdateShiftUseCase creates a new UpdateShiftUseCase instance.
func NewUpdateShiftUseCase(collection ShiftCollection) *UpdateShiftUseCase {
	return &UpdateShiftUseCase{
		collection: collection,
	}
}

// Execute replaces every field of an existing shift. The ID stays the same.
func (uc *UpdateShiftUseCase) Execute(ctx context.Context, input UpdateShiftInput) (*UpdateShiftOutput, error) {
	if err := ensureLoaded(uc.collection); err != nil {
		return nil, err
	}
	if err := validateFields(input.Fields); err != nil {
		return nil, err
	}

	updated := entity.Shift{ID: input.ShiftID}
	applyFields(&updated, input.Fields)

	found := false
	uc.collection.Modify(func(current []entity.Shift) ([]entity.Shift, bool) {
		for i := range current {
			if current[i].ID == input.ShiftID {
				current[i] = updated
				found = true
				break
			}
		}
		if found {
			sortNewestFirst(current)
		}
		return current, found
	})

	if !found {
		return nil, notFound()
	}

	slog.Info("Shift updated", "shift_id", updated.ID, "net", updated.Net())

	return &UpdateShiftOutput{
		Shift: toShiftOutput(updated),
	}, nil
}
