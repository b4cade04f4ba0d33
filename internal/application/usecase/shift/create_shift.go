// Package shift contains shift-related use cases.
package shift

import (
	"context"
	"log/slog"

	"github.com/taxometer/backend/internal/domain/entity"
)

// CreateShiftInput represents the input for shift creation.
type CreateShiftInput struct {
	Fields ShiftFields
}

// CreateShiftOutput represents the output of shift creation.
type CreateShiftOutput struct {
	Shift *ShiftOutput
}

// CreateShiftUseCase handles shift creation logic.
type CreateShiftUseCase struct {
	collection ShiftCollection
}

// NewCreateShiftUseCase creates a new CreateShiftUseCase instance.
func NewCreateShiftUseCase(collection ShiftCollection) *CreateShiftUseCase {
	return &CreateShiftUseCase{
		collection: collection,
	}
}

// Execute records a new shift and keeps the collection ordered newest first.
func (uc *CreateShiftUseCase) Execute(ctx context.Context, input CreateShiftInput) (*CreateShiftOutput, error) {
	if err := ensureLoaded(uc.collection); err != nil {
		return nil, err
	}
	if err := validateFields(input.Fields); err != nil {
		return nil, err
	}

	shift := entity.NewShift(input.Fields.Date)
	applyFields(shift, input.Fields)

	uc.collection.Modify(func(current []entity.Shift) ([]entity.Shift, bool) {
		current = append(current, *shift)
		sortNewestFirst(current)
		return current, true
	})

	slog.Info("Shift created", "shift_id", shift.ID, "net", shift.Net())

	return &CreateShiftOutput{
		Shift: toShiftOutput(*shift),
	}, nil
}
