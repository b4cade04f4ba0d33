// Package shift contains shift-related use cases.
package shift

import "context"

// GetShiftInput represents the input for fetching one shift.
type GetShiftInput struct {
	ShiftID string
}

// GetShiftOutput represents the output of fetching one shift.
type GetShiftOutput struct {
	Shift *ShiftOutput
}

// GetShiftUseCase handles fetching a single shift.
type GetShiftUseCase struct {
	collection ShiftCollection
}

// NewGetShiftUseCase creates a new GetShiftUseCase instance.
func NewGetShiftUseCase(collection ShiftCollection) *GetShiftUseCase {
	return &GetShiftUseCase{
		collection: collection,
	}
}

// Execute returns the shift with the given ID.
func (uc *GetShiftUseCase) Execute(ctx context.Context, input GetShiftInput) (*GetShiftOutput, error) {
	if err := ensureLoaded(uc.collection); err != nil {
		return nil, err
	}

	for _, s := range uc.collection.Current() {
		if s.ID == input.ShiftID {
			return &GetShiftOutput{Shift: toShiftOutput(s)}, nil
		}
	}
	return nil, notFound()
}
