// Package shift contains shift-related use cases.
package shift

import "context"

// ListShiftsInput represents the input for listing shifts.
type ListShiftsInput struct {
	Limit int // 0 lists everything
}

// ListShiftsOutput represents the output of listing shifts.
type ListShiftsOutput struct {
	Shifts []*ShiftOutput
	Total  int
}

// ListShiftsUseCase handles listing the collection.
type ListShiftsUseCase struct {
	collection ShiftCollection
}

// NewListShiftsUseCase creates a new ListShiftsUseCase instance.
func NewListShiftsUseCase(collection ShiftCollection) *ListShiftsUseCase {
	return &ListShiftsUseCase{
		collection: collection,
	}
}

// Execute lists shifts newest first.
func (uc *ListShiftsUseCase) Execute(ctx context.Context, input ListShiftsInput) (*ListShiftsOutput, error) {
	if err := ensureLoaded(uc.collection); err != nil {
		return nil, err
	}

	shifts := uc.collection.Current()
	sortNewestFirst(shifts)

	total := len(shifts)
	if input.Limit > 0 && input.Limit < total {
		shifts = shifts[:input.Limit]
	}

	out := make([]*ShiftOutput, len(shifts))
	for i, s := range shifts {
		out[i] = toShiftOutput(s)
	}

	return &ListShiftsOutput{
		Shifts: out,
		Total:  total,
	}, nil
}
