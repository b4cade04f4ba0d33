package dashboard

import (
	"context"
	"time"
)

// GetDataRangeInput represents the input for getting the recorded date range.
type GetDataRangeInput struct{}

// GetDataRangeOutput represents the dates of the oldest and newest shift.
type GetDataRangeOutput struct {
	OldestDate  *time.Time
	NewestDate  *time.Time
	TotalShifts int
	HasData     bool
}

// GetDataRangeUseCase reports how far back the shift history goes.
type GetDataRangeUseCase struct {
	source ShiftSource
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(source ShiftSource) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{
		source: source,
	}
}

// Execute scans the collection for its oldest and newest dated shift.
// Shifts whose stored date could not be read carry a zero date and are skipped.
func (uc *GetDataRangeUseCase) Execute(
	ctx context.Context,
	input GetDataRangeInput,
) (*GetDataRangeOutput, error) {
	shifts, err := snapshot(uc.source)
	if err != nil {
		return nil, err
	}

	output := &GetDataRangeOutput{TotalShifts: len(shifts)}
	for _, s := range shifts {
		if s.Date.IsZero() {
			continue
		}
		date := s.Date
		if output.OldestDate == nil || date.Before(*output.OldestDate) {
			output.OldestDate = &date
		}
		if output.NewestDate == nil || date.After(*output.NewestDate) {
			output.NewestDate = &date
		}
	}

	output.HasData = output.OldestDate != nil && output.NewestDate != nil
	return output, nil
}
