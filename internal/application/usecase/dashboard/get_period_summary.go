// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"
)

// GetPeriodSummaryInput represents the input for summarizing one period.
type GetPeriodSummaryInput struct {
	Period string
	Date   *time.Time // defaults to today
}

// GetPeriodSummaryOutput represents the output of summarizing one period.
type GetPeriodSummaryOutput struct {
	Summary PeriodSummary
}

// GetPeriodSummaryUseCase handles period totals.
type GetPeriodSummaryUseCase struct {
	source ShiftSource
	clock  Clock
}

// NewGetPeriodSummaryUseCase creates a new GetPeriodSummaryUseCase instance.
func NewGetPeriodSummaryUseCase(source ShiftSource, clock Clock) *GetPeriodSummaryUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &GetPeriodSummaryUseCase{
		source: source,
		clock:  clock,
	}
}

// Execute summarizes the shifts of the period containing the requested date.
func (uc *GetPeriodSummaryUseCase) Execute(
	ctx context.Context,
	input GetPeriodSummaryInput,
) (*GetPeriodSummaryOutput, error) {
	period, err := parsePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	shifts, err := snapshot(uc.source)
	if err != nil {
		return nil, err
	}

	ref := uc.clock()
	if input.Date != nil {
		ref = *input.Date
	}

	return &GetPeriodSummaryOutput{
		Summary: Summarize(shifts, period, ref),
	}, nil
}
