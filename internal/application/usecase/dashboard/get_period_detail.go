// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/taxometer/backend/internal/domain/entity"
)

// GetPeriodDetailInput represents the input for the period detail view.
type GetPeriodDetailInput struct {
	Period string
	Date   *time.Time // defaults to today
}

// GetPeriodDetailOutput represents the output of the period detail view.
type GetPeriodDetailOutput struct {
	Period  entity.Period
	Title   string
	Header  string
	Summary PeriodSummary
	Shifts  []entity.Shift // newest first
}

// GetPeriodDetailUseCase handles the drill-down into one period.
type GetPeriodDetailUseCase struct {
	source ShiftSource
	clock  Clock
}

// NewGetPeriodDetailUseCase creates a new GetPeriodDetailUseCase instance.
func NewGetPeriodDetailUseCase(source ShiftSource, clock Clock) *GetPeriodDetailUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &GetPeriodDetailUseCase{
		source: source,
		clock:  clock,
	}
}

// Execute returns the totals and the shifts of the period containing the requested date.
func (uc *GetPeriodDetailUseCase) Execute(
	ctx context.Context,
	input GetPeriodDetailInput,
) (*GetPeriodDetailOutput, error) {
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

	inPeriod := FilterShifts(shifts, period, ref)
	sort.SliceStable(inPeriod, func(i, j int) bool {
		return inPeriod[i].Date.After(inPeriod[j].Date)
	})

	return &GetPeriodDetailOutput{
		Period:  period,
		Title:   PeriodTitle(period),
		Header:  PeriodHeader(period, ref),
		Summary: Summarize(shifts, period, ref),
		Shifts:  inPeriod,
	}, nil
}
