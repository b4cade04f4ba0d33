// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/taxometer/backend/internal/domain/entity"
	domainerror "github.com/taxometer/backend/internal/domain/error"
)

// MaxSeriesLength is the largest number of buckets a request may ask for.
const MaxSeriesLength = 366

// SeriesLengths holds the default number of buckets per period.
type SeriesLengths struct {
	Days   int
	Weeks  int
	Months int
}

// DefaultSeriesLengths returns the lengths the dashboard chart uses out of the box.
func DefaultSeriesLengths() SeriesLengths {
	return SeriesLengths{Days: 7, Weeks: 4, Months: 6}
}

// For returns the default length for the given period.
func (l SeriesLengths) For(period entity.Period) int {
	switch period {
	case entity.PeriodWeek:
		return l.Weeks
	case entity.PeriodMonth:
		return l.Months
	default:
		return l.Days
	}
}

// GetChartSeriesInput represents the input for building a chart series.
type GetChartSeriesInput struct {
	Period string
	Length int // 0 uses the configured default
}

// GetChartSeriesOutput represents the output of building a chart series.
type GetChartSeriesOutput struct {
	Period   entity.Period
	Today    time.Time
	Buckets  []Bucket
	Headline Headline
	MaxNet   float64
}

// GetChartSeriesUseCase handles the dashboard chart.
type GetChartSeriesUseCase struct {
	source  ShiftSource
	clock   Clock
	lengths SeriesLengths
}

// NewGetChartSeriesUseCase creates a new GetChartSeriesUseCase instance.
func NewGetChartSeriesUseCase(source ShiftSource, clock Clock, lengths SeriesLengths) *GetChartSeriesUseCase {
	if clock == nil {
		clock = time.Now
	}

	defaults := DefaultSeriesLengths()
	if lengths.Days <= 0 {
		lengths.Days = defaults.Days
	}
	if lengths.Weeks <= 0 {
		lengths.Weeks = defaults.Weeks
	}
	if lengths.Months <= 0 {
		lengths.Months = defaults.Months
	}

	return &GetChartSeriesUseCase{
		source:  source,
		clock:   clock,
		lengths: lengths,
	}
}

// Execute builds the series ending with today's bucket along with its headline.
func (uc *GetChartSeriesUseCase) Execute(
	ctx context.Context,
	input GetChartSeriesInput,
) (*GetChartSeriesOutput, error) {
	period, err := parsePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	length := input.Length
	if length == 0 {
		length = uc.lengths.For(period)
	}
	if length < 1 || length > MaxSeriesLength {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidSeriesLength,
			"length must be between 1 and 366",
			domainerror.ErrInvalidSeriesLength,
		)
	}

	shifts, err := snapshot(uc.source)
	if err != nil {
		return nil, err
	}

	today := uc.clock()
	buckets := BuildSeries(shifts, period, today, length)

	return &GetChartSeriesOutput{
		Period:   period,
		Today:    today,
		Buckets:  buckets,
		Headline: BuildHeadline(shifts, period, today, buckets),
		MaxNet:   MaxNet(buckets),
	}, nil
}
