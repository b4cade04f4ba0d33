// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxometer/backend/internal/application/usecase/dashboard"
)

// PeriodQuery represents the query parameters of the summary and detail endpoints.
type PeriodQuery struct {
	Period string `form:"period"`
	Date   string `form:"date"`
}

// ChartQuery represents the query parameters of the chart endpoint.
type ChartQuery struct {
	Period string `form:"period"`
	Length int    `form:"length"`
}

// PeriodSummaryResponse represents the totals of one period.
type PeriodSummaryResponse struct {
	Period      string          `json:"period"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Gross       decimal.Decimal `json:"gross"`
	Net         decimal.Decimal `json:"net"`
	Km          float64         `json:"km"`
	RangeChange float64         `json:"rangeChange"`
	FuelCost    decimal.Decimal `json:"fuelCost"`
	Commissions decimal.Decimal `json:"commissions"`
	Fines       decimal.Decimal `json:"fines"`
	Tax         decimal.Decimal `json:"tax"`
	ShiftCount  int             `json:"shiftCount"`
}

// BucketResponse represents one chart bucket.
type BucketResponse struct {
	Start      time.Time       `json:"start"`
	End        time.Time       `json:"end"`
	Label      string          `json:"label"`
	Net        decimal.Decimal `json:"net"`
	ShiftCount int             `json:"shiftCount"`
	IsCurrent  bool            `json:"isCurrent"`
}

// HeadlineResponse represents the total shown above the chart.
type HeadlineResponse struct {
	Net        decimal.Decimal `json:"net"`
	Label      string          `json:"label"`
	ShiftCount int             `json:"shiftCount"`
}

// ChartSeriesResponse represents the response of the chart endpoint.
type ChartSeriesResponse struct {
	Period   string           `json:"period"`
	Today    string           `json:"today"`
	Headline HeadlineResponse `json:"headline"`
	MaxNet   decimal.Decimal  `json:"maxNet"`
	Buckets  []BucketResponse `json:"buckets"`
}

// PeriodDetailResponse represents the response of the detail endpoint.
type PeriodDetailResponse struct {
	Period  string                `json:"period"`
	Title   string                `json:"title"`
	Header  string                `json:"header"`
	Summary PeriodSummaryResponse `json:"summary"`
	Shifts  []ShiftResponse       `json:"shifts"`
}

// ToPeriodSummaryResponse converts a period summary to its DTO.
func ToPeriodSummaryResponse(s dashboard.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Period:      string(s.Period),
		Start:       s.Start,
		End:         s.End,
		Gross:       Money(s.Gross),
		Net:         Money(s.Net),
		Km:          s.Km,
		RangeChange: s.RangeChange,
		FuelCost:    Money(s.FuelCost),
		Commissions: Money(s.Commissions),
		Fines:       Money(s.Fines),
		Tax:         Money(s.Tax),
		ShiftCount:  s.ShiftCount,
	}
}

// ToChartSeriesResponse converts chart use case output to its DTO.
func ToChartSeriesResponse(out *dashboard.GetChartSeriesOutput) ChartSeriesResponse {
	buckets := make([]BucketResponse, len(out.Buckets))
	for i, b := range out.Buckets {
		buckets[i] = BucketResponse{
			Start:      b.Start,
			End:        b.End,
			Label:      b.Label,
			Net:        Money(b.Net),
			ShiftCount: b.ShiftCount,
			IsCurrent:  b.IsCurrent,
		}
	}

	return ChartSeriesResponse{
		Period: string(out.Period),
		Today:  out.Today.Format("2006-01-02"),
		Headline: HeadlineResponse{
			Net:        Money(out.Headline.Net),
			Label:      out.Headline.Label,
			ShiftCount: out.Headline.ShiftCount,
		},
		MaxNet:  Money(out.MaxNet),
		Buckets: buckets,
	}
}

// ToPeriodDetailResponse converts detail use case output to its DTO.
func ToPeriodDetailResponse(out *dashboard.GetPeriodDetailOutput) PeriodDetailResponse {
	shifts := make([]ShiftResponse, len(out.Shifts))
	for i, s := range out.Shifts {
		shifts[i] = ToShiftResponse(s, s.Breakdown())
	}

	return PeriodDetailResponse{
		Period:  string(out.Period),
		Title:   out.Title,
		Header:  out.Header,
		Summary: ToPeriodSummaryResponse(out.Summary),
		Shifts:  shifts,
	}
}

// DataRangeResponse represents the dates covered by recorded shifts.
type DataRangeResponse struct {
	OldestDate  *time.Time `json:"oldestDate"`
	NewestDate  *time.Time `json:"newestDate"`
	TotalShifts int        `json:"totalShifts"`
	HasData     bool       `json:"hasData"`
}

// ToDataRangeResponse converts the data range output to a response.
func ToDataRangeResponse(out *dashboard.GetDataRangeOutput) DataRangeResponse {
	return DataRangeResponse{
		OldestDate:  out.OldestDate,
		NewestDate:  out.NewestDate,
		TotalShifts: out.TotalShifts,
		HasData:     out.HasData,
	}
}
