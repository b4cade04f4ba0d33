// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxometer/backend/internal/application/usecase/shift"
	"github.com/taxometer/backend/internal/domain/calendar"
	"github.com/taxometer/backend/internal/domain/entity"
)

// FineRequest represents one fine in a shift request body.
type FineRequest struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ShiftRequest represents the request body for creating, replacing or previewing a shift.
// Amounts left out of the body count as 0.
type ShiftRequest struct {
	Date             string        `json:"date"`
	OdometerStart    *float64      `json:"odometerStart,omitempty"`
	OdometerEnd      *float64      `json:"odometerEnd,omitempty"`
	RangeStart       *float64      `json:"rangeStart,omitempty"`
	RangeEnd         *float64      `json:"rangeEnd,omitempty"`
	CardEarnings     *float64      `json:"cardEarnings,omitempty"`
	CashEarnings     *float64      `json:"cashEarnings,omitempty"`
	Tips             *float64      `json:"tips,omitempty"`
	Bonuses          *float64      `json:"bonuses,omitempty"`
	FuelCost         *float64      `json:"fuelCost,omitempty"`
	YandexCommission *float64      `json:"yandexCommission,omitempty"`
	ParkCommission   *float64      `json:"parkCommission,omitempty"`
	RentCost         *float64      `json:"rentCost,omitempty"`
	SelfEmployedTax  *float64      `json:"selfEmployedTax,omitempty"`
	DeductRent       bool          `json:"deductRent"`
	Fines            []FineRequest `json:"fines" binding:"omitempty,dive"`
}

// ToFields converts the request into use case fields. The date is parsed in loc;
// an empty or unparseable date is returned as the zero time along with the parse error.
func (r *ShiftRequest) ToFields(loc *time.Location) (shift.ShiftFields, error) {
	fines := make([]shift.FineInput, len(r.Fines))
	for i, f := range r.Fines {
		fines[i] = shift.FineInput{ID: f.ID, Name: f.Name, Amount: f.Amount}
	}

	fields := shift.ShiftFields{
		OdometerStart:    orZero(r.OdometerStart),
		OdometerEnd:      orZero(r.OdometerEnd),
		RangeStart:       orZero(r.RangeStart),
		RangeEnd:         orZero(r.RangeEnd),
		CardEarnings:     orZero(r.CardEarnings),
		CashEarnings:     orZero(r.CashEarnings),
		Tips:             orZero(r.Tips),
		Bonuses:          orZero(r.Bonuses),
		FuelCost:         orZero(r.FuelCost),
		YandexCommission: orZero(r.YandexCommission),
		ParkCommission:   orZero(r.ParkCommission),
		RentCost:         orZero(r.RentCost),
		SelfEmployedTax:  orZero(r.SelfEmployedTax),
		DeductRent:       r.DeductRent,
		Fines:            fines,
	}

	if r.Date == "" {
		return fields, nil
	}
	date, err := calendar.ParseDate(r.Date, loc)
	if err != nil {
		return fields, err
	}
	fields.Date = date
	return fields, nil
}

// FineResponse represents a fine in API responses.
type FineResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// BreakdownResponse represents the derived figures of a shift.
type BreakdownResponse struct {
	Distance    float64         `json:"distance"`
	RangeChange float64         `json:"rangeChange"`
	Gross       decimal.Decimal `json:"gross"`
	Commissions decimal.Decimal `json:"commissions"`
	Fines       decimal.Decimal `json:"fines"`
	Rent        decimal.Decimal `json:"rent"`
	Expenses    decimal.Decimal `json:"expenses"`
	Net         decimal.Decimal `json:"net"`
}

// ShiftResponse represents a single shift in API responses.
type ShiftResponse struct {
	ID               string            `json:"id"`
	Date             time.Time         `json:"date"`
	OdometerStart    float64           `json:"odometerStart"`
	OdometerEnd      float64           `json:"odometerEnd"`
	RangeStart       float64           `json:"rangeStart"`
	RangeEnd         float64           `json:"rangeEnd"`
	CardEarnings     float64           `json:"cardEarnings"`
	CashEarnings     float64           `json:"cashEarnings"`
	Tips             float64           `json:"tips"`
	Bonuses          float64           `json:"bonuses"`
	FuelCost         float64           `json:"fuelCost"`
	YandexCommission float64           `json:"yandexCommission"`
	ParkCommission   float64           `json:"parkCommission"`
	RentCost         float64           `json:"rentCost"`
	SelfEmployedTax  float64           `json:"selfEmployedTax"`
	DeductRent       bool              `json:"deductRent"`
	Fines            []FineResponse    `json:"fines"`
	Breakdown        BreakdownResponse `json:"breakdown"`
}

// ShiftListResponse represents the response for listing shifts.
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
	Total  int             `json:"total"`
}

// ToBreakdownResponse converts a shift breakdown to its DTO.
func ToBreakdownResponse(b entity.ShiftBreakdown) BreakdownResponse {
	return BreakdownResponse{
		Distance:    b.Distance,
		RangeChange: b.RangeChange,
		Gross:       Money(b.Gross),
		Commissions: Money(b.Commissions),
		Fines:       Money(b.FinesTotal),
		Rent:        Money(b.Rent),
		Expenses:    Money(b.Expenses),
		Net:         Money(b.Net),
	}
}

// ToShiftResponse converts a shift entity and its breakdown to a ShiftResponse DTO.
func ToShiftResponse(s entity.Shift, b entity.ShiftBreakdown) ShiftResponse {
	fines := make([]FineResponse, len(s.Fines))
	for i, f := range s.Fines {
		fines[i] = FineResponse{ID: f.ID, Name: f.Name, Amount: f.Amount}
	}

	return ShiftResponse{
		ID:               s.ID,
		Date:             s.Date,
		OdometerStart:    s.OdometerStart,
		OdometerEnd:      s.OdometerEnd,
		RangeStart:       s.RangeStart,
		RangeEnd:         s.RangeEnd,
		CardEarnings:     s.CardEarnings,
		CashEarnings:     s.CashEarnings,
		Tips:             s.Tips,
		Bonuses:          s.Bonuses,
		FuelCost:         s.FuelCost,
		YandexCommission: s.YandexCommission,
		ParkCommission:   s.ParkCommission,
		RentCost:         s.RentCost,
		SelfEmployedTax:  s.SelfEmployedTax,
		DeductRent:       s.DeductRent,
		Fines:            fines,
		Breakdown:        ToBreakdownResponse(b),
	}
}

// FromShiftOutput converts a use case ShiftOutput to a ShiftResponse DTO.
func FromShiftOutput(out *shift.ShiftOutput) ShiftResponse {
	return ToShiftResponse(out.Shift, out.Breakdown)
}

// ToShiftListResponse converts use case output to a ShiftListResponse DTO.
func ToShiftListResponse(out *shift.ListShiftsOutput) ShiftListResponse {
	shifts := make([]ShiftResponse, len(out.Shifts))
	for i, s := range out.Shifts {
		shifts[i] = FromShiftOutput(s)
	}
	return ShiftListResponse{
		Shifts: shifts,
		Total:  out.Total,
	}
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
