// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Fine represents one itemized penalty attached to a shift.
type Fine struct {
	ID     string
	Name   string
	Amount float64
}

// NewFine creates a new Fine with a freshly generated ID.
func NewFine(name string, amount float64) Fine {
	return Fine{
		ID:     uuid.New().String(),
		Name:   name,
		Amount: amount,
	}
}

// Shift represents one recorded work session with earnings, expenses and distance data.
//
// Monetary fields are expected to be non-negative and odometer/range readings are
// expected to move in their natural direction, but none of that is enforced:
// out-of-range input produces negative distances or nets rather than an error.
type Shift struct {
	ID   string
	Date time.Time

	OdometerStart float64
	OdometerEnd   float64
	RangeStart    float64 // remaining range, decreases over a shift
	RangeEnd      float64

	CardEarnings float64
	CashEarnings float64
	Tips         float64
	Bonuses      float64

	FuelCost         float64
	YandexCommission float64
	ParkCommission   float64
	RentCost         float64
	SelfEmployedTax  float64
	DeductRent       bool

	Fines []Fine // entry order
}

// NewShift creates a new Shift with a freshly generated ID.
func NewShift(date time.Time) *Shift {
	return &Shift{
		ID:    uuid.New().String(),
		Date:  date,
		Fines: []Fine{},
	}
}

// Clone returns a deep copy of the shift, including its fines.
func (s Shift) Clone() Shift {
	fines := make([]Fine, len(s.Fines))
	copy(fines, s.Fines)
	s.Fines = fines
	return s
}

// Gross returns the commission-bearing income: card + cash + bonuses.
func (s Shift) Gross() float64 {
	return s.CardEarnings + s.CashEarnings + s.Bonuses
}

// Commissions returns the aggregator and park commissions combined.
func (s Shift) Commissions() float64 {
	return s.YandexCommission + s.ParkCommission
}

// FinesTotal returns the sum of all fine amounts in entry order.
func (s Shift) FinesTotal() float64 {
	total := 0.0
	for _, fine := range s.Fines {
		total += fine.Amount
	}
	return total
}

// Rent returns the rent cost if it applies to this shift, zero otherwise.
func (s Shift) Rent() float64 {
	if s.DeductRent {
		return s.RentCost
	}
	return 0
}

// Expenses returns fuel, commissions, fines, rent and tax combined.
func (s Shift) Expenses() float64 {
	return s.FuelCost + s.Commissions() + s.FinesTotal() + s.Rent() + s.SelfEmployedTax
}

// Net returns the shift's net earnings.
// Tips are added after expenses are subtracted: they are commission-free income
// and must not enter the gross.
func (s Shift) Net() float64 {
	return s.Gross() + s.Tips - s.Expenses()
}

// Distance returns the kilometres driven during the shift.
func (s Shift) Distance() float64 {
	return s.OdometerEnd - s.OdometerStart
}

// RangeChange returns how much remaining range was consumed during the shift.
func (s Shift) RangeChange() float64 {
	return s.RangeStart - s.RangeEnd
}

// ComputeNet returns the net earnings of a shift.
func ComputeNet(s Shift) float64 {
	return s.Net()
}

// ShiftBreakdown holds the derived figures of a single shift.
type ShiftBreakdown struct {
	Distance    float64
	RangeChange float64
	Gross       float64
	Commissions float64
	FinesTotal  float64
	Rent        float64
	Expenses    float64
	Net         float64
}

// Breakdown computes all derived figures of the shift at once.
func (s Shift) Breakdown() ShiftBreakdown {
	return ShiftBreakdown{
		Distance:    s.Distance(),
		RangeChange: s.RangeChange(),
		Gross:       s.Gross(),
		Commissions: s.Commissions(),
		FinesTotal:  s.FinesTotal(),
		Rent:        s.Rent(),
		Expenses:    s.Expenses(),
		Net:         s.Net(),
	}
}
