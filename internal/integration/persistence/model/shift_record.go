// Package model defines storage models for the persistence layer.
package model

import (
	"time"

	"github.com/taxometer/backend/internal/domain/calendar"
	"github.com/taxometer/backend/internal/domain/entity"
)

// RecordDateLayout is the date shape written to storage: UTC with millisecond precision.
const RecordDateLayout = "2006-01-02T15:04:05.000Z"

// FineRecord is the stored shape of a fine.
type FineRecord struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ShiftRecord is the stored shape of a shift inside the persisted collection.
// Tips, Bonuses and SelfEmployedTax are pointers because older records may omit them.
type ShiftRecord struct {
	ID               string       `json:"id"`
	Date             string       `json:"date"`
	OdometerStart    float64      `json:"odometerStart"`
	OdometerEnd      float64      `json:"odometerEnd"`
	RangeStart       float64      `json:"rangeStart"`
	RangeEnd         float64      `json:"rangeEnd"`
	CardEarnings     float64      `json:"cardEarnings"`
	CashEarnings     float64      `json:"cashEarnings"`
	FuelCost         float64      `json:"fuelCost"`
	YandexCommission float64      `json:"yandexCommission"`
	ParkCommission   float64      `json:"parkCommission"`
	RentCost         float64      `json:"rentCost"`
	DeductRent       bool         `json:"deductRent"`
	SelfEmployedTax  *float64     `json:"selfEmployedTax,omitempty"`
	Tips             *float64     `json:"tips,omitempty"`
	Bonuses          *float64     `json:"bonuses,omitempty"`
	Fines            []FineRecord `json:"fines"`
}

// ToEntity normalizes the record into a fully populated Shift placed in loc.
// Absent optional amounts become 0 and absent fines become an empty list.
// An unparseable date is reported as an error alongside a Shift with a zero date.
func (r *ShiftRecord) ToEntity(loc *time.Location) (entity.Shift, error) {
	fines := make([]entity.Fine, len(r.Fines))
	for i, f := range r.Fines {
		fines[i] = entity.Fine{ID: f.ID, Name: f.Name, Amount: f.Amount}
	}

	shift := entity.Shift{
		ID:               r.ID,
		OdometerStart:    r.OdometerStart,
		OdometerEnd:      r.OdometerEnd,
		RangeStart:       r.RangeStart,
		RangeEnd:         r.RangeEnd,
		CardEarnings:     r.CardEarnings,
		CashEarnings:     r.CashEarnings,
		Tips:             valueOrZero(r.Tips),
		Bonuses:          valueOrZero(r.Bonuses),
		FuelCost:         r.FuelCost,
		YandexCommission: r.YandexCommission,
		ParkCommission:   r.ParkCommission,
		RentCost:         r.RentCost,
		SelfEmployedTax:  valueOrZero(r.SelfEmployedTax),
		DeductRent:       r.DeductRent,
		Fines:            fines,
	}

	date, err := calendar.ParseDate(r.Date, loc)
	if err != nil {
		return shift, err
	}
	shift.Date = date
	return shift, nil
}

// ShiftRecordFromEntity creates a ShiftRecord from a domain Shift.
// Optional amounts are always written so the stored record is fully populated.
func ShiftRecordFromEntity(shift entity.Shift) ShiftRecord {
	fines := make([]FineRecord, len(shift.Fines))
	for i, f := range shift.Fines {
		fines[i] = FineRecord{ID: f.ID, Name: f.Name, Amount: f.Amount}
	}

	tips := shift.Tips
	bonuses := shift.Bonuses
	tax := shift.SelfEmployedTax

	return ShiftRecord{
		ID:               shift.ID,
		Date:             FormatRecordDate(shift.Date),
		OdometerStart:    shift.OdometerStart,
		OdometerEnd:      shift.OdometerEnd,
		RangeStart:       shift.RangeStart,
		RangeEnd:         shift.RangeEnd,
		CardEarnings:     shift.CardEarnings,
		CashEarnings:     shift.CashEarnings,
		FuelCost:         shift.FuelCost,
		YandexCommission: shift.YandexCommission,
		ParkCommission:   shift.ParkCommission,
		RentCost:         shift.RentCost,
		DeductRent:       shift.DeductRent,
		SelfEmployedTax:  &tax,
		Tips:             &tips,
		Bonuses:          &bonuses,
		Fines:            fines,
	}
}

// FormatRecordDate formats t the way records are stored.
func FormatRecordDate(t time.Time) string {
	return t.UTC().Format(RecordDateLayout)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
