// Package shift contains shift-related use cases.
package shift

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/taxometer/backend/internal/domain/entity"
	domainerror "github.com/taxometer/backend/internal/domain/error"
)

// ShiftCollection defines the operations shift use cases need from the collection owner.
type ShiftCollection interface {
	IsLoaded() bool
	Current() []entity.Shift
	Modify(fn func(current []entity.Shift) ([]entity.Shift, bool))
}

// FineInput represents one fine as entered by the driver.
// An empty ID gets a generated one.
type FineInput struct {
	ID     string
	Name   string
	Amount float64
}

// ShiftFields holds every editable field of a shift. Amounts left out by the
// client arrive here as 0.
type ShiftFields struct {
	Date time.Time

	OdometerStart float64
	OdometerEnd   float64
	RangeStart    float64
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

	Fines []FineInput
}

// ShiftOutput represents a shift together with its derived figures.
type ShiftOutput struct {
	Shift     entity.Shift
	Breakdown entity.ShiftBreakdown
}

// toShiftOutput converts a shift entity to output format.
func toShiftOutput(s entity.Shift) *ShiftOutput {
	return &ShiftOutput{
		Shift:     s,
		Breakdown: s.Breakdown(),
	}
}

// applyFields copies the editable fields onto shift, keeping its ID.
func applyFields(shift *entity.Shift, fields ShiftFields) {
	shift.Date = fields.Date
	shift.OdometerStart = fields.OdometerStart
	shift.OdometerEnd = fields.OdometerEnd
	shift.RangeStart = fields.RangeStart
	shift.RangeEnd = fields.RangeEnd
	shift.CardEarnings = fields.CardEarnings
	shift.CashEarnings = fields.CashEarnings
	shift.Tips = fields.Tips
	shift.Bonuses = fields.Bonuses
	shift.FuelCost = fields.FuelCost
	shift.YandexCommission = fields.YandexCommission
	shift.ParkCommission = fields.ParkCommission
	shift.RentCost = fields.RentCost
	shift.SelfEmployedTax = fields.SelfEmployedTax
	shift.DeductRent = fields.DeductRent

	shift.Fines = make([]entity.Fine, len(fields.Fines))
	for i, f := range fields.Fines {
		id := f.ID
		if id == "" {
			id = uuid.New().String()
		}
		shift.Fines[i] = entity.Fine{ID: id, Name: f.Name, Amount: f.Amount}
	}
}

// validateFields rejects structurally unusable input. Amounts are never range-checked.
func validateFields(fields ShiftFields) error {
	if fields.Date.IsZero() {
		return domainerror.NewShiftError(
			domainerror.ErrCodeInvalidShiftDate,
			"date is required",
			domainerror.ErrInvalidShiftDate,
		)
	}
	return nil
}

// ensureLoaded rejects operations issued before the collection has been read.
func ensureLoaded(collection ShiftCollection) error {
	if !collection.IsLoaded() {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStoreNotLoaded,
			"shift collection is still loading",
			domainerror.ErrStoreNotLoaded,
		)
	}
	return nil
}

// notFound returns the error for an unknown shift ID.
func notFound() error {
	return domainerror.NewShiftError(
		domainerror.ErrCodeShiftNotFound,
		"shift not found",
		domainerror.ErrShiftNotFound,
	)
}

// sortNewestFirst orders shifts by date, newest first, keeping ties in place.
func sortNewestFirst(shifts []entity.Shift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		return shifts[i].Date.After(shifts[j].Date)
	})
}
