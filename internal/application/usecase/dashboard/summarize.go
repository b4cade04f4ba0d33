// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/taxometer/backend/internal/domain/calendar"
	"github.com/taxometer/backend/internal/domain/entity"
)

// PeriodSummary holds the totals of all shifts inside one period window.
type PeriodSummary struct {
	Period      entity.Period
	Start       time.Time
	End         time.Time
	Gross       float64 // card + cash
	Net         float64
	Km          float64
	RangeChange float64
	FuelCost    float64
	Commissions float64
	Fines       float64
	Tax         float64
	ShiftCount  int
}

// Summarize folds every shift dated inside the period window containing ref.
// Shifts are visited once, in input order, so repeated calls give identical totals.
func Summarize(shifts []entity.Shift, period entity.Period, ref time.Time) PeriodSummary {
	start, end := calendar.Bounds(period, ref)
	summary := PeriodSummary{
		Period: period,
		Start:  start,
		End:    end,
	}

	for _, shift := range shifts {
		if !calendar.Contains(start, end, shift.Date) {
			continue
		}
		summary.Gross += shift.CardEarnings + shift.CashEarnings
		summary.Net += shift.Net()
		summary.Km += shift.Distance()
		summary.RangeChange += shift.RangeChange()
		summary.FuelCost += shift.FuelCost
		summary.Commissions += shift.Commissions()
		summary.Fines += shift.FinesTotal()
		summary.Tax += shift.SelfEmployedTax
		summary.ShiftCount++
	}

	return summary
}

// FilterShifts returns the shifts dated inside the period window containing ref, in input order.
func FilterShifts(shifts []entity.Shift, period entity.Period, ref time.Time) []entity.Shift {
	start, end := calendar.Bounds(period, ref)

	filtered := make([]entity.Shift, 0)
	for _, shift := range shifts {
		if calendar.Contains(start, end, shift.Date) {
			filtered = append(filtered, shift)
		}
	}
	return filtered
}
