// Package calendar computes day, week and month window edges.
//
// Every function works in the location of its input time. Weeks start on
// Monday. These functions are the only place period boundaries are defined;
// aggregation and charting code must not compute its own edges.
package calendar

import (
	"time"

	"github.com/taxometer/backend/internal/domain/entity"
)

// lastNanosecond is the final instant of a day, the nanosecond counterpart of 23:59:59.999.
const lastNanosecond = int(time.Second - time.Nanosecond)

// StartOfDay returns midnight of d's calendar day.
func StartOfDay(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

// EndOfDay returns the last instant of d's calendar day.
func EndOfDay(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, lastNanosecond, d.Location())
}

// StartOfWeek returns midnight of the Monday of d's week.
// A Sunday belongs to the week that started six days earlier.
func StartOfWeek(d time.Time) time.Time {
	y, m, day := d.Date()
	weekday := int(d.Weekday())

	offset := 1
	if weekday == 0 {
		offset = -6
	}
	return time.Date(y, m, day-weekday+offset, 0, 0, 0, 0, d.Location())
}

// EndOfWeek returns the last instant of the Sunday closing d's week.
func EndOfWeek(d time.Time) time.Time {
	start := StartOfWeek(d)
	return time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, lastNanosecond, d.Location())
}

// StartOfMonth returns midnight of the first day of d's month.
func StartOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// EndOfMonth returns the last instant of d's month.
func EndOfMonth(d time.Time) time.Time {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(d.Year(), d.Month()+1, 0, 23, 59, 59, lastNanosecond, d.Location())
}

// IsSameDay reports whether a and b fall on the same calendar day.
// b is read in a's location.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// Bounds returns the inclusive [start, end] window of the given period containing d.
func Bounds(period entity.Period, d time.Time) (start, end time.Time) {
	switch period {
	case entity.PeriodWeek:
		return StartOfWeek(d), EndOfWeek(d)
	case entity.PeriodMonth:
		return StartOfMonth(d), EndOfMonth(d)
	default:
		return StartOfDay(d), EndOfDay(d)
	}
}

// Anchor returns the start of the period containing d.
func Anchor(period entity.Period, d time.Time) time.Time {
	start, _ := Bounds(period, d)
	return start
}

// Contains reports whether t lies inside the inclusive window [start, end].
func Contains(start, end, t time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
