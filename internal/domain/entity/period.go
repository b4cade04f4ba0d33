// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// Period represents an aggregation granularity.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// IsValid returns true if the period is one of the supported granularities.
func (p Period) IsValid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Period) String() string {
	return string(p)
}

// ParsePeriod converts user input into a Period.
func ParsePeriod(value string) (Period, bool) {
	p := Period(strings.ToLower(strings.TrimSpace(value)))
	return p, p.IsValid()
}
