package dashboard

import (
	"testing"
	"time"

	"github.com/taxometer/backend/internal/domain/entity"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, time.October, day, hour, min, 0, 0, time.UTC)
}

func shiftAt(id string, date time.Time, card float64) entity.Shift {
	return entity.Shift{ID: id, Date: date, CardEarnings: card, Fines: []entity.Fine{}}
}

func TestSummarize_Day(t *testing.T) {
	shifts := []entity.Shift{
		shiftAt("a", at(14, 0, 0), 100),
		shiftAt("b", at(14, 23, 59), 200),
		shiftAt("c", at(15, 0, 0), 400),
		shiftAt("d", at(13, 23, 59), 800),
	}

	summary := Summarize(shifts, entity.PeriodDay, at(14, 12, 0))

	if summary.Net != 300 {
		t.Errorf("expected net 300, got %v", summary.Net)
	}
	if summary.ShiftCount != 2 {
		t.Errorf("expected 2 shifts, got %d", summary.ShiftCount)
	}
	if !summary.Start.Equal(at(14, 0, 0)) {
		t.Errorf("unexpected start %v", summary.Start)
	}
	if summary.Period != entity.PeriodDay {
		t.Errorf("unexpected period %v", summary.Period)
	}
}

func TestSummarize_Week(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		included bool
	}{
		{"monday midnight", at(12, 0, 0), true},
		{"sunday last minute", at(18, 23, 59), true},
		{"previous sunday", at(11, 23, 59), false},
		{"next monday", at(19, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize([]entity.Shift{shiftAt("a", tt.date, 100)}, entity.PeriodWeek, at(14, 9, 0))
			if got := summary.ShiftCount == 1; got != tt.included {
				t.Errorf("expected included=%v, got %v", tt.included, got)
			}
		})
	}
}

func TestSummarize_Fields(t *testing.T) {
	shifts := []entity.Shift{
		{
			ID:               "a",
			Date:             at(3, 10, 0),
			OdometerStart:    1000,
			OdometerEnd:      1250,
			RangeStart:       400,
			RangeEnd:         180,
			CardEarnings:     1000,
			CashEarnings:     200,
			Bonuses:          50,
			Tips:             80,
			FuelCost:         150,
			YandexCommission: 120,
			ParkCommission:   30,
			RentCost:         300,
			DeductRent:       true,
			SelfEmployedTax:  40,
			Fines:            []entity.Fine{{ID: "f", Amount: 100}},
		},
		{
			ID:            "b",
			Date:          at(20, 10, 0),
			OdometerStart: 1250,
			OdometerEnd:   1300,
			CashEarnings:  500,
			FuelCost:      50,
			Fines:         []entity.Fine{},
		},
	}

	s := Summarize(shifts, entity.PeriodMonth, at(18, 12, 0))

	expected := PeriodSummary{
		Period:      entity.PeriodMonth,
		Start:       time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2026, time.October, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
		Gross:       1700,
		Net:         1040,
		Km:          300,
		RangeChange: 220,
		FuelCost:    200,
		Commissions: 150,
		Fines:       100,
		Tax:         40,
		ShiftCount:  2,
	}

	if !s.Start.Equal(expected.Start) || !s.End.Equal(expected.End) {
		t.Errorf("expected window [%v, %v], got [%v, %v]", expected.Start, expected.End, s.Start, s.End)
	}
	s.Start, s.End = expected.Start, expected.End
	if s != expected {
		t.Errorf("expected %+v, got %+v", expected, s)
	}
}

func TestSummarize_EmptyAndIdempotent(t *testing.T) {
	empty := Summarize(nil, entity.PeriodWeek, at(14, 0, 0))
	if empty.Net != 0 || empty.Gross != 0 || empty.ShiftCount != 0 {
		t.Errorf("expected zero summary, got %+v", empty)
	}

	shifts := []entity.Shift{
		shiftAt("a", at(14, 1, 0), 0.1),
		shiftAt("b", at(14, 2, 0), 0.2),
		shiftAt("c", at(14, 3, 0), 0.3),
	}
	first := Summarize(shifts, entity.PeriodDay, at(14, 0, 0))
	for i := 0; i < 5; i++ {
		if got := Summarize(shifts, entity.PeriodDay, at(14, 0, 0)); got != first {
			t.Fatalf("expected identical summary, got %+v vs %+v", got, first)
		}
	}
}

func TestSummarize_MatchesSameDayNets(t *testing.T) {
	shifts := []entity.Shift{
		shiftAt("a", at(14, 6, 0), 120),
		shiftAt("b", at(15, 6, 0), 50),
		shiftAt("c", at(14, 22, 0), 30),
	}
	shifts[2].FuelCost = 70

	ref := at(14, 12, 0)
	var expected float64
	for _, s := range shifts {
		if s.Date.Year() == ref.Year() && s.Date.YearDay() == ref.YearDay() {
			expected += entity.ComputeNet(s)
		}
	}

	if got := Summarize(shifts, entity.PeriodDay, ref).Net; got != expected {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestFilterShifts(t *testing.T) {
	shifts := []entity.Shift{
		shiftAt("a", at(1, 0, 0), 1),
		shiftAt("b", at(31, 23, 0), 1),
		shiftAt("c", time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC), 1),
		shiftAt("d", time.Date(2026, time.September, 30, 23, 59, 0, 0, time.UTC), 1),
	}

	got := FilterShifts(shifts, entity.PeriodMonth, at(18, 0, 0))
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("unexpected filtered shifts %+v", got)
	}

	if got := FilterShifts(nil, entity.PeriodDay, at(18, 0, 0)); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
