package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taxometer/backend/internal/domain/entity"
	domainerror "github.com/taxometer/backend/internal/domain/error"
)

type stubSource struct {
	loaded bool
	shifts []entity.Shift
}

func (s *stubSource) IsLoaded() bool          { return s.loaded }
func (s *stubSource) Current() []entity.Shift { return s.shifts }

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func loadedSource(shifts ...entity.Shift) *stubSource {
	return &stubSource{loaded: true, shifts: shifts}
}

func dashboardCode(t *testing.T, err error) domainerror.DashboardErrorCode {
	t.Helper()
	var dashErr *domainerror.DashboardError
	if !errors.As(err, &dashErr) {
		t.Fatalf("expected DashboardError, got %v", err)
	}
	return dashErr.Code
}

func TestUseCases_PeriodValidation(t *testing.T) {
	source := loadedSource()
	clock := fixedClock(sundayAfternoon)
	ctx := context.Background()

	tests := []struct {
		period   string
		expected domainerror.DashboardErrorCode
	}{
		{"", domainerror.ErrCodeMissingPeriod},
		{"year", domainerror.ErrCodeInvalidPeriod},
		{"weekly", domainerror.ErrCodeInvalidPeriod},
	}

	for _, tt := range tests {
		t.Run("summary "+tt.period, func(t *testing.T) {
			_, err := NewGetPeriodSummaryUseCase(source, clock).Execute(ctx, GetPeriodSummaryInput{Period: tt.period})
			if code := dashboardCode(t, err); code != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, code)
			}
		})
		t.Run("chart "+tt.period, func(t *testing.T) {
			_, err := NewGetChartSeriesUseCase(source, clock, SeriesLengths{}).Execute(ctx, GetChartSeriesInput{Period: tt.period})
			if code := dashboardCode(t, err); code != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, code)
			}
		})
		t.Run("detail "+tt.period, func(t *testing.T) {
			_, err := NewGetPeriodDetailUseCase(source, clock).Execute(ctx, GetPeriodDetailInput{Period: tt.period})
			if code := dashboardCode(t, err); code != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, code)
			}
		})
	}
}

func TestUseCases_NotLoaded(t *testing.T) {
	source := &stubSource{}
	clock := fixedClock(sundayAfternoon)
	ctx := context.Background()

	errs := []error{}
	_, err := NewGetPeriodSummaryUseCase(source, clock).Execute(ctx, GetPeriodSummaryInput{Period: "day"})
	errs = append(errs, err)
	_, err = NewGetChartSeriesUseCase(source, clock, SeriesLengths{}).Execute(ctx, GetChartSeriesInput{Period: "day"})
	errs = append(errs, err)
	_, err = NewGetPeriodDetailUseCase(source, clock).Execute(ctx, GetPeriodDetailInput{Period: "day"})
	errs = append(errs, err)

	for i, err := range errs {
		if !errors.Is(err, domainerror.ErrStoreNotLoaded) {
			t.Errorf("use case %d: expected ErrStoreNotLoaded, got %v", i, err)
		}
		var storageErr *domainerror.StorageError
		if !errors.As(err, &storageErr) || storageErr.Code != domainerror.ErrCodeStoreNotLoaded {
			t.Errorf("use case %d: expected %s, got %v", i, domainerror.ErrCodeStoreNotLoaded, err)
		}
	}
}

func TestGetPeriodSummaryUseCase(t *testing.T) {
	source := loadedSource(
		shiftAt("a", at(18, 8, 0), 100),
		shiftAt("b", at(14, 8, 0), 200),
	)
	uc := NewGetPeriodSummaryUseCase(source, fixedClock(sundayAfternoon))

	t.Run("defaults to today", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetPeriodSummaryInput{Period: "day"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary.Net != 100 {
			t.Errorf("expected 100, got %v", out.Summary.Net)
		}
	})

	t.Run("explicit date", func(t *testing.T) {
		date := at(14, 0, 0)
		out, err := uc.Execute(context.Background(), GetPeriodSummaryInput{Period: "Day", Date: &date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary.Net != 200 {
			t.Errorf("expected 200, got %v", out.Summary.Net)
		}
	})

	t.Run("week", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetPeriodSummaryInput{Period: "week"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary.Net != 300 || out.Summary.ShiftCount != 2 {
			t.Errorf("expected 300 from 2 shifts, got %+v", out.Summary)
		}
	})
}

func TestGetChartSeriesUseCase(t *testing.T) {
	source := loadedSource(shiftAt("a", at(18, 8, 0), 100))
	clock := fixedClock(sundayAfternoon)

	t.Run("configured defaults", func(t *testing.T) {
		uc := NewGetChartSeriesUseCase(source, clock, SeriesLengths{})
		for period, expected := range map[string]int{"day": 7, "week": 4, "month": 6} {
			out, err := uc.Execute(context.Background(), GetChartSeriesInput{Period: period})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Buckets) != expected {
				t.Errorf("%s: expected %d buckets, got %d", period, expected, len(out.Buckets))
			}
			if out.Headline.Net != 100 {
				t.Errorf("%s: expected headline 100, got %v", period, out.Headline.Net)
			}
		}
	})

	t.Run("custom defaults and override", func(t *testing.T) {
		uc := NewGetChartSeriesUseCase(source, clock, SeriesLengths{Days: 14, Weeks: 8, Months: 12})

		out, err := uc.Execute(context.Background(), GetChartSeriesInput{Period: "day"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Buckets) != 14 {
			t.Errorf("expected 14 buckets, got %d", len(out.Buckets))
		}

		out, err = uc.Execute(context.Background(), GetChartSeriesInput{Period: "month", Length: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Buckets) != 2 {
			t.Errorf("expected 2 buckets, got %d", len(out.Buckets))
		}
		if !out.Today.Equal(sundayAfternoon) {
			t.Errorf("expected today from clock, got %v", out.Today)
		}
		if out.MaxNet != 100 {
			t.Errorf("expected max net 100, got %v", out.MaxNet)
		}
	})

	t.Run("invalid length", func(t *testing.T) {
		uc := NewGetChartSeriesUseCase(source, clock, SeriesLengths{})
		for _, length := range []int{-1, 367, 1000} {
			_, err := uc.Execute(context.Background(), GetChartSeriesInput{Period: "day", Length: length})
			if code := dashboardCode(t, err); code != domainerror.ErrCodeInvalidSeriesLength {
				t.Errorf("length %d: expected %s, got %s", length, domainerror.ErrCodeInvalidSeriesLength, code)
			}
		}
	})
}

func TestGetPeriodDetailUseCase(t *testing.T) {
	source := loadedSource(
		shiftAt("mon", at(12, 8, 0), 100),
		shiftAt("sun", at(18, 8, 0), 300),
		shiftAt("wed", at(14, 8, 0), 200),
		shiftAt("prev", at(11, 8, 0), 999),
	)
	uc := NewGetPeriodDetailUseCase(source, fixedClock(sundayAfternoon))

	out, err := uc.Execute(context.Background(), GetPeriodDetailInput{Period: "week"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "Сводка за неделю" {
		t.Errorf("unexpected title %q", out.Title)
	}
	if out.Header != "12 окт - 18 окт" {
		t.Errorf("unexpected header %q", out.Header)
	}
	if out.Summary.Net != 600 {
		t.Errorf("expected net 600, got %v", out.Summary.Net)
	}

	ids := []string{}
	for _, s := range out.Shifts {
		ids = append(ids, s.ID)
	}
	expected := []string{"sun", "wed", "mon"}
	if len(ids) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, ids)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("expected newest first %v, got %v", expected, ids)
			break
		}
	}
}

func TestGetDataRangeUseCase(t *testing.T) {
	oldest := time.Date(2026, time.September, 3, 8, 0, 0, 0, time.UTC)
	newest := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		source      *stubSource
		expectData  bool
		expectTotal int
	}{
		{"empty", loadedSource(), false, 0},
		{"undated only", loadedSource(entity.Shift{ID: "bad"}), false, 1},
		{"mixed", loadedSource(
			entity.Shift{ID: "b", Date: newest},
			entity.Shift{ID: "bad"},
			entity.Shift{ID: "a", Date: oldest},
		), true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewGetDataRangeUseCase(tt.source).Execute(context.Background(), GetDataRangeInput{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.HasData != tt.expectData || out.TotalShifts != tt.expectTotal {
				t.Fatalf("unexpected output %+v", out)
			}
			if tt.expectData {
				if !out.OldestDate.Equal(oldest) || !out.NewestDate.Equal(newest) {
					t.Errorf("expected %v..%v, got %v..%v", oldest, newest, *out.OldestDate, *out.NewestDate)
				}
			}
		})
	}

	t.Run("not loaded", func(t *testing.T) {
		_, err := NewGetDataRangeUseCase(&stubSource{}).Execute(context.Background(), GetDataRangeInput{})
		var storageErr *domainerror.StorageError
		if !errors.As(err, &storageErr) {
			t.Errorf("expected StorageError, got %v", err)
		}
	})
}
