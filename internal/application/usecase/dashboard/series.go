// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/taxometer/backend/internal/domain/calendar"
	"github.com/taxometer/backend/internal/domain/entity"
)

// Bucket is one calendar-aligned slot of a chart series.
type Bucket struct {
	Start      time.Time
	End        time.Time
	Net        float64
	Label      string
	ShiftCount int
	IsCurrent  bool
}

// Headline is the total shown above the chart.
type Headline struct {
	Net        float64
	Label      string
	ShiftCount int // shifts dated today, only filled for the day period
}

// BuildSeries returns length buckets ending with the one containing today, oldest first.
// Each shift is added to the bucket its own period anchor matches; shifts outside the
// series are dropped.
func BuildSeries(shifts []entity.Shift, period entity.Period, today time.Time, length int) []Bucket {
	if length <= 0 {
		return []Bucket{}
	}

	buckets := make([]Bucket, length)
	index := make(map[string]int, length)

	current := calendar.Anchor(period, today)
	for i := 0; i < length; i++ {
		start := anchorOffset(current, period, -i)
		_, end := calendar.Bounds(period, start)

		pos := length - 1 - i
		buckets[pos] = Bucket{
			Start:     start,
			End:       end,
			Label:     BucketLabel(start, period),
			IsCurrent: i == 0,
		}
		index[start.Format(calendar.DayLayout)] = pos
	}

	loc := today.Location()
	for _, shift := range shifts {
		key := GetPeriodKeyForDate(shift.Date.In(loc), period)
		pos, ok := index[key]
		if !ok {
			continue
		}
		buckets[pos].Net += shift.Net()
		buckets[pos].ShiftCount++
	}

	return buckets
}

// BuildHeadline computes the headline for the series built for today.
// The day headline counts today's shifts; week and month headlines repeat the current bucket.
func BuildHeadline(shifts []entity.Shift, period entity.Period, today time.Time, series []Bucket) Headline {
	if period == entity.PeriodDay {
		summary := Summarize(shifts, entity.PeriodDay, today)
		return Headline{
			Net:        summary.Net,
			Label:      HeadlineLabel(period, summary.ShiftCount),
			ShiftCount: summary.ShiftCount,
		}
	}

	headline := Headline{Label: HeadlineLabel(period, 0)}
	if len(series) > 0 {
		headline.Net = series[len(series)-1].Net
	}
	return headline
}

// MaxNet returns the largest bucket net, never less than 1, for chart scaling.
func MaxNet(series []Bucket) float64 {
	maxNet := 1.0
	for _, b := range series {
		if b.Net > maxNet {
			maxNet = b.Net
		}
	}
	return maxNet
}

// anchorOffset moves a period anchor by n whole periods.
func anchorOffset(anchor time.Time, period entity.Period, n int) time.Time {
	switch period {
	case entity.PeriodWeek:
		return time.Date(anchor.Year(), anchor.Month(), anchor.Day()+7*n, 0, 0, 0, 0, anchor.Location())
	case entity.PeriodMonth:
		return time.Date(anchor.Year(), anchor.Month()+time.Month(n), 1, 0, 0, 0, 0, anchor.Location())
	default:
		return time.Date(anchor.Year(), anchor.Month(), anchor.Day()+n, 0, 0, 0, 0, anchor.Location())
	}
}
