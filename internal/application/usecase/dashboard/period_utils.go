// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/taxometer/backend/internal/domain/calendar"
	"github.com/taxometer/backend/internal/domain/entity"
)

// monthAbbreviations holds standalone short month names used for month buckets.
var monthAbbreviations = map[time.Month]string{
	time.January:   "янв",
	time.February:  "фев",
	time.March:     "мар",
	time.April:     "апр",
	time.May:       "май",
	time.June:      "июн",
	time.July:      "июл",
	time.August:    "авг",
	time.September: "сен",
	time.October:   "окт",
	time.November:  "ноя",
	time.December:  "дек",
}

// monthAbbreviationsGenitive holds short month names as they follow a day number ("13 мая").
var monthAbbreviationsGenitive = map[time.Month]string{
	time.January:   "янв",
	time.February:  "фев",
	time.March:     "мар",
	time.April:     "апр",
	time.May:       "мая",
	time.June:      "июн",
	time.July:      "июл",
	time.August:    "авг",
	time.September: "сен",
	time.October:   "окт",
	time.November:  "ноя",
	time.December:  "дек",
}

var monthNames = map[time.Month]string{
	time.January:   "январь",
	time.February:  "февраль",
	time.March:     "март",
	time.April:     "апрель",
	time.May:       "май",
	time.June:      "июнь",
	time.July:      "июль",
	time.August:    "август",
	time.September: "сентябрь",
	time.October:   "октябрь",
	time.November:  "ноябрь",
	time.December:  "декабрь",
}

var monthNamesGenitive = map[time.Month]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

// BucketLabel generates the chart label of the bucket starting at start.
// Formats:
// - Day: day of month (e.g., "18")
// - Week: first and last day of month (e.g., "12-18")
// - Month: short month name (e.g., "окт")
func BucketLabel(start time.Time, period entity.Period) string {
	switch period {
	case entity.PeriodWeek:
		end := calendar.EndOfWeek(start)
		return fmt.Sprintf("%d-%d", start.Day(), end.Day())
	case entity.PeriodMonth:
		return monthAbbreviations[start.Month()]
	default:
		return strconv.Itoa(start.Day())
	}
}

// PeriodTitle returns the heading of the period detail view.
func PeriodTitle(period entity.Period) string {
	switch period {
	case entity.PeriodWeek:
		return "Сводка за неделю"
	case entity.PeriodMonth:
		return "Сводка за месяц"
	default:
		return "Сводка за день"
	}
}

// PeriodHeader returns the human-readable name of the period containing date.
// Formats:
// - Day: "18 октября"
// - Week: "12 окт - 18 окт"
// - Month: "октябрь 2026"
func PeriodHeader(period entity.Period, date time.Time) string {
	switch period {
	case entity.PeriodWeek:
		start := calendar.StartOfWeek(date)
		end := calendar.EndOfWeek(date)
		return fmt.Sprintf("%d %s - %d %s",
			start.Day(), monthAbbreviationsGenitive[start.Month()],
			end.Day(), monthAbbreviationsGenitive[end.Month()],
		)
	case entity.PeriodMonth:
		return fmt.Sprintf("%s %d", monthNames[date.Month()], date.Year())
	default:
		return fmt.Sprintf("%d %s", date.Day(), monthNamesGenitive[date.Month()])
	}
}

// HeadlineLabel returns the caption shown next to the headline total.
func HeadlineLabel(period entity.Period, todayShiftCount int) string {
	switch period {
	case entity.PeriodWeek:
		return "Чистыми за текущую неделю"
	case entity.PeriodMonth:
		return "Чистыми за текущий месяц"
	default:
		return fmt.Sprintf("Сегодня • %d смен", todayShiftCount)
	}
}

// GetPeriodKeyForDate returns a unique key for the period containing the given date.
func GetPeriodKeyForDate(date time.Time, period entity.Period) string {
	return calendar.Anchor(period, date).Format(calendar.DayLayout)
}

// ParseDay parses a YYYY-MM-DD query value as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(calendar.DayLayout, strings.TrimSpace(value), loc)
}
