package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the layout of a plain calendar day.
const DayLayout = "2006-01-02"

// localTimestampLayout is a timestamp without a zone offset, read as wall time in loc.
const localTimestampLayout = "2006-01-02T15:04:05.999999999"

// ParseDate parses an ISO-8601 timestamp or a plain YYYY-MM-DD day.
// Timestamps keep their instant and are moved into loc; timestamps without an
// offset are wall time in loc; plain days are midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(localTimestampLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DayLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
