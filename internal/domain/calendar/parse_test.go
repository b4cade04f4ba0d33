package calendar

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name     string
		value    string
		expected time.Time
		wantErr  bool
	}{
		{"milliseconds", "2026-10-14T06:00:00.000Z", time.Date(2026, time.October, 14, 9, 0, 0, 0, moscow), false},
		{"seconds", "2026-10-14T06:00:00Z", time.Date(2026, time.October, 14, 9, 0, 0, 0, moscow), false},
		{"offset", "2026-10-14T09:00:00+03:00", time.Date(2026, time.October, 14, 9, 0, 0, 0, moscow), false},
		{"no offset", "2026-10-18T10:00:00", time.Date(2026, time.October, 18, 10, 0, 0, 0, moscow), false},
		{"no offset with milliseconds", "2026-10-18T10:00:00.250", time.Date(2026, time.October, 18, 10, 0, 0, 250000000, moscow), false},
		{"plain day", " 2026-10-14 ", time.Date(2026, time.October, 14, 0, 0, 0, 0, moscow), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "yesterday", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value, moscow)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if !tt.wantErr && got.Location() != moscow {
				t.Errorf("expected location %v, got %v", moscow, got.Location())
			}
		})
	}
}
