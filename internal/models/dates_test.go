package models

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*3600)

	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-10T16:30:00Z", "2025-01-11 00:30"},
		{"2025-01-10T16:30:00.123456Z", "2025-01-11 00:30"},
		{"2025-01-10T16:30:00+02:00", "2025-01-10 22:30"},
		{"2025-01-10 16:30:00+00:00", "2025-01-11 00:30"},
		{"2025-01-10T16:30:00", "2025-01-10 16:30"},
		{"2025-01-10", "2025-01-10 00:00"},
	}
	for _, tt := range tests {
		got, ok := ParseTimestamp(tt.in, taipei)
		if !ok {
			t.Errorf("ParseTimestamp(%q) failed", tt.in)
			continue
		}
		if s := got.Format("2006-01-02 15:04"); s != tt.want {
			t.Errorf("ParseTimestamp(%q) = %s, want %s", tt.in, s, tt.want)
		}
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "yesterday", "2025-13-45"} {
		if _, ok := ParseTimestamp(in, time.UTC); ok {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestCalendarDate_CrossesMidnightInZone(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*3600)
	if got := CalendarDate("2025-06-30T20:00:00Z", taipei); got != "2025-07-01" {
		t.Errorf("CalendarDate() = %s, want 2025-07-01", got)
	}
	if got := CalendarDate("not a date", taipei); got != "" {
		t.Errorf("expected empty string for garbage, got %q", got)
	}
}
