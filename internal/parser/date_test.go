package parser

import (
	"testing"
	"time"
)

func TestParseISODate(t *testing.T) {
	parsed, err := ParseISODate(" 2025-03-15 ")
	if err != nil {
		t.Fatalf("ParseISODate failed: %v", err)
	}
	if FormatISODate(parsed) != "2025-03-15" {
		t.Errorf("Round trip lost the date: %q", FormatISODate(parsed))
	}

	for _, bad := range []string{"", "15.03.2025", "2025-3-15", "2025-13-01", "tomorrow"} {
		if _, err := ParseISODate(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	// Time of day on the reference must not matter.
	ref := time.Date(2025, 3, 15, 23, 45, 0, 0, time.UTC)

	cases := []struct {
		date string
		want int
	}{
		{"2025-03-15", 0},
		{"2025-03-16", 1},
		{"2025-03-22", 7},
		{"2025-03-14", -1},
		{"2025-02-15", -28},
		{"2025-04-14", 30},
		{"not a date", 0},
	}

	for _, tc := range cases {
		if got := DaysUntil(tc.date, ref); got != tc.want {
			t.Errorf("DaysUntil(%q) = %d, want %d", tc.date, got, tc.want)
		}
	}
}
