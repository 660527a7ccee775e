package parser

import (
	"fmt"
	"strings"
	"time"
)

// ISODateLayout is the storage format for all item dates.
const ISODateLayout = "2006-01-02"

// ParseISODate parses a yyyy-mm-dd date string.
func ParseISODate(input string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use yyyy-mm-dd", input)
	}
	return t, nil
}

// FormatISODate renders t as a yyyy-mm-dd string.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// DaysUntil returns the whole calendar days from ref to the given ISO date.
// Negative means the date has passed; an unparsable date counts as day zero.
func DaysUntil(isoDate string, ref time.Time) int {
	t, err := ParseISODate(isoDate)
	if err != nil {
		return 0
	}
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(refDay).Hours() / 24)
}
