// Package duration parses shorthand ages such as "5m", "2w" or "6mo".
package duration

import (
	"fmt"
	"time"
)

// Before parses a shorthand age like "90s", "5m", "3d", "2w", "6mo" or "1y"
// and returns the instant that long before now. Day and larger units are
// applied on the calendar, so "1mo" before March 31 is February 29 or 28.
func Before(s string, now time.Time) (time.Time, error) {
	var n int
	var unit string

	if _, err := fmt.Sscanf(s, "%d%s", &n, &unit); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration format: %s (use e.g., 5m, 3d, 2w, 6mo)", s)
	}
	if n < 0 {
		return time.Time{}, fmt.Errorf("invalid duration: %s (must not be negative)", s)
	}

	switch unit {
	case "s", "sec", "secs":
		return now.Add(-time.Duration(n) * time.Second), nil
	case "m", "min", "mins":
		return now.Add(-time.Duration(n) * time.Minute), nil
	case "h", "hr", "hrs", "hour", "hours":
		return now.Add(-time.Duration(n) * time.Hour), nil
	case "d", "day", "days":
		return now.AddDate(0, 0, -n), nil
	case "w", "wk", "wks", "week", "weeks":
		return now.AddDate(0, 0, -7*n), nil
	case "mo", "month", "months":
		return subMonths(now, n), nil
	case "y", "yr", "yrs", "year", "years":
		return subMonths(now, 12*n), nil
	default:
		return time.Time{}, fmt.Errorf("unknown duration unit: %s", unit)
	}
}

// subMonths steps back n months, clamping to the end of the target month.
func subMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}
