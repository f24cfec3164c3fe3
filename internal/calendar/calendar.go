// Package calendar computes calendar-aware differences between instants.
package calendar

import "time"

// Difference is the calendar decomposition of the gap between two instants.
// Each unit holds what remains after all larger units have been taken out,
// so a 45 day gap starting on the 1st of January is 1 month, 2 weeks, 0 days.
type Difference struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Weeks   int `json:"weeks"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Calendar performs date arithmetic in a fixed location.
type Calendar struct {
	loc *time.Location
}

// New returns a Calendar for loc. A nil loc means time.Local.
func New(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{loc: loc}
}

// Location returns the location calendar fields are evaluated in.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// Between returns the difference from a to b. Arguments are ordered
// internally, so Between(a, b) == Between(b, a).
func (c Calendar) Between(a, b time.Time) Difference {
	loc := c.Location()
	from, to := a.In(loc), b.In(loc)
	if to.Before(from) {
		from, to = to, from
	}

	var d Difference

	months := wholeMonths(from, to)
	d.Years = months / 12
	d.Months = months % 12
	cursor := addMonths(from, months)

	days := wholeDays(cursor, to)
	d.Weeks = days / 7
	d.Days = days % 7
	cursor = cursor.AddDate(0, 0, days)

	rem := to.Sub(cursor)
	d.Hours = int(rem / time.Hour)
	d.Minutes = int(rem % time.Hour / time.Minute)

	return d
}

// wholeMonths returns the largest n with addMonths(from, n) <= to.
func wholeMonths(from, to time.Time) int {
	n := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	for n > 0 && addMonths(from, n).After(to) {
		n--
	}
	return n
}

// wholeDays returns the largest n with from.AddDate(0, 0, n) <= to.
func wholeDays(from, to time.Time) int {
	n := int(to.Sub(from) / (24 * time.Hour))
	for !from.AddDate(0, 0, n+1).After(to) {
		n++
	}
	for n > 0 && from.AddDate(0, 0, n).After(to) {
		n--
	}
	return n
}

// addMonths adds n months to t, clamping the day to the end of the target
// month instead of overflowing into the next one.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month()); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(target.Year(), target.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
