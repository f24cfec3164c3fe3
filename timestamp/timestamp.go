// Package timestamp renders the gap between two instants as a short
// relative phrase such as "4 weeks ago" or "just now".
//
// Only the largest non-zero calendar unit is reported. Gaps of a year or
// more read "over a year ago" and gaps under a minute read "just now";
// neither of those phrases goes through the output format.
package timestamp

import (
	"strconv"
	"strings"
	"time"

	"github.com/spiffcs/prettydate/internal/calendar"
	"github.com/spiffcs/prettydate/internal/locale"
)

// Format tokens.
const (
	TokenInterval = "%i"
	TokenUnit     = "%u"
	TokenConstant = "%c"
)

// DefaultFormat is used when no format, or an empty one, is given.
const DefaultFormat = TokenInterval + " " + TokenUnit + " " + TokenConstant

// Localizer translates the words of a relative timestamp. Keys are the
// English words; implementations return the key when no translation exists.
type Localizer = locale.Localizer

// Difference is the calendar decomposition of a gap. Each unit holds what
// remains after all larger units are taken out.
type Difference = calendar.Difference

// Formatter renders relative timestamps. The zero value is not usable;
// construct one with New. A Formatter is safe for concurrent use.
type Formatter struct {
	localizer Localizer
	calendar  calendar.Calendar
	format    string
	now       func() time.Time
}

// Option configures a Formatter.
type Option func(*Formatter)

// New creates a Formatter with English words, the local time zone and
// DefaultFormat, then applies opts.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		localizer: locale.English{},
		calendar:  calendar.New(time.Local),
		format:    DefaultFormat,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithLocalizer sets the word lookup. A nil localizer keeps English.
func WithLocalizer(l Localizer) Option {
	return func(f *Formatter) {
		if l != nil {
			f.localizer = l
		}
	}
}

// WithLocation sets the time zone calendar units are counted in.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		f.calendar = calendar.New(loc)
	}
}

// WithFormat sets the format used by Between and Since. An empty format
// keeps DefaultFormat.
func WithFormat(format string) Option {
	return func(f *Formatter) {
		if format != "" {
			f.format = format
		}
	}
}

// WithClock sets the source of the current time used by Since.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// Since describes the gap between t and the current time.
func (f *Formatter) Since(t time.Time) string {
	return f.BetweenFormat(t, f.now(), f.format)
}

// Between describes the gap between a and b using the formatter's format.
func (f *Formatter) Between(a, b time.Time) string {
	return f.BetweenFormat(a, b, f.format)
}

// BetweenFormat describes the gap between a and b using format. The order
// of a and b does not matter. An empty format means DefaultFormat.
func (f *Formatter) BetweenFormat(a, b time.Time, format string) string {
	return f.Describe(f.Difference(a, b), format)
}

// Difference returns the calendar difference between a and b.
func (f *Formatter) Difference(a, b time.Time) Difference {
	return f.calendar.Between(a, b)
}

// Describe renders an already computed difference.
func (f *Formatter) Describe(d Difference, format string) string {
	if format == "" {
		format = DefaultFormat
	}

	switch {
	case d.Years >= 1:
		return f.localizer.Localize(locale.OverAYearAgo)
	case d.Months >= 1:
		return f.render(d.Months, locale.Month, locale.Months, format)
	case d.Weeks >= 1:
		return f.render(d.Weeks, locale.Week, locale.Weeks, format)
	case d.Days >= 1:
		return f.render(d.Days, locale.Day, locale.Days, format)
	case d.Hours >= 1:
		return f.render(d.Hours, locale.Hour, locale.Hours, format)
	case d.Minutes >= 1:
		return f.render(d.Minutes, locale.Minute, locale.Minutes, format)
	}
	return f.localizer.Localize(locale.JustNow)
}

func (f *Formatter) render(n int, singular, plural, format string) string {
	unit := plural
	if n == 1 {
		unit = singular
	}

	out := strings.ReplaceAll(format, TokenInterval, f.localizer.Localize(strconv.Itoa(n)))
	out = strings.ReplaceAll(out, TokenUnit, f.localizer.Localize(unit))
	out = strings.ReplaceAll(out, TokenConstant, f.localizer.Localize(locale.Ago))
	return out
}

var std = New()

// Since describes the gap between t and now in English.
func Since(t time.Time) string {
	return std.Since(t)
}

// Between describes the gap between a and b in English using DefaultFormat.
func Between(a, b time.Time) string {
	return std.Between(a, b)
}

// BetweenFormat describes the gap between a and b in English using format.
func BetweenFormat(a, b time.Time, format string) string {
	return std.BetweenFormat(a, b, format)
}
