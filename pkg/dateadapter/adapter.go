// Package dateadapter implements field.Adapter over time.Time using a
// dayjs style token dialect and English locales.
package dateadapter

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"

	"tableflip.dev/datefield/pkg/field"
)

// Adapter is a field.Adapter[time.Time]. It is safe for concurrent use.
type Adapter struct {
	locale *Locale
	clock  func() time.Time
	// location parsed dates are created in.
	location *time.Location
}

var _ field.Adapter[time.Time] = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithLocale sets the locale, en-US by default.
func WithLocale(l *Locale) Option {
	return func(a *Adapter) {
		if l != nil {
			a.locale = l
		}
	}
}

// WithClock replaces time.Now as the source of "now".
func WithClock(clock func() time.Time) Option {
	return func(a *Adapter) {
		a.clock = clock
	}
}

// WithLocation sets the location of parsed dates, time.Local by default.
func WithLocation(loc *time.Location) Option {
	return func(a *Adapter) {
		if loc != nil {
			a.location = loc
		}
	}
}

// New returns an Adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{
		locale:   EnUS,
		clock:    time.Now,
		location: time.Local,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Locale returns the adapter locale.
func (a *Adapter) Locale() *Locale {
	return a.locale
}

// LoadLocation resolves a timezone name. The empty string, "default" and
// "system" are the local zone. Unknown names resolve to UTC along with the
// lookup error.
func LoadLocation(tz field.Timezone) (*time.Location, error) {
	switch tz {
	case "", "default", "system":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(string(tz))
	if err != nil {
		return time.UTC, fmt.Errorf("dateadapter: timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Date returns "now" in tz.
func (a *Adapter) Date(tz field.Timezone) time.Time {
	loc, _ := LoadLocation(tz)
	return a.clock().In(loc)
}

// IsValid reports whether t falls in the years a field can show. A missing
// date is a nil pointer, so the zero time is a valid date.
func (a *Adapter) IsValid(t time.Time) bool {
	return t.Year() >= 0 && t.Year() <= 9999
}

func (a *Adapter) GetYear(t time.Time) int    { return t.Year() }
func (a *Adapter) GetMonth(t time.Time) int   { return int(t.Month()) - 1 }
func (a *Adapter) GetDate(t time.Time) int    { return t.Day() }
func (a *Adapter) GetHours(t time.Time) int   { return t.Hour() }
func (a *Adapter) GetMinutes(t time.Time) int { return t.Minute() }
func (a *Adapter) GetSeconds(t time.Time) int { return t.Second() }

func daysIn(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// build creates a date with the day clamped to the month length. month is
// zero based and may overflow into neighbouring years.
func build(t time.Time, year, month, day int) time.Time {
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	m := time.Month(month + 1)
	day = max(1, min(day, daysIn(year, m)))
	return time.Date(year, m, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func (a *Adapter) SetYear(t time.Time, year int) time.Time {
	return build(t, year, int(t.Month())-1, t.Day())
}

func (a *Adapter) SetMonth(t time.Time, month int) time.Time {
	return build(t, t.Year(), month, t.Day())
}

func (a *Adapter) SetDate(t time.Time, day int) time.Time {
	return build(t, t.Year(), int(t.Month())-1, day)
}

func (a *Adapter) SetHours(t time.Time, hours int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hours, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func (a *Adapter) SetMinutes(t time.Time, minutes int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minutes, t.Second(), t.Nanosecond(), t.Location())
}

func (a *Adapter) SetSeconds(t time.Time, seconds int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), seconds, t.Nanosecond(), t.Location())
}

func (a *Adapter) AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func (a *Adapter) AddHours(t time.Time, hours int) time.Time {
	return t.Add(time.Duration(hours) * time.Hour)
}

const lastMillisecond = int(time.Second - time.Millisecond)

func (a *Adapter) StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (a *Adapter) EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, lastMillisecond, t.Location())
}

func (a *Adapter) StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) - int(a.locale.WeekStart) + 7) % 7
	return a.StartOfDay(t).AddDate(0, 0, -offset)
}

func (a *Adapter) EndOfWeek(t time.Time) time.Time {
	return a.EndOfDay(a.StartOfWeek(t).AddDate(0, 0, 6))
}

func (a *Adapter) StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (a *Adapter) StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func (a *Adapter) EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 23, 59, 59, lastMillisecond, t.Location())
}

func (a *Adapter) GetDaysInMonth(t time.Time) int {
	return daysIn(t.Year(), t.Month())
}

func (a *Adapter) IsBefore(x, y time.Time) bool {
	return x.Before(y)
}
