package field

import (
	"fmt"
	"strconv"
)

// Boundaries are the inclusive limits of a section value.
type Boundaries[D any] struct {
	Minimum int
	Maximum int
	// LongestMonth is only set for day sections. Day values with letters
	// are rendered against it so that every day of month exists.
	LongestMonth    D
	HasLongestMonth bool
}

// BoundaryQuery is the context a boundary is computed for.
type BoundaryQuery[D any] struct {
	// CurrentDate is the date being edited, nil when there is none.
	CurrentDate *D
	Format      string
	ContentType ContentType
}

// SectionsBoundaries computes per-section boundaries. The calendar context
// ("today", the longest month of the year) is captured once when built.
type SectionsBoundaries[D any] struct {
	engine         *Engine[D]
	today          D
	endOfYear      D
	endOfDay       D
	longestMonth   D
	maxDaysInMonth int
}

// MonthsInYear returns the first instant of each month of d's year.
func (e *Engine[D]) MonthsInYear(d D) []D {
	a := e.Adapter
	first := a.StartOfYear(d)
	months := []D{first}
	for m := 1; m <= a.GetMonth(a.EndOfYear(d)); m++ {
		months = append(months, a.SetMonth(first, m))
	}
	return months
}

// Boundaries captures the calendar context of "now" in the engine timezone.
func (e *Engine[D]) Boundaries() *SectionsBoundaries[D] {
	a := e.Adapter
	today := e.now()
	b := &SectionsBoundaries[D]{
		engine:    e,
		today:     today,
		endOfYear: a.EndOfYear(today),
		endOfDay:  a.EndOfDay(today),
	}
	for _, month := range e.MonthsInYear(today) {
		if days := a.GetDaysInMonth(month); days > b.maxDaysInMonth {
			b.maxDaysInMonth = days
			b.longestMonth = month
		}
	}
	return b
}

// For returns the boundaries of a section of type t.
func (b *SectionsBoundaries[D]) For(t SectionType, q BoundaryQuery[D]) (Boundaries[D], error) {
	e := b.engine
	a := e.Adapter
	switch t {
	case TypeYear:
		maximum := 99
		if e.isFourDigitYearFormat(q.Format) {
			maximum = 9999
		}
		return Boundaries[D]{Minimum: 0, Maximum: maximum}, nil
	case TypeMonth:
		// Every year is assumed to have the same number of months.
		return Boundaries[D]{Minimum: 1, Maximum: a.GetMonth(b.endOfYear) + 1}, nil
	case TypeDay:
		maximum := b.maxDaysInMonth
		if e.validDate(q.CurrentDate) {
			maximum = a.GetDaysInMonth(*q.CurrentDate)
		}
		return Boundaries[D]{Minimum: 1, Maximum: maximum, LongestMonth: b.longestMonth, HasLongestMonth: true}, nil
	case TypeWeekDay:
		if q.ContentType == ContentDigit {
			return b.weekDayDigits(q.Format)
		}
		return Boundaries[D]{Minimum: 1, Maximum: 7}, nil
	case TypeHours:
		lastHour := a.GetHours(b.endOfDay)
		hasMeridiem := a.FormatByString(a.EndOfDay(b.today), q.Format) != strconv.Itoa(lastHour)
		if hasMeridiem {
			maximum, err := strconv.Atoi(a.FormatByString(a.StartOfDay(b.today), q.Format))
			if err != nil {
				return Boundaries[D]{}, fmt.Errorf("field: hours format %q: %w", q.Format, err)
			}
			return Boundaries[D]{Minimum: 1, Maximum: maximum}, nil
		}
		return Boundaries[D]{Minimum: 0, Maximum: lastHour}, nil
	case TypeMinutes:
		return Boundaries[D]{Minimum: 0, Maximum: a.GetMinutes(b.endOfDay)}, nil
	case TypeSeconds:
		return Boundaries[D]{Minimum: 0, Maximum: a.GetSeconds(b.endOfDay)}, nil
	case TypeMeridiem, TypeEmpty:
		return Boundaries[D]{}, nil
	default:
		return Boundaries[D]{}, fmt.Errorf("%w: %q", ErrInvalidSectionType, t)
	}
}

// weekDayDigits takes the limits actually produced by formatting each day
// of one week, since week day numbering depends on the locale.
func (b *SectionsBoundaries[D]) weekDayDigits(format string) (Boundaries[D], error) {
	days := b.engine.DaysInWeek(format)
	if len(days) == 0 {
		return Boundaries[D]{}, fmt.Errorf("%w: no week days formatted with %q", ErrInvalidSectionType, format)
	}
	out := Boundaries[D]{}
	for i, s := range days {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Boundaries[D]{}, fmt.Errorf("field: week day format %q: %w", format, err)
		}
		if i == 0 || n < out.Minimum {
			out.Minimum = n
		}
		if i == 0 || n > out.Maximum {
			out.Maximum = n
		}
	}
	return out, nil
}
