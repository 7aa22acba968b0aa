package field

import (
	"strconv"
	"strings"
)

// StepAttributes scale keyboard adjustments.
type StepAttributes struct {
	// MinutesStep applies to minutes sections only. Zero means 1.
	MinutesStep int
}

func deltaFromKeyCode(key KeyCode) int {
	switch key {
	case KeyArrowUp:
		return 1
	case KeyArrowDown:
		return -1
	case KeyPageUp:
		return 5
	case KeyPageDown:
		return -5
	default:
		return 0
	}
}

// DaysInWeek formats every day of the current locale week with format.
func (e *Engine[D]) DaysInWeek(format string) []string {
	a := e.Adapter
	now := e.now()
	end := a.EndOfWeek(now)

	var days []string
	for current := a.StartOfWeek(now); a.IsBefore(current, end); current = a.AddDays(current, 1) {
		days = append(days, a.FormatByString(current, format))
	}
	return days
}

// LetterEditingOptions returns the ordered values a letter section cycles
// through.
func (e *Engine[D]) LetterEditingOptions(t SectionType, format string) []string {
	a := e.Adapter
	switch t {
	case TypeMonth:
		months := e.MonthsInYear(e.now())
		out := make([]string, 0, len(months))
		for _, m := range months {
			out = append(out, a.FormatByString(m, format))
		}
		return out
	case TypeWeekDay:
		return e.DaysInWeek(format)
	case TypeMeridiem:
		now := e.now()
		return []string{
			a.FormatByString(a.StartOfDay(now), format),
			a.FormatByString(a.EndOfDay(now), format),
		}
	default:
		return nil
	}
}

// Adjust returns the new value of section after key is pressed. activeDate
// is the date currently being edited and may be nil.
func (e *Engine[D]) Adjust(section Section, key KeyCode, boundaries *SectionsBoundaries[D], activeDate *D, steps StepAttributes) (string, error) {
	delta := deltaFromKeyCode(key)
	isStart := key == KeyHome
	isEnd := key == KeyEnd
	absolute := section.Value == "" || isStart || isEnd

	if section.IsDigit() {
		return e.adjustDigit(section, delta, isStart, isEnd, absolute, boundaries, activeDate, steps)
	}
	return e.adjustLetter(section, delta, isStart, absolute), nil
}

func (e *Engine[D]) adjustDigit(section Section, delta int, isStart, isEnd, absolute bool, boundaries *SectionsBoundaries[D], activeDate *D, steps StepAttributes) (string, error) {
	bounds, err := boundaries.For(section.Type, BoundaryQuery[D]{
		CurrentDate: activeDate,
		Format:      section.Format,
		ContentType: section.ContentType,
	})
	if err != nil {
		return "", err
	}
	clean := func(v int) (string, error) {
		return e.CleanDigitSectionValue(v, bounds, section)
	}

	step := 1
	if section.Type == TypeMinutes && steps.MinutesStep > 0 {
		step = steps.MinutesStep
	}

	// Only the leading digits count, so "5th" reads as 5. A value without
	// any is replaced by an absolute value below, or wraps from the minimum.
	current := leadingInt(CleanString(section.Value))
	next := current + delta*step

	if absolute {
		if section.Type == TypeYear && !isStart && !isEnd {
			return e.Adapter.FormatByString(e.now(), section.Format), nil
		}
		if delta > 0 || isStart {
			next = bounds.Minimum
		} else {
			next = bounds.Maximum
		}
	}

	// Decreasing rounds up to the next multiple, increasing rounds down.
	// The asymmetry matches how values snap while holding a key.
	if next%step != 0 {
		if delta < 0 || isStart {
			next += step - ((step + next) % step)
		}
		if delta > 0 || isEnd {
			next -= next % step
		}
	}

	width := bounds.Maximum - bounds.Minimum + 1
	switch {
	case next > bounds.Maximum:
		return clean(bounds.Minimum + (next-bounds.Maximum-1)%width)
	case next < bounds.Minimum:
		return clean(bounds.Maximum - (bounds.Minimum-next-1)%width)
	default:
		return clean(next)
	}
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && s[end] == '-') {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}

func (e *Engine[D]) adjustLetter(section Section, delta int, isStart, absolute bool) string {
	options := e.LetterEditingOptions(section.Type, section.Format)
	if len(options) == 0 {
		return section.Value
	}
	if absolute {
		if delta > 0 || isStart {
			return options[0]
		}
		return options[len(options)-1]
	}

	index := -1
	for i, o := range options {
		if o == section.Value {
			index = i
			break
		}
	}
	n := len(options)
	// delta may exceed n for PageUp/PageDown on short option lists.
	next := ((index+delta)%n + n) % n
	return options[next]
}
