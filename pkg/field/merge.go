package field

import (
	"sort"
	"strings"
)

func (e *Engine[D]) transferSectionValue(section Section, from, to D) D {
	a := e.Adapter
	switch section.Type {
	case TypeYear:
		return a.SetYear(to, a.GetYear(from))
	case TypeMonth:
		return a.SetMonth(to, a.GetMonth(from))
	case TypeWeekDay:
		days := e.DaysInWeek(section.Format)
		fromIndex := indexOf(days, a.FormatByString(from, section.Format))
		toIndex := indexOf(days, section.Value)
		return a.AddDays(from, toIndex-fromIndex)
	case TypeDay:
		return a.SetDate(to, a.GetDate(from))
	case TypeMeridiem:
		isAM := a.GetHours(from) < 12
		hours := a.GetHours(to)
		switch {
		case isAM && hours >= 12:
			return a.AddHours(to, -12)
		case !isAM && hours < 12:
			return a.AddHours(to, 12)
		}
		return to
	case TypeHours:
		return a.SetHours(to, a.GetHours(from))
	case TypeMinutes:
		return a.SetMinutes(to, a.GetMinutes(from))
	case TypeSeconds:
		return a.SetSeconds(to, a.GetSeconds(from))
	default:
		return to
	}
}

func indexOf(values []string, v string) int {
	for i, s := range values {
		if s == v {
			return i
		}
	}
	return -1
}

// MergeDateIntoReferenceDate copies the field of each section from source
// onto reference. Fields are applied year first and meridiem last so each
// one is interpreted against the fields it depends on. When onlyEdited is
// set, sections that were not modified keep the reference value.
func (e *Engine[D]) MergeDateIntoReferenceDate(source D, sections []Section, reference D, onlyEdited bool) D {
	ordered := make([]Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return modificationOrder[ordered[i].Type] < modificationOrder[ordered[j].Type]
	})

	merged := reference
	for _, s := range ordered {
		if !onlyEdited || s.Modified {
			merged = e.transferSectionValue(s, source, merged)
		}
	}
	return merged
}

// DateFromSections parses the section values into a date. Separators are
// dropped and values joined with single spaces, which every adapter can
// parse. Week days are skipped when a day is present because combined
// week day and day formats are not reliably parseable.
func (e *Engine[D]) DateFromSections(sections []Section) (D, bool) {
	skipWeekDays := false
	for _, s := range sections {
		if s.Type == TypeDay {
			skipWeekDays = true
			break
		}
	}

	var formats, values []string
	for _, s := range sections {
		if s.Type == TypeEmpty || skipWeekDays && s.Type == TypeWeekDay {
			continue
		}
		formats = append(formats, s.Format)
		values = append(values, VisibleValue(s, TargetNonInput))
	}
	return e.Adapter.Parse(strings.Join(values, " "), strings.Join(formats, " "))
}
