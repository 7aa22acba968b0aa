// Package locale provides the placeholder text shown in empty sections.
package locale

import (
	"strings"

	"tableflip.dev/datefield/pkg/field"
)

// English renders placeholders the way an English keyboard user expects
// them: letters standing for each digit, or the section name.
type English struct {
	// Overrides replaces the placeholder of a section type.
	Overrides map[field.SectionType]string
}

var _ field.LocaleText = (*English)(nil)

// NewEnglish returns English placeholders with overrides keyed by section
// type name. Unknown keys are ignored.
func NewEnglish(overrides map[string]string) *English {
	e := &English{Overrides: map[field.SectionType]string{}}
	for k, v := range overrides {
		t := field.SectionType(k)
		if _, ok := placeholderTypes[t]; ok {
			e.Overrides[t] = v
		}
	}
	return e
}

var placeholderTypes = map[field.SectionType]struct{}{
	field.TypeYear: {}, field.TypeMonth: {}, field.TypeDay: {}, field.TypeWeekDay: {},
	field.TypeHours: {}, field.TypeMinutes: {}, field.TypeSeconds: {}, field.TypeMeridiem: {},
}

func (e *English) override(t field.SectionType, fallback string) string {
	if v, ok := e.Overrides[t]; ok {
		return v
	}
	return fallback
}

func (e *English) YearPlaceholder(p field.PlaceholderParams) string {
	return e.override(field.TypeYear, strings.Repeat("Y", p.DigitAmount))
}

func (e *English) MonthPlaceholder(p field.PlaceholderParams) string {
	if p.ContentType == field.ContentLetter {
		return e.override(field.TypeMonth, "MMMM")
	}
	return e.override(field.TypeMonth, "MM")
}

func (e *English) DayPlaceholder(field.PlaceholderParams) string {
	return e.override(field.TypeDay, "DD")
}

func (e *English) WeekDayPlaceholder(p field.PlaceholderParams) string {
	if p.ContentType == field.ContentLetter {
		return e.override(field.TypeWeekDay, "EEEE")
	}
	return e.override(field.TypeWeekDay, "EE")
}

func (e *English) HoursPlaceholder(field.PlaceholderParams) string {
	return e.override(field.TypeHours, "hh")
}

func (e *English) MinutesPlaceholder(field.PlaceholderParams) string {
	return e.override(field.TypeMinutes, "mm")
}

func (e *English) SecondsPlaceholder(field.PlaceholderParams) string {
	return e.override(field.TypeSeconds, "ss")
}

func (e *English) MeridiemPlaceholder(field.PlaceholderParams) string {
	return e.override(field.TypeMeridiem, "aa")
}
