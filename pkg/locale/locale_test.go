package locale

import (
	"testing"

	"tableflip.dev/datefield/pkg/field"
)

func TestEnglishDefaults(t *testing.T) {
	e := NewEnglish(nil)
	if got := e.YearPlaceholder(field.PlaceholderParams{DigitAmount: 4}); got != "YYYY" {
		t.Fatalf("expected YYYY, got %q", got)
	}
	if got := e.YearPlaceholder(field.PlaceholderParams{DigitAmount: 2}); got != "YY" {
		t.Fatalf("expected YY, got %q", got)
	}
	if got := e.MonthPlaceholder(field.PlaceholderParams{ContentType: field.ContentLetter}); got != "MMMM" {
		t.Fatalf("expected MMMM, got %q", got)
	}
	if got := e.MonthPlaceholder(field.PlaceholderParams{ContentType: field.ContentDigit}); got != "MM" {
		t.Fatalf("expected MM, got %q", got)
	}
	if got := e.WeekDayPlaceholder(field.PlaceholderParams{ContentType: field.ContentDigit}); got != "EE" {
		t.Fatalf("expected EE, got %q", got)
	}
	if got := e.MeridiemPlaceholder(field.PlaceholderParams{}); got != "aa" {
		t.Fatalf("expected aa, got %q", got)
	}
}

func TestEnglishOverrides(t *testing.T) {
	e := NewEnglish(map[string]string{"day": "jj", "bogus": "x"})
	if got := e.DayPlaceholder(field.PlaceholderParams{}); got != "jj" {
		t.Fatalf("expected override, got %q", got)
	}
	if len(e.Overrides) != 1 {
		t.Fatalf("expected unknown keys to be ignored, got %v", e.Overrides)
	}
	if got := e.HoursPlaceholder(field.PlaceholderParams{}); got != "hh" {
		t.Fatalf("expected hh, got %q", got)
	}
}
