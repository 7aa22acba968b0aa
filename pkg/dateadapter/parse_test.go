package dateadapter

import (
	"testing"
	"time"
)

func TestParseFullDate(t *testing.T) {
	a := newTestAdapter()
	got, ok := a.Parse("01 05 2023 05 30 PM", "MM DD YYYY hh mm A")
	if !ok {
		t.Fatalf("expected the value to parse")
	}
	want := time.Date(2023, time.January, 5, 17, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseNames(t *testing.T) {
	a := newTestAdapter()
	got, ok := a.Parse("Thursday, March 2nd 2023", "dddd, MMMM Do YYYY")
	if !ok {
		t.Fatalf("expected the value to parse")
	}
	if got.Month() != time.March || got.Day() != 2 || got.Year() != 2023 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDefaults(t *testing.T) {
	a := newTestAdapter()

	got, ok := a.Parse("2020", "YYYY")
	if !ok || got.Month() != time.January || got.Day() != 1 {
		t.Fatalf("expected Jan 1 2020, got %v", got)
	}

	got, ok = a.Parse("14:30", "HH:mm")
	if !ok || got.Year() != 2023 || got.Month() != time.January || got.Day() != 5 || got.Hour() != 14 {
		t.Fatalf("expected today at 14:30, got %v", got)
	}

	got, ok = a.Parse("03", "MM")
	if !ok || got.Year() != 2023 || got.Day() != 1 {
		t.Fatalf("expected Mar 1 of the current year, got %v", got)
	}
}

func TestParseRejectsInvalidDates(t *testing.T) {
	a := newTestAdapter()
	for _, c := range []struct{ value, format string }{
		{"02 30 2023", "MM DD YYYY"},
		{"13 01 2023", "MM DD YYYY"},
		{"13 PM", "hh A"},
		{"10:61", "HH:mm"},
		{"2023-01", "YYYY/MM"},
		{"2023 01 junk", "YYYY MM"},
	} {
		if _, ok := a.Parse(c.value, c.format); ok {
			t.Fatalf("expected %q with %q to be rejected", c.value, c.format)
		}
	}
}

func TestParseMidnight(t *testing.T) {
	got, ok := newTestAdapter().Parse("12 am", "hh a")
	if !ok || got.Hour() != 0 {
		t.Fatalf("expected hour 0, got %v", got)
	}
}
