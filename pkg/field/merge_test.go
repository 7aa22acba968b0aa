package field_test

import (
	"testing"
	"time"

	"tableflip.dev/datefield/pkg/field"
)

func TestMergeAppliesMonthBeforeDay(t *testing.T) {
	e := newEngine()
	source := date(2023, time.January, 31, 0, 0)
	reference := date(2023, time.February, 1, 8, 30)
	// Day comes first in the format but must be applied after the month, or
	// the 31st would be clamped into February.
	sections := split(e, "DD MM", &source, field.SplitOptions{})
	got := e.MergeDateIntoReferenceDate(source, sections, reference, false)
	want := date(2023, time.January, 31, 8, 30)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMergeDayBeforeMeridiem(t *testing.T) {
	e := newEngine()
	source := date(2023, time.January, 10, 1, 0)
	reference := date(2023, time.January, 5, 23, 15)
	sections := split(e, "A DD", &source, field.SplitOptions{})
	got := e.MergeDateIntoReferenceDate(source, sections, reference, false)
	want := date(2023, time.January, 10, 11, 15)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMergeOnlyEdited(t *testing.T) {
	e := newEngine()
	source := date(2024, time.March, 2, 21, 30)
	reference := date(2023, time.January, 5, 9, 30)
	sections := split(e, "YYYY hh:mm A", &source, field.SplitOptions{})
	sections[3].Modified = true

	got := e.MergeDateIntoReferenceDate(source, sections, reference, true)
	want := date(2023, time.January, 5, 21, 30)
	if !got.Equal(want) {
		t.Fatalf("expected only the meridiem to change, got %v", got)
	}

	source = date(2024, time.March, 2, 9, 30)
	reference = date(2023, time.January, 5, 21, 30)
	if got := e.MergeDateIntoReferenceDate(source, sections, reference, true); got.Hour() != 9 {
		t.Fatalf("expected the morning, got %v", got)
	}
}

func TestMergeWeekDay(t *testing.T) {
	e := newEngine()
	source := date(2023, time.January, 5, 10, 0)
	sections := []field.Section{{Type: field.TypeWeekDay, ContentType: field.ContentLetter, Format: "ddd", Value: "Mon"}}
	got := e.MergeDateIntoReferenceDate(source, sections, date(2020, time.June, 1, 0, 0), false)
	want := date(2023, time.January, 2, 10, 0)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMergeDoesNotReorderInput(t *testing.T) {
	e := newEngine()
	source := date(2023, time.January, 31, 0, 0)
	sections := split(e, "DD MM YYYY", &source, field.SplitOptions{})
	e.MergeDateIntoReferenceDate(source, sections, now, false)
	if sections[0].Type != field.TypeDay {
		t.Fatalf("expected the caller's slice untouched, got %+v", sections)
	}
}

func TestDateFromSections(t *testing.T) {
	e := newEngine()
	d := date(2023, time.January, 5, 0, 0)
	sections := split(e, "dddd, MMMM D, YYYY", &d, field.SplitOptions{})
	sections[0].Value = "Monday"

	got, ok := e.DateFromSections(sections)
	if !ok {
		t.Fatalf("expected the sections to parse")
	}
	if !got.Equal(d) {
		t.Fatalf("expected the week day to be ignored, got %v", got)
	}
}

func TestDateFromSectionsTime(t *testing.T) {
	e := newEngine()
	d := date(2023, time.January, 5, 17, 45)
	got, ok := e.DateFromSections(split(e, "hh:mm A", &d, field.SplitOptions{}))
	if !ok || got.Hour() != 17 || got.Minute() != 45 {
		t.Fatalf("expected 17:45, got %v (%v)", got, ok)
	}
}

func TestDateFromSectionsIncomplete(t *testing.T) {
	e := newEngine()
	if _, ok := e.DateFromSections(split(e, "MM/DD/YYYY", nil, field.SplitOptions{})); ok {
		t.Fatalf("expected placeholders not to parse")
	}
}
