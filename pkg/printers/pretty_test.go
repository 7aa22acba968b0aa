package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datefield/pkg/field"
	"tableflip.dev/datefield/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestSectionsTable(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Active: 1}
	sections := []field.Section{
		{Type: field.TypeMonth, ContentType: field.ContentDigit, Format: "MM", Value: "01", Placeholder: "MM", EndSeparator: "/", Start: 0, End: 3},
		{Type: field.TypeDay, ContentType: field.ContentDigit, Format: "DD", Placeholder: "DD", Start: 3, End: 5},
	}
	ordering := field.SectionOrdering{
		Neighbors:  map[int]field.Neighbors{0: {Left: -1, Right: 1}, 1: {Left: 0, Right: -1}},
		StartIndex: 0,
		EndIndex:   1,
	}
	pp.Sections(sections, ordering)

	out := buf.String()
	for _, want := range []string{"month", "day", `"/"`, "0..3", ">1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got\n%s", want, out)
		}
	}
}

func TestSectionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Active: -1}
	pp.Sections(nil, field.SectionOrdering{})
	if !strings.Contains(buf.String(), "no sections") {
		t.Fatalf("expected the empty marker, got %q", buf.String())
	}
}

func TestVisibleEscapesBidi(t *testing.T) {
	if got := Visible("\u2066/\u2069"); got != `"\u2066/\u2069"` {
		t.Fatalf("expected escaped isolates, got %s", got)
	}
	if got := Visible(""); got != `""` {
		t.Fatalf("expected empty quotes, got %s", got)
	}
}

func TestPresetOptions(t *testing.T) {
	p := &store.Preset{Name: "x", Format: "L", RTL: true, Density: "spacious", MinutesStep: 15}
	if got := presetOptions(p); got != "rtl,spacious,step=15" {
		t.Fatalf("expected rtl,spacious,step=15, got %q", got)
	}
}

func TestMonthHighlightsDay(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Month(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), time.Monday)
	out := buf.String()
	if !strings.Contains(out, "February 2024") {
		t.Fatalf("expected the month title, got\n%s", out)
	}
	if !strings.Contains(out, "Mo Tu We Th Fr Sa Su") {
		t.Fatalf("expected a monday first header, got\n%s", out)
	}
	if !strings.Contains(out, "29") {
		t.Fatalf("expected the leap day, got\n%s", out)
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
	if got := DaysIn(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
}
