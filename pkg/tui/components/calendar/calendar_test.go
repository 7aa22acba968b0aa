package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestHeader(t *testing.T) {
	if got := Header(time.Sunday); got != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("unexpected header %q", got)
	}
	if got := Header(time.Monday); got != "Mo Tu We Th Fr Sa Su" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestRenderWeekStart(t *testing.T) {
	feb := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	out := Render(feb, nil, Options{ShowTitle: true, ShowHeader: true, WeekStart: time.Monday})
	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "February 2024") {
		t.Fatalf("expected the title, got %q", lines[0])
	}
	if lines[1] != "Mo Tu We Th Fr Sa Su" {
		t.Fatalf("unexpected header %q", lines[1])
	}
	// 2024-02-01 is a Thursday.
	if lines[2] != "          1  2  3  4" {
		t.Fatalf("unexpected first week %q", lines[2])
	}
	if !strings.HasPrefix(lines[6], "26 27 28 29") {
		t.Fatalf("unexpected last week %q", lines[6])
	}

	out = Render(feb, nil, Options{WeekStart: time.Sunday})
	if first := strings.Split(out, "\n")[0]; first != "             1  2  3" {
		t.Fatalf("unexpected first week %q", first)
	}
}

func TestRenderZeroMonth(t *testing.T) {
	if got := Render(time.Time{}, nil, DefaultOptions()); got != "" {
		t.Fatalf("expected nothing, got %q", got)
	}
}

func TestDaysIn(t *testing.T) {
	for _, tc := range []struct {
		month time.Time
		want  int
	}{
		{time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 30},
	} {
		if got := DaysIn(tc.month); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.month.Month(), tc.want, got)
		}
	}
}
