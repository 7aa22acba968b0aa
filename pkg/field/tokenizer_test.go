package field_test

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/datefield/pkg/field"
	"tableflip.dev/datefield/pkg/locale"
)

func TestSplitMonthDayYear(t *testing.T) {
	e := newEngine()
	d := date(2023, time.January, 5, 0, 0)
	sections := split(e, "MM/DD/YYYY", &d, field.SplitOptions{})
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	want := []struct {
		typ                     field.SectionType
		value, placeholder, end string
	}{
		{field.TypeMonth, "01", "MM", "/"},
		{field.TypeDay, "05", "DD", "/"},
		{field.TypeYear, "2023", "YYYY", ""},
	}
	for i, w := range want {
		s := sections[i]
		if s.Type != w.typ || s.Value != w.value || s.Placeholder != w.placeholder || s.EndSeparator != w.end {
			t.Fatalf("section %d: expected %+v, got %+v", i, w, s)
		}
		if !s.HasLeadingZerosInFormat || !s.HasLeadingZerosInInput {
			t.Fatalf("section %d: expected leading zeros, got %+v", i, s)
		}
	}
	if sections[2].MaxLength != 4 {
		t.Fatalf("expected year max length 4, got %d", sections[2].MaxLength)
	}
}

func TestSplitIsLossless(t *testing.T) {
	e := newEngine()
	d := date(2023, time.March, 2, 9, 5)
	formats := []string{
		"YY", "YYYY", "M", "MM", "MMM", "MMMM", "D", "DD", "Do", "d", "E",
		"dd", "ddd", "dddd", "H", "HH", "h", "hh", "m", "mm", "s", "ss", "A", "a",
		"dddd, MMMM Do YYYY h:mm:ss A", "L LTS", "YYYY-MM-DDTHH:mm", "LLLL",
	}
	for _, f := range formats {
		got := field.DisplayString(split(e, f, &d, field.SplitOptions{}))
		if want := e.Adapter.FormatByString(d, f); got != want {
			t.Fatalf("format %q: expected %q, got %q", f, want, got)
		}
	}
}

func TestSplitWithoutDateUsesPlaceholders(t *testing.T) {
	e := newEngine()
	sections := split(e, "MM/DD/YYYY hh:mm a", nil, field.SplitOptions{})
	for _, s := range sections {
		if s.Value != "" {
			t.Fatalf("expected empty values, got %+v", s)
		}
	}
	if got := field.InputString(sections, false); got != "MM/DD/YYYY hh:mm aa" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestSplitRespectLeadingZeros(t *testing.T) {
	e := newEngine()
	d := date(2023, time.March, 2, 9, 5)

	padded := sectionOf(e, "M", &d)
	if padded.Value != "03" || !padded.HasLeadingZerosInInput || padded.MaxLength != 2 {
		t.Fatalf("expected a padded month, got %+v", padded)
	}

	sections := split(e, "M", &d, field.SplitOptions{RespectLeadingZeros: true})
	s := sections[0]
	if s.Value != "3" || s.HasLeadingZerosInInput || s.MaxLength != 0 {
		t.Fatalf("expected the format's own padding, got %+v", s)
	}
}

func TestSplitEscapedText(t *testing.T) {
	e := newEngine()
	d := date(2023, time.January, 5, 0, 0)
	sections := split(e, "[Year] YYYY [of the] [MM]", &d, field.SplitOptions{})
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(sections), sections)
	}
	if sections[0].StartSeparator != "Year " || sections[0].EndSeparator != " of the MM" {
		t.Fatalf("unexpected separators %q %q", sections[0].StartSeparator, sections[0].EndSeparator)
	}
}

func TestSplitAdjacentEscapes(t *testing.T) {
	e := newEngine()
	d := date(2023, time.January, 5, 0, 0)
	// Each bracket group is its own escape, so a run of groups drops every
	// bracket rather than keeping the inner "][".
	sections := split(e, "[a][b] YYYY", &d, field.SplitOptions{})
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(sections), sections)
	}
	if got := sections[0].StartSeparator; got != "ab " {
		t.Fatalf("expected %q, got %q", "ab ", got)
	}
}

func TestSplitLiteralOnlyFormat(t *testing.T) {
	e := newEngine()
	sections := split(e, "[today]", nil, field.SplitOptions{})
	if len(sections) != 1 || sections[0].Type != field.TypeEmpty || sections[0].StartSeparator != "today" {
		t.Fatalf("expected one empty section, got %+v", sections)
	}
	if got := split(e, "", nil, field.SplitOptions{}); len(got) != 0 {
		t.Fatalf("expected no sections for an empty format, got %+v", got)
	}
}

func TestSplitSeparators(t *testing.T) {
	e := newEngine()

	spacious := split(e, "MM/DD/YYYY", nil, field.SplitOptions{Density: field.DensitySpacious})
	if spacious[0].EndSeparator != " / " {
		t.Fatalf("expected a spaced separator, got %q", spacious[0].EndSeparator)
	}

	rtl := split(e, "MM DD", nil, field.SplitOptions{RTL: true})
	if rtl[0].EndSeparator != "\u2069 \u2066" {
		t.Fatalf("expected an isolated separator, got %q", rtl[0].EndSeparator)
	}

	dashes := split(e, "YYYY - MM", nil, field.SplitOptions{Density: field.DensitySpacious})
	if dashes[0].EndSeparator != " - " {
		t.Fatalf("expected the separator unchanged, got %q", dashes[0].EndSeparator)
	}
}

func TestSplitAdjacentTokens(t *testing.T) {
	e := newEngine()
	d := date(2023, time.January, 5, 9, 5)
	sections := split(e, "HHmm", &d, field.SplitOptions{})
	if len(sections) != 2 || sections[0].Value != "09" || sections[1].Value != "05" {
		t.Fatalf("expected hours and minutes, got %+v", sections)
	}
}

func TestExpandFormatOverflow(t *testing.T) {
	a := overrideAdapter{Adapter: newAdapter(), expand: func(f string) string { return f + "x" }}
	e := field.NewEngine[time.Time](a, "UTC", locale.NewEnglish(nil))
	if _, err := e.Split("YYYY", nil, field.SplitOptions{}); !errors.Is(err, field.ErrFormatExpansionOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
}

func TestSectionConfigUnsupportedToken(t *testing.T) {
	if _, err := newEngine().SectionConfig("Q"); !errors.Is(err, field.ErrUnsupportedToken) {
		t.Fatalf("expected unsupported token, got %v", err)
	}
}

func TestSectionConfigDefaults(t *testing.T) {
	e := newEngine()
	cfg, err := e.SectionConfig("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ContentType != field.ContentLetter {
		t.Fatalf("expected meridiem to default to letters, got %q", cfg.ContentType)
	}
	cfg, _ = e.SectionConfig("MM")
	if cfg.ContentType != field.ContentDigit {
		t.Fatalf("expected digits, got %q", cfg.ContentType)
	}
}

func TestSplitMissingMaxDigits(t *testing.T) {
	a := overrideAdapter{
		Adapter: newAdapter(),
		tokens:  map[string]field.TokenConfig{"M": {SectionType: field.TypeMonth}},
	}
	e := field.NewEngine[time.Time](a, "UTC", nil)
	if _, err := e.Split("M", nil, field.SplitOptions{}); !errors.Is(err, field.ErrMissingMaxDigits) {
		t.Fatalf("expected missing max digits, got %v", err)
	}
}

func TestHasLeadingZerosInFormat(t *testing.T) {
	e := newEngine()
	for _, c := range []struct {
		typ    field.SectionType
		format string
		want   bool
	}{
		{field.TypeYear, "YYYY", true},
		{field.TypeYear, "YY", true},
		{field.TypeMonth, "M", false},
		{field.TypeMonth, "MM", true},
		{field.TypeDay, "D", false},
		{field.TypeWeekDay, "d", false},
		{field.TypeHours, "hh", true},
		{field.TypeMinutes, "m", false},
		{field.TypeSeconds, "ss", true},
	} {
		got, err := e.HasLeadingZerosInFormat(field.ContentDigit, c.typ, c.format)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.format, err)
		}
		if got != c.want {
			t.Fatalf("%s: expected %v, got %v", c.format, c.want, got)
		}
	}
	if got, _ := e.HasLeadingZerosInFormat(field.ContentLetter, field.TypeMonth, "MMMM"); got {
		t.Fatalf("expected letters to never have leading zeros")
	}
	if _, err := e.HasLeadingZerosInFormat(field.ContentDigit, field.TypeMeridiem, "A"); !errors.Is(err, field.ErrInvalidSectionType) {
		t.Fatalf("expected invalid section type, got %v", err)
	}
}
