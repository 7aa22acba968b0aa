package excel

import (
	"errors"
	"testing"
)

func TestTranslate(t *testing.T) {
	for numFmt, want := range map[string]string{
		"yyyy-mm-dd":       "YYYY-MM-DD",
		"mm-dd-yy":         "MM-DD-YY",
		"d-mmm-yy":         "D-MMM-YY",
		"dddd d mmmm":      "dddd D MMMM",
		"hh:mm:ss":         "HH:mm:ss",
		"h:mm AM/PM":       "h:mm A",
		"mm:ss":            "mm:ss",
		"yyyy-mm-dd hh:mm": "YYYY-MM-DD HH:mm",
	} {
		got, err := Translate(numFmt)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", numFmt, err)
		}
		if got != want {
			t.Fatalf("%q: expected %q, got %q", numFmt, want, got)
		}
	}
}

func TestTranslateRejectsNumbers(t *testing.T) {
	if _, err := Translate("0.00"); !errors.Is(err, ErrNotDateFormat) {
		t.Fatalf("expected not a date format, got %v", err)
	}
}

func TestTranslateRejectsElapsed(t *testing.T) {
	if _, err := Translate("[h]:mm:ss"); !errors.Is(err, ErrUnsupportedToken) {
		t.Fatalf("expected unsupported token, got %v", err)
	}
}

func TestBuiltIn(t *testing.T) {
	got, err := BuiltIn(14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "MM-DD-YY" {
		t.Fatalf("expected MM-DD-YY, got %q", got)
	}
	if _, err := BuiltIn(2); !errors.Is(err, ErrNotDateFormat) {
		t.Fatalf("expected not a date format, got %v", err)
	}
}

func TestLiteral(t *testing.T) {
	if got := literal("at"); got != "[at]" {
		t.Fatalf("expected escaped text, got %q", got)
	}
	if got := literal(" - "); got != " - " {
		t.Fatalf("expected separators verbatim, got %q", got)
	}
}
