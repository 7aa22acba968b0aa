package dateadapter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/datefield/pkg/field"
)

var tokenMap = map[string]field.TokenConfig{
	"YY":   {SectionType: field.TypeYear},
	"YYYY": {SectionType: field.TypeYear, ContentType: field.ContentDigit, MaxLength: 4},
	"M":    {SectionType: field.TypeMonth, ContentType: field.ContentDigit, MaxLength: 2},
	"MM":   {SectionType: field.TypeMonth},
	"MMM":  {SectionType: field.TypeMonth, ContentType: field.ContentLetter},
	"MMMM": {SectionType: field.TypeMonth, ContentType: field.ContentLetter},
	"D":    {SectionType: field.TypeDay, ContentType: field.ContentDigit, MaxLength: 2},
	"DD":   {SectionType: field.TypeDay},
	"Do":   {SectionType: field.TypeDay, ContentType: field.ContentDigitWithLetter, MaxLength: 2},
	"d":    {SectionType: field.TypeWeekDay, ContentType: field.ContentDigit, MaxLength: 1},
	"E":    {SectionType: field.TypeWeekDay, ContentType: field.ContentDigit, MaxLength: 1},
	"dd":   {SectionType: field.TypeWeekDay, ContentType: field.ContentLetter},
	"ddd":  {SectionType: field.TypeWeekDay, ContentType: field.ContentLetter},
	"dddd": {SectionType: field.TypeWeekDay, ContentType: field.ContentLetter},
	"A":    {SectionType: field.TypeMeridiem},
	"a":    {SectionType: field.TypeMeridiem},
	"H":    {SectionType: field.TypeHours, ContentType: field.ContentDigit, MaxLength: 2},
	"HH":   {SectionType: field.TypeHours},
	"h":    {SectionType: field.TypeHours, ContentType: field.ContentDigit, MaxLength: 2},
	"hh":   {SectionType: field.TypeHours},
	"m":    {SectionType: field.TypeMinutes, ContentType: field.ContentDigit, MaxLength: 2},
	"mm":   {SectionType: field.TypeMinutes},
	"s":    {SectionType: field.TypeSeconds, ContentType: field.ContentDigit, MaxLength: 2},
	"ss":   {SectionType: field.TypeSeconds},
}

// Tokens lists the supported primitive tokens, longest first.
var tokens = []string{
	"YYYY", "MMMM", "dddd",
	"MMM", "ddd",
	"YY", "MM", "Do", "DD", "dd", "HH", "hh", "mm", "ss",
	"M", "D", "d", "E", "H", "h", "m", "s", "A", "a",
}

type part struct {
	token   string
	literal string
}

// splitFormat cuts a primitive format into tokens and literal runs.
func splitFormat(format string) []part {
	var parts []part
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, part{literal: literal.String()})
			literal.Reset()
		}
	}
	for i := 0; i < len(format); {
		if format[i] == '[' {
			if end := strings.IndexByte(format[i+1:], ']'); end >= 0 {
				literal.WriteString(format[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}
		if tok := tokenAt(format[i:]); tok != "" {
			flush()
			parts = append(parts, part{token: tok})
			i += len(tok)
			continue
		}
		literal.WriteByte(format[i])
		i++
	}
	flush()
	return parts
}

func tokenAt(s string) string {
	for _, t := range tokens {
		if strings.HasPrefix(s, t) {
			return t
		}
	}
	return ""
}

func pad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

func hour12(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}

func formatToken(t time.Time, token string) string {
	switch token {
	case "YY":
		return pad(t.Year()%100, 2)
	case "YYYY":
		return pad(t.Year(), 4)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "MM":
		return pad(int(t.Month()), 2)
	case "MMM":
		return t.Month().String()[:3]
	case "MMMM":
		return t.Month().String()
	case "D":
		return strconv.Itoa(t.Day())
	case "DD":
		return pad(t.Day(), 2)
	case "Do":
		return ordinal(t.Day())
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "E":
		if t.Weekday() == time.Sunday {
			return "7"
		}
		return strconv.Itoa(int(t.Weekday()))
	case "dd":
		return t.Weekday().String()[:2]
	case "ddd":
		return t.Weekday().String()[:3]
	case "dddd":
		return t.Weekday().String()
	case "H":
		return strconv.Itoa(t.Hour())
	case "HH":
		return pad(t.Hour(), 2)
	case "h":
		return strconv.Itoa(hour12(t.Hour()))
	case "hh":
		return pad(hour12(t.Hour()), 2)
	case "m":
		return strconv.Itoa(t.Minute())
	case "mm":
		return pad(t.Minute(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return pad(t.Second(), 2)
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	}
	return token
}

// FormatByString renders t with format. Composite tokens are expanded
// with the adapter locale first.
func (a *Adapter) FormatByString(t time.Time, format string) string {
	var b strings.Builder
	for _, p := range splitFormat(a.ExpandFormat(format)) {
		if p.token == "" {
			b.WriteString(p.literal)
			continue
		}
		b.WriteString(formatToken(t, p.token))
	}
	return b.String()
}

// FormatTokenMap implements field.Adapter.
func (a *Adapter) FormatTokenMap() map[string]field.TokenConfig {
	return tokenMap
}

// EscapedCharacters implements field.Adapter.
func (a *Adapter) EscapedCharacters() field.EscapedCharacters {
	return field.EscapedCharacters{Start: "[", End: "]"}
}

// ExpandFormat replaces the locale's composite tokens. Escaped text is
// left unchanged.
func (a *Adapter) ExpandFormat(format string) string {
	return a.locale.expand(format)
}
