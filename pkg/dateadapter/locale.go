package dateadapter

import (
	"regexp"
	"strings"
	"time"
)

// Locale holds the calendar conventions and long date formats of a
// language.
type Locale struct {
	Name      string
	WeekStart time.Weekday
	// Formats maps the composite tokens LT, LTS, L, LL, LLL, LLLL, l, ll,
	// lll and llll to primitive formats.
	Formats map[string]string
}

var (
	EnUS = &Locale{
		Name:      "en-US",
		WeekStart: time.Sunday,
		Formats: map[string]string{
			"LT":   "h:mm A",
			"LTS":  "h:mm:ss A",
			"L":    "MM/DD/YYYY",
			"LL":   "MMMM D, YYYY",
			"LLL":  "MMMM D, YYYY h:mm A",
			"LLLL": "dddd, MMMM D, YYYY h:mm A",
			"l":    "M/D/YYYY",
			"ll":   "MMM D, YYYY",
			"lll":  "MMM D, YYYY h:mm A",
			"llll": "ddd, MMM D, YYYY h:mm A",
		},
	}

	EnGB = &Locale{
		Name:      "en-GB",
		WeekStart: time.Monday,
		Formats: map[string]string{
			"LT":   "HH:mm",
			"LTS":  "HH:mm:ss",
			"L":    "DD/MM/YYYY",
			"LL":   "D MMMM YYYY",
			"LLL":  "D MMMM YYYY HH:mm",
			"LLLL": "dddd, D MMMM YYYY HH:mm",
			"l":    "D/M/YYYY",
			"ll":   "D MMM YYYY",
			"lll":  "D MMM YYYY HH:mm",
			"llll": "ddd, D MMM YYYY HH:mm",
		},
	}
)

var locales = map[string]*Locale{
	"en":    EnUS,
	"en-us": EnUS,
	"en-gb": EnGB,
}

// LookupLocale finds a locale by name, ignoring case and accepting "_"
// for "-".
func LookupLocale(name string) (*Locale, bool) {
	l, ok := locales[strings.ReplaceAll(strings.ToLower(name), "_", "-")]
	return l, ok
}

// LocaleNames lists the names accepted by LookupLocale.
func LocaleNames() []string {
	return []string{EnUS.Name, EnGB.Name}
}

// Escaped text is matched first so composite tokens inside it are kept.
var compositeFormat = regexp.MustCompile(`\[[^\]]*\]|LTS?|l{1,4}|L{1,4}`)

func (l *Locale) expand(format string) string {
	return compositeFormat.ReplaceAllStringFunc(format, func(m string) string {
		if strings.HasPrefix(m, "[") {
			return m
		}
		if f, ok := l.Formats[m]; ok {
			return f
		}
		return m
	})
}
