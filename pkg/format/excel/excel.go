// Package excel translates spreadsheet number formats into field formats.
package excel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/nfp"
)

var (
	ErrNotDateFormat    = errors.New("excel: not a date or time format")
	ErrUnsupportedToken = errors.New("excel: unsupported token")
)

// builtIn holds the date and time formats of the reserved numFmtId values.
var builtIn = map[int]string{
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "hh:mm",
	21: "hh:mm:ss",
	22: "m/d/yy hh:mm",
	45: "mm:ss",
}

// BuiltIn translates the built-in format with the given id.
func BuiltIn(id int) (string, error) {
	f, ok := builtIn[id]
	if !ok {
		return "", fmt.Errorf("%w: built-in format %d", ErrNotDateFormat, id)
	}
	return Translate(f)
}

// Translate converts the first section of numFmt. Literal text that
// contains letters is escaped with brackets.
func Translate(numFmt string) (string, error) {
	ps := nfp.NumberFormatParser()
	sections := ps.Parse(numFmt)
	if len(sections) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotDateFormat, numFmt)
	}
	items := sections[0].Items

	hasMeridiem := false
	for _, tok := range items {
		if tok.TType == nfp.TokenTypeDateTimes && isMeridiem(tok.TValue) {
			hasMeridiem = true
			break
		}
	}

	var (
		b           strings.Builder
		lastWasHour bool
		dateTokens  int
	)
	for i, tok := range items {
		switch tok.TType {
		case nfp.TokenTypeDateTimes:
			out, err := translateToken(tok.TValue, hasMeridiem, lastWasHour || secondsFollow(items[i+1:]))
			if err != nil {
				return "", fmt.Errorf("%q: %w", numFmt, err)
			}
			b.WriteString(out)
			upper := strings.ToUpper(tok.TValue)
			lastWasHour = upper == "H" || upper == "HH"
			dateTokens++
		case nfp.TokenTypeElapsedDateTimes:
			return "", fmt.Errorf("%w: elapsed time [%s] in %q", ErrUnsupportedToken, tok.TValue, numFmt)
		case nfp.TokenTypeColor, nfp.TokenTypeCondition, nfp.TokenTypeCurrencyLanguage, nfp.TokenTypeAlignment:
			lastWasHour = false
		default:
			// Separators leave lastWasHour alone so "h:mm" reads minutes.
			b.WriteString(literal(tok.TValue))
		}
	}
	if dateTokens == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotDateFormat, numFmt)
	}
	return b.String(), nil
}

func isMeridiem(v string) bool {
	upper := strings.ToUpper(v)
	return upper == "AM/PM" || upper == "A/P"
}

// secondsFollow reports whether the next date token is a seconds token,
// which makes a preceding M mean minutes.
func secondsFollow(items []nfp.Token) bool {
	for _, tok := range items {
		if tok.TType != nfp.TokenTypeDateTimes {
			continue
		}
		upper := strings.ToUpper(tok.TValue)
		return upper == "S" || upper == "SS"
	}
	return false
}

func translateToken(v string, hasMeridiem, minutes bool) (string, error) {
	upper := strings.ToUpper(v)
	switch upper {
	case "YY", "Y":
		return "YY", nil
	case "YYYY", "YYY":
		return "YYYY", nil
	case "M", "MM":
		if minutes {
			return strings.ToLower(upper), nil
		}
		return upper, nil
	case "MMM", "MMMM":
		return upper, nil
	case "D", "DD":
		return upper, nil
	case "DDD", "DDDD":
		return strings.ToLower(upper), nil
	case "H", "HH":
		if hasMeridiem {
			return strings.ToLower(upper), nil
		}
		return upper, nil
	case "S", "SS":
		return strings.ToLower(upper), nil
	case "AM/PM", "A/P":
		if v[0] == 'a' {
			return "a", nil
		}
		return "A", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedToken, v)
}

func literal(v string) string {
	for _, r := range v {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return "[" + v + "]"
		}
	}
	return v
}
