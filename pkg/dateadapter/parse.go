package dateadapter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	oneOrTwoDigits = regexp.MustCompile(`^\d{1,2}`)
	upToFourDigits = regexp.MustCompile(`^\d{1,4}`)
	ordinalDay     = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)`)
	weekDayDigit   = regexp.MustCompile(`^[0-7]`)
	meridiemWord   = regexp.MustCompile(`^(?i)(am|pm)`)
)

type parsed struct {
	year, month, day          int
	hasYear, hasMonth, hasDay bool
	hours, minutes, seconds   int
	twelveHour                bool
	meridiem                  string
}

func matchName(value string, names []string) (int, int) {
	lower := strings.ToLower(value)
	best, length := -1, 0
	for i, n := range names {
		if len(n) > length && strings.HasPrefix(lower, strings.ToLower(n)) {
			best, length = i, len(n)
		}
	}
	return best, length
}

func monthNames(short bool) []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = time.Month(i + 1).String()
		if short {
			names[i] = names[i][:3]
		}
	}
	return names
}

func weekDayNames(length int) []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday(i).String()
		if length > 0 {
			names[i] = names[i][:length]
		}
	}
	return names
}

func (p *parsed) read(token, value string) (int, bool) {
	number := func(re *regexp.Regexp) (int, int, bool) {
		m := re.FindString(value)
		if m == "" {
			return 0, 0, false
		}
		n, err := strconv.Atoi(m)
		return n, len(m), err == nil
	}
	switch token {
	case "YYYY", "YY":
		n, l, ok := number(upToFourDigits)
		if !ok {
			return 0, false
		}
		if token == "YY" {
			// Two digit years follow the dayjs pivot.
			if n > 68 {
				n += 1900
			} else {
				n += 2000
			}
		}
		p.year, p.hasYear = n, true
		return l, true
	case "M", "MM":
		n, l, ok := number(oneOrTwoDigits)
		p.month, p.hasMonth = n, ok
		return l, ok
	case "MMM", "MMMM":
		i, l := matchName(value, monthNames(token == "MMM"))
		if i < 0 {
			return 0, false
		}
		p.month, p.hasMonth = i+1, true
		return l, true
	case "D", "DD":
		n, l, ok := number(oneOrTwoDigits)
		p.day, p.hasDay = n, ok
		return l, ok
	case "Do":
		m := ordinalDay.FindStringSubmatch(value)
		if m == nil {
			return 0, false
		}
		p.day, _ = strconv.Atoi(m[1])
		p.hasDay = true
		return len(m[0]), true
	case "d", "E":
		// Week days do not select a date.
		m := weekDayDigit.FindString(value)
		return len(m), m != ""
	case "dd", "ddd", "dddd":
		length := map[string]int{"dd": 2, "ddd": 3, "dddd": 0}[token]
		i, l := matchName(value, weekDayNames(length))
		return l, i >= 0
	case "H", "HH", "h", "hh":
		n, l, ok := number(oneOrTwoDigits)
		p.hours = n
		p.twelveHour = p.twelveHour || token == "h" || token == "hh"
		return l, ok
	case "m", "mm":
		n, l, ok := number(oneOrTwoDigits)
		p.minutes = n
		return l, ok
	case "s", "ss":
		n, l, ok := number(oneOrTwoDigits)
		p.seconds = n
		return l, ok
	case "A", "a":
		m := meridiemWord.FindString(value)
		p.meridiem = strings.ToLower(m)
		return len(m), m != ""
	}
	return 0, false
}

// Parse reads value with format. Missing fields default the way dayjs
// does: the current year, the current month unless only the year is
// given, and the first of the month unless neither year nor month is
// given. Dates that do not exist are rejected.
func (a *Adapter) Parse(value, format string) (time.Time, bool) {
	var p parsed
	rest := value
	for _, part := range splitFormat(a.ExpandFormat(format)) {
		if part.token == "" {
			if !strings.HasPrefix(rest, part.literal) {
				return time.Time{}, false
			}
			rest = rest[len(part.literal):]
			continue
		}
		n, ok := p.read(part.token, rest)
		if !ok {
			return time.Time{}, false
		}
		rest = rest[n:]
	}
	if strings.TrimSpace(rest) != "" {
		return time.Time{}, false
	}
	return p.date(a.clock().In(a.location), a.location)
}

func (p *parsed) date(now time.Time, loc *time.Location) (time.Time, bool) {
	year := now.Year()
	if p.hasYear {
		year = p.year
	}
	month := int(now.Month())
	switch {
	case p.hasMonth:
		month = p.month
	case p.hasYear:
		month = 1
	}
	day := now.Day()
	switch {
	case p.hasDay:
		day = p.day
	case p.hasYear || p.hasMonth:
		day = 1
	}

	hours := p.hours
	if p.twelveHour && (hours < 1 || hours > 12) {
		return time.Time{}, false
	}
	switch {
	case p.meridiem == "pm" && hours < 12:
		hours += 12
	case p.meridiem == "am" && hours == 12:
		hours = 0
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) ||
		hours > 23 || p.minutes > 59 || p.seconds > 59 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hours, p.minutes, p.seconds, 0, loc), true
}
