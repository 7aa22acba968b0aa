package field

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// maxFormatExpansions bounds ExpandFormat rounds before giving up.
const maxFormatExpansions = 10

// SplitOptions tune how Split builds sections.
type SplitOptions struct {
	Density Density
	// RespectLeadingZeros keeps the format's own padding in the input.
	// When false every digit section is zero padded while editing.
	RespectLeadingZeros bool
	RTL                 bool
}

// SectionConfig resolves the section descriptor of a format token.
func (e *Engine[D]) SectionConfig(token string) (TokenConfig, error) {
	cfg, ok := e.Adapter.FormatTokenMap()[token]
	if !ok {
		return TokenConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedToken, token)
	}
	if cfg.ContentType == "" {
		cfg.ContentType = ContentDigit
		if cfg.SectionType == TypeMeridiem {
			cfg.ContentType = ContentLetter
		}
	}
	return cfg, nil
}

// ExpandFormat applies the adapter expansion until it reaches a fixed point.
func (e *Engine[D]) ExpandFormat(format string) (string, error) {
	prev := format
	next := e.Adapter.ExpandFormat(format)
	for n := maxFormatExpansions; next != prev; n-- {
		if n <= 0 {
			return "", fmt.Errorf("%w: %q", ErrFormatExpansionOverflow, format)
		}
		prev = next
		next = e.Adapter.ExpandFormat(prev)
	}
	return next, nil
}

func (e *Engine[D]) isFourDigitYearFormat(format string) bool {
	return utf8.RuneCountInString(e.Adapter.FormatByString(e.now(), format)) == 4
}

// HasLeadingZerosInFormat reports whether format pads its values, by
// probing how the adapter renders a small reference value.
func (e *Engine[D]) HasLeadingZerosInFormat(contentType ContentType, sectionType SectionType, format string) (bool, error) {
	if contentType != ContentDigit {
		return false, nil
	}
	a := e.Adapter
	now := e.now()
	width := func(d D) int { return utf8.RuneCountInString(a.FormatByString(d, format)) }

	switch sectionType {
	case TypeYear:
		// parse("1", "YYYY") is not reliable, so check by formatting.
		if e.isFourDigitYearFormat(format) {
			return a.FormatByString(a.SetYear(now, 1), format) == "0001", nil
		}
		return a.FormatByString(a.SetYear(now, 2001), format) == "01", nil
	case TypeMonth:
		return width(a.StartOfYear(now)) > 1, nil
	case TypeDay:
		return width(a.StartOfMonth(now)) > 1, nil
	case TypeWeekDay:
		return width(a.StartOfWeek(now)) > 1, nil
	case TypeHours:
		return width(a.SetHours(now, 1)) > 1, nil
	case TypeMinutes:
		return width(a.SetMinutes(now, 1)) > 1, nil
	case TypeSeconds:
		return width(a.SetSeconds(now, 1)) > 1, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidSectionType, sectionType)
	}
}

func (e *Engine[D]) placeholder(cfg TokenConfig, format string) string {
	if e.Locale == nil {
		return format
	}
	p := PlaceholderParams{Format: format, ContentType: cfg.ContentType}
	switch cfg.SectionType {
	case TypeYear:
		p.DigitAmount = utf8.RuneCountInString(e.Adapter.FormatByString(e.now(), format))
		return e.Locale.YearPlaceholder(p)
	case TypeMonth:
		return e.Locale.MonthPlaceholder(p)
	case TypeDay:
		return e.Locale.DayPlaceholder(p)
	case TypeWeekDay:
		return e.Locale.WeekDayPlaceholder(p)
	case TypeHours:
		return e.Locale.HoursPlaceholder(p)
	case TypeMinutes:
		return e.Locale.MinutesPlaceholder(p)
	case TypeSeconds:
		return e.Locale.SecondsPlaceholder(p)
	case TypeMeridiem:
		return e.Locale.MeridiemPlaceholder(p)
	default:
		return format
	}
}

type escapedPart struct {
	start, end int
}

func (e *Engine[D]) escapedParts(format string) []escapedPart {
	esc := e.Adapter.EscapedCharacters()
	if esc.Start == "" || esc.End == "" {
		return nil
	}
	re := regexp.MustCompile(regexp.QuoteMeta(esc.Start) + `[^` + regexp.QuoteMeta(esc.End) + `]*` + regexp.QuoteMeta(esc.End))
	var parts []escapedPart
	for _, loc := range re.FindAllStringIndex(format, -1) {
		parts = append(parts, escapedPart{start: loc[0], end: loc[1] - 1})
	}
	return parts
}

func findEscapedPart(parts []escapedPart, i int) (escapedPart, bool) {
	for _, p := range parts {
		if p.start <= i && i <= p.end {
			return p, true
		}
	}
	return escapedPart{}, false
}

// sortedTokens returns the adapter tokens longest first so that a short
// token never shadows a longer one sharing its prefix.
func (e *Engine[D]) sortedTokens() []string {
	m := e.Adapter.FormatTokenMap()
	tokens := make([]string, 0, len(m))
	for t := range m {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return tokens
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Split expands format and cuts it into sections. When date is valid each
// section is filled with its formatted value.
func (e *Engine[D]) Split(format string, date *D, opts SplitOptions) ([]Section, error) {
	expanded, err := e.ExpandFormat(format)
	if err != nil {
		return nil, err
	}

	var (
		startSeparator strings.Builder
		sections       []Section
		now            = e.now()
		validDate      = e.validDate(date)
	)

	commit := func(token string) error {
		if token == "" {
			return nil
		}
		cfg, err := e.SectionConfig(token)
		if err != nil {
			return err
		}
		inFormat, err := e.HasLeadingZerosInFormat(cfg.ContentType, cfg.SectionType, token)
		if err != nil {
			return err
		}
		inInput := cfg.ContentType == ContentDigit
		if opts.RespectLeadingZeros {
			inInput = inFormat
		}

		value := ""
		if validDate {
			value = e.Adapter.FormatByString(*date, token)
		}
		maxLength := 0
		if inInput {
			if inFormat {
				if value == "" {
					maxLength = utf8.RuneCountInString(e.Adapter.FormatByString(now, token))
				} else {
					maxLength = utf8.RuneCountInString(value)
				}
			} else {
				if cfg.MaxLength == 0 {
					return fmt.Errorf("%w: %q", ErrMissingMaxDigits, token)
				}
				maxLength = cfg.MaxLength
				if validDate {
					value = CleanLeadingZeros(value, maxLength)
				}
			}
		}

		s := Section{
			Type:                    cfg.SectionType,
			ContentType:             cfg.ContentType,
			Format:                  token,
			MaxLength:               maxLength,
			Value:                   value,
			Placeholder:             e.placeholder(cfg, token),
			HasLeadingZerosInFormat: inFormat,
			HasLeadingZerosInInput:  inInput,
		}
		if len(sections) == 0 {
			s.StartSeparator = startSeparator.String()
		}
		sections = append(sections, s)
		return nil
	}

	appendSeparator := func(text string) {
		if len(sections) == 0 {
			startSeparator.WriteString(text)
			return
		}
		sections[len(sections)-1].EndSeparator += text
	}

	escaped := e.escapedParts(expanded)
	tokens := e.sortedTokens()
	current := ""

	for i := 0; i < len(expanded); i++ {
		part, isEscaped := findEscapedPart(escaped, i)
		c := expanded[i]

		if !isEscaped && isASCIILetter(c) {
			if tok := longestTokenAt(tokens, expanded[i:]); tok != "" {
				if err := commit(current); err != nil {
					return nil, err
				}
				current = tok
				i += len(tok) - 1
				continue
			}
		}

		if isEscaped && (part.start == i || part.end == i) {
			// Escape delimiters are not part of the rendered text.
			if err := commit(current); err != nil {
				return nil, err
			}
			current = ""
			continue
		}
		if err := commit(current); err != nil {
			return nil, err
		}
		current = ""

		// Copy the whole rune so multi-byte separators stay intact.
		_, size := utf8.DecodeRuneInString(expanded[i:])
		appendSeparator(expanded[i : i+size])
		i += size - 1
	}
	if err := commit(current); err != nil {
		return nil, err
	}

	if len(sections) == 0 && startSeparator.Len() > 0 {
		sections = append(sections, Section{
			Type:           TypeEmpty,
			ContentType:    ContentLetter,
			StartSeparator: startSeparator.String(),
		})
	}

	for i := range sections {
		sections[i].StartSeparator = cleanSeparator(sections[i].StartSeparator, opts)
		sections[i].EndSeparator = cleanSeparator(sections[i].EndSeparator, opts)
	}
	return sections, nil
}

func longestTokenAt(tokens []string, s string) string {
	for _, t := range tokens {
		if strings.HasPrefix(s, t) {
			return t
		}
	}
	return ""
}

func cleanSeparator(separator string, opts SplitOptions) string {
	cleaned := separator
	if opts.RTL && strings.Contains(cleaned, " ") {
		cleaned = popIsolate + cleaned + ltrIsolate
	}
	if opts.Density == DensitySpacious {
		switch cleaned {
		case "/", ".", "-":
			cleaned = " " + cleaned + " "
		}
	}
	return cleaned
}
