package field

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Bidirectional control characters used in input renderings.
const (
	ltrIsolate         = "\u2066"
	rtlIsolate         = "\u2067"
	firstStrongIsolate = "\u2068"
	popIsolate         = "\u2069"
	// ltrMark keeps the rendered string changing when a one digit value
	// is retyped so length based change detection never misses an edit.
	ltrMark = "\u200e"
)

var isolateReplacer = strings.NewReplacer(ltrIsolate, "", rtlIsolate, "", firstStrongIsolate, "", popIsolate, "")

// CleanString removes the directional isolation marks from s.
func CleanString(s string) string {
	return isolateReplacer.Replace(s)
}

// numberString mirrors Number(v).toString(): surrounding spaces are ignored
// and leading zeros dropped. Values that are not integers are kept as is.
func numberString(v string) string {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return v
	}
	return strconv.Itoa(n)
}

// CleanLeadingZeros strips the leading zeros of value then pads it back to
// size digits.
func CleanLeadingZeros(value string, size int) string {
	cleaned := numberString(value)
	if n := utf8.RuneCountInString(cleaned); n < size {
		cleaned = strings.Repeat("0", size-n) + cleaned
	}
	return cleaned
}

// VisibleValue returns the text rendered for section in target: the value
// when set, the placeholder otherwise.
func VisibleValue(section Section, target Target) string {
	value := section.Value
	if value == "" {
		value = section.Placeholder
	}

	hasLeadingZeros := section.HasLeadingZerosInInput
	if target == TargetNonInput {
		hasLeadingZeros = section.HasLeadingZerosInFormat
		if section.HasLeadingZerosInInput && !section.HasLeadingZerosInFormat {
			value = numberString(value)
		}
	}

	isInput := target == TargetInputLTR || target == TargetInputRTL
	if isInput && section.ContentType == ContentDigit && !hasLeadingZeros && utf8.RuneCountInString(value) == 1 {
		value += ltrMark
	}
	if target == TargetInputRTL {
		value = firstStrongIsolate + value + popIsolate
	}
	return value
}

// InputString renders every section for an editable input.
func InputString(sections []Section, rtl bool) string {
	target := TargetInputLTR
	if rtl {
		target = TargetInputRTL
	}
	var b strings.Builder
	for _, s := range sections {
		b.WriteString(s.StartSeparator)
		b.WriteString(VisibleValue(s, target))
		b.WriteString(s.EndSeparator)
	}
	if !rtl {
		return b.String()
	}
	// Separators close and reopen this isolate to split the string into
	// independently ordered groups.
	return ltrIsolate + b.String() + popIsolate
}

// DisplayString renders every section for read-only display.
func DisplayString(sections []Section) string {
	var b strings.Builder
	for _, s := range sections {
		b.WriteString(CleanString(s.StartSeparator))
		b.WriteString(VisibleValue(s, TargetNonInput))
		b.WriteString(CleanString(s.EndSeparator))
	}
	return b.String()
}

// CleanDigitSectionValue renders value for a digit section following its
// leading zero policy.
func (e *Engine[D]) CleanDigitSectionValue(value int, bounds Boundaries[D], section Section) (string, error) {
	if section.ContentType == ContentDigitWithLetter {
		if section.Type != TypeDay {
			return "", fmt.Errorf("%w: token %q is a digit format with letters, only supported for day sections", ErrUnsupportedOperation, section.Format)
		}
		if !bounds.HasLongestMonth {
			return "", fmt.Errorf("%w: day boundaries without a longest month", ErrInvalidSectionType)
		}
		d := e.Adapter.SetDate(bounds.LongestMonth, value)
		return e.Adapter.FormatByString(d, section.Format), nil
	}

	s := strconv.Itoa(value)
	if section.HasLeadingZerosInInput {
		return CleanLeadingZeros(s, section.MaxLength), nil
	}
	return s, nil
}

// ChangeSectionValueFormat re-renders value, written with currentFormat,
// using newFormat.
func (e *Engine[D]) ChangeSectionValueFormat(value, currentFormat, newFormat string) (string, error) {
	cfg, err := e.SectionConfig(currentFormat)
	if err != nil {
		return "", err
	}
	if cfg.SectionType == TypeWeekDay {
		return "", fmt.Errorf("%w: cannot change the format of week day values", ErrUnsupportedOperation)
	}
	d, ok := e.Adapter.Parse(value, currentFormat)
	if !ok {
		return "", fmt.Errorf("field: cannot parse %q with %q", value, currentFormat)
	}
	return e.Adapter.FormatByString(d, newFormat), nil
}
