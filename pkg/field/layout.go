package field

import (
	"strings"
	"unicode/utf8"
)

// AddPositionProperties returns a copy of sections with their offsets set.
// Start and End index the string without isolation marks; StartInInput and
// EndInInput index the raw input string, marks included. Offsets count
// runes.
func AddPositionProperties(sections []Section, rtl bool) []Section {
	target := TargetInputLTR
	position := 0
	positionInInput := 0
	if rtl {
		target = TargetInputRTL
		// The whole input is wrapped in a leading isolate.
		positionInInput = 1
	}

	out := make([]Section, len(sections))
	for i, s := range sections {
		rendered := VisibleValue(s, target)
		full := s.StartSeparator + rendered + s.EndSeparator

		length := utf8.RuneCountInString(CleanString(full))
		lengthInInput := utf8.RuneCountInString(full)

		cleaned := CleanString(rendered)
		offset := 0
		if cleaned != "" {
			first, _ := utf8.DecodeRuneInString(cleaned)
			offset = utf8.RuneCountInString(rendered[:strings.IndexRune(rendered, first)])
		}
		startInInput := positionInInput + offset + utf8.RuneCountInString(s.StartSeparator)

		s.Start = position
		s.End = position + length
		s.StartInInput = startInInput
		s.EndInInput = startInInput + utf8.RuneCountInString(cleaned)
		out[i] = s

		position += length
		positionInInput += lengthInInput
	}
	return out
}

// SectionOrder computes the logical left and right neighbor of each section.
//
// Right to left, sections are grouped into clusters separated by spaces,
// and the order inside each cluster is reversed, which matches how the
// browser lays out isolated digit groups.
func SectionOrder(sections []Section, rtl bool) SectionOrdering {
	n := len(sections)
	neighbors := make(map[int]Neighbors, n)
	if !rtl {
		for i := range sections {
			nb := Neighbors{Left: i - 1, Right: i + 1}
			if i == n-1 {
				nb.Right = -1
			}
			neighbors[i] = nb
		}
		return SectionOrdering{Neighbors: neighbors, StartIndex: 0, EndIndex: n - 1}
	}
	if n == 0 {
		return SectionOrdering{Neighbors: neighbors, StartIndex: -1, EndIndex: -1}
	}

	rtl2ltr := make(map[int]int, n)
	ltr2rtl := make(map[int]int, n)

	groupStart := 0
	rtlIndex := n - 1
	for rtlIndex >= 0 {
		groupEnd := -1
		for i := groupStart; i < n; i++ {
			sep := sections[i].EndSeparator
			// " / " only holds spaces added by the spacious density.
			if strings.Contains(sep, " ") && sep != " / " {
				groupEnd = i
				break
			}
		}
		if groupEnd == -1 {
			groupEnd = n - 1
		}
		for i := groupEnd; i >= groupStart; i-- {
			ltr2rtl[i] = rtlIndex
			rtl2ltr[rtlIndex] = i
			rtlIndex--
		}
		groupStart = groupEnd + 1
	}

	for i := range sections {
		r := ltr2rtl[i]
		nb := Neighbors{Left: -1, Right: -1}
		if r > 0 {
			nb.Left = rtl2ltr[r-1]
		}
		if r < n-1 {
			nb.Right = rtl2ltr[r+1]
		}
		neighbors[i] = nb
	}
	return SectionOrdering{Neighbors: neighbors, StartIndex: rtl2ltr[0], EndIndex: rtl2ltr[n-1]}
}
