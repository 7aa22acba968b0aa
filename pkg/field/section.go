// Package field splits date formats into editable sections and implements
// the editing logic behind a segmented date/time input: placeholders,
// per-section boundaries, keyboard adjustment, position and navigation
// order, and merging edited sections back into a date.
//
// Calendar math is never done here. Every calendar operation goes through
// an Adapter, so the same engine works over any date representation.
package field

// SectionType names the calendar field a section edits.
type SectionType string

const (
	TypeYear     SectionType = "year"
	TypeMonth    SectionType = "month"
	TypeDay      SectionType = "day"
	TypeWeekDay  SectionType = "weekDay"
	TypeHours    SectionType = "hours"
	TypeMinutes  SectionType = "minutes"
	TypeSeconds  SectionType = "seconds"
	TypeMeridiem SectionType = "meridiem"
	TypeEmpty    SectionType = "empty"
)

// ContentType describes the characters a section value is made of.
type ContentType string

const (
	ContentDigit           ContentType = "digit"
	ContentDigitWithLetter ContentType = "digit-with-letter"
	ContentLetter          ContentType = "letter"
)

// Target selects how a section value is rendered.
type Target string

const (
	TargetInputLTR Target = "input-ltr"
	TargetInputRTL Target = "input-rtl"
	TargetNonInput Target = "non-input"
)

// Density controls the spacing added around common separators.
type Density string

const (
	DensityDense    Density = "dense"
	DensitySpacious Density = "spacious"
)

// KeyCode is a keyboard command understood by the adjuster.
type KeyCode string

const (
	KeyArrowUp   KeyCode = "ArrowUp"
	KeyArrowDown KeyCode = "ArrowDown"
	KeyPageUp    KeyCode = "PageUp"
	KeyPageDown  KeyCode = "PageDown"
	KeyHome      KeyCode = "Home"
	KeyEnd       KeyCode = "End"
)

// ParseKeyCode maps a key name to a KeyCode.
func ParseKeyCode(name string) (KeyCode, bool) {
	switch k := KeyCode(name); k {
	case KeyArrowUp, KeyArrowDown, KeyPageUp, KeyPageDown, KeyHome, KeyEnd:
		return k, true
	}
	return "", false
}

// ValueType is the kind of value a field edits.
type ValueType string

const (
	ValueDate     ValueType = "date"
	ValueTime     ValueType = "time"
	ValueDateTime ValueType = "date-time"
)

// Section is one editable region of a date string plus the literal text
// around it. Sections have no identity beyond their index in the slice and
// are rebuilt whenever the format, locale or value changes.
type Section struct {
	Type        SectionType `json:"type"`
	ContentType ContentType `json:"contentType"`
	// Format is the token this section was built from.
	Format string `json:"format"`
	// MaxLength is the digit count used for zero padding, 0 when unset.
	MaxLength   int    `json:"maxLength,omitempty"`
	Value       string `json:"value"`
	Placeholder string `json:"placeholder"`

	HasLeadingZerosInFormat bool `json:"hasLeadingZerosInFormat"`
	HasLeadingZerosInInput  bool `json:"hasLeadingZerosInInput"`

	StartSeparator string `json:"startSeparator"`
	EndSeparator   string `json:"endSeparator"`

	// Modified is set once the user has edited the section.
	Modified bool `json:"modified"`

	// Positions, filled by AddPositionProperties.
	Start        int `json:"start"`
	End          int `json:"end"`
	StartInInput int `json:"startInInput"`
	EndInInput   int `json:"endInInput"`
}

// IsDigit reports whether the section is edited numerically.
func (s Section) IsDigit() bool {
	return s.ContentType == ContentDigit || s.ContentType == ContentDigitWithLetter
}

// Neighbors holds the logical left and right section indexes, -1 for none.
type Neighbors struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// SectionOrdering is the logical navigation order of a sections slice.
type SectionOrdering struct {
	Neighbors  map[int]Neighbors `json:"neighbors"`
	StartIndex int               `json:"startIndex"`
	EndIndex   int               `json:"endIndex"`
}

// modificationOrder is the order in which merged fields are applied so
// that no field is interpreted against one not yet applied.
var modificationOrder = map[SectionType]int{
	TypeYear:     1,
	TypeMonth:    2,
	TypeDay:      3,
	TypeWeekDay:  4,
	TypeHours:    5,
	TypeMinutes:  6,
	TypeSeconds:  7,
	TypeMeridiem: 8,
	TypeEmpty:    9,
}
