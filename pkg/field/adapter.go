package field

// Timezone names the zone "now" is evaluated in. The empty string,
// "default" and "system" mean the local zone.
type Timezone string

// TokenConfig describes the section a format token produces.
type TokenConfig struct {
	SectionType SectionType
	ContentType ContentType
	// MaxLength is the largest digit count the token can render, 0 when
	// the adapter does not declare one.
	MaxLength int
}

// EscapedCharacters are the delimiters of literal text within a format.
type EscapedCharacters struct {
	Start string
	End   string
}

// Adapter supplies calendar operations over an opaque date value D.
// Months are zero based. Implementations must be free of side effects.
type Adapter[D any] interface {
	// Date returns the current instant in tz.
	Date(tz Timezone) D
	FormatByString(d D, format string) string
	// Parse reads value using format. It reports false when value does not
	// describe a valid date.
	Parse(value, format string) (D, bool)
	IsValid(d D) bool
	// ExpandFormat replaces composite tokens with primitive ones. It is
	// applied until the result stops changing.
	ExpandFormat(format string) string
	EscapedCharacters() EscapedCharacters
	FormatTokenMap() map[string]TokenConfig

	GetYear(d D) int
	SetYear(d D, year int) D
	GetMonth(d D) int
	SetMonth(d D, month int) D
	GetDate(d D) int
	SetDate(d D, day int) D
	GetHours(d D) int
	SetHours(d D, hours int) D
	GetMinutes(d D) int
	SetMinutes(d D, minutes int) D
	GetSeconds(d D) int
	SetSeconds(d D, seconds int) D

	AddDays(d D, days int) D
	AddHours(d D, hours int) D

	StartOfWeek(d D) D
	EndOfWeek(d D) D
	StartOfDay(d D) D
	EndOfDay(d D) D
	StartOfMonth(d D) D
	StartOfYear(d D) D
	EndOfYear(d D) D

	GetDaysInMonth(d D) int
	IsBefore(a, b D) bool
}

// PlaceholderParams are passed to LocaleText placeholder functions.
type PlaceholderParams struct {
	Format      string
	ContentType ContentType
	// DigitAmount is only set for year sections.
	DigitAmount int
}

// LocaleText provides the placeholder shown for an empty section.
type LocaleText interface {
	YearPlaceholder(p PlaceholderParams) string
	MonthPlaceholder(p PlaceholderParams) string
	DayPlaceholder(p PlaceholderParams) string
	WeekDayPlaceholder(p PlaceholderParams) string
	HoursPlaceholder(p PlaceholderParams) string
	MinutesPlaceholder(p PlaceholderParams) string
	SecondsPlaceholder(p PlaceholderParams) string
	MeridiemPlaceholder(p PlaceholderParams) string
}

// Engine binds an adapter, a timezone and locale text. It holds no mutable
// state and may be shared between sessions.
type Engine[D any] struct {
	Adapter  Adapter[D]
	Timezone Timezone
	Locale   LocaleText
}

// NewEngine returns an Engine over the given adapter.
func NewEngine[D any](adapter Adapter[D], tz Timezone, locale LocaleText) *Engine[D] {
	return &Engine[D]{Adapter: adapter, Timezone: tz, Locale: locale}
}

func (e *Engine[D]) now() D {
	return e.Adapter.Date(e.Timezone)
}

// validDate reports whether d is non-nil and valid.
func (e *Engine[D]) validDate(d *D) bool {
	return d != nil && e.Adapter.IsValid(*d)
}
