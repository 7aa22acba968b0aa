package field_test

import (
	"time"

	"tableflip.dev/datefield/pkg/dateadapter"
	"tableflip.dev/datefield/pkg/field"
	"tableflip.dev/datefield/pkg/locale"
)

// Thursday.
var now = time.Date(2023, time.January, 5, 14, 7, 9, 0, time.UTC)

func newAdapter(opts ...dateadapter.Option) *dateadapter.Adapter {
	base := []dateadapter.Option{
		dateadapter.WithClock(func() time.Time { return now }),
		dateadapter.WithLocation(time.UTC),
	}
	return dateadapter.New(append(base, opts...)...)
}

func newEngine(opts ...dateadapter.Option) *field.Engine[time.Time] {
	return field.NewEngine[time.Time](newAdapter(opts...), "UTC", locale.NewEnglish(nil))
}

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// overrideAdapter swaps parts of the token dialect.
type overrideAdapter struct {
	*dateadapter.Adapter
	tokens map[string]field.TokenConfig
	expand func(string) string
}

func (o overrideAdapter) FormatTokenMap() map[string]field.TokenConfig {
	if o.tokens != nil {
		return o.tokens
	}
	return o.Adapter.FormatTokenMap()
}

func (o overrideAdapter) ExpandFormat(format string) string {
	if o.expand != nil {
		return o.expand(format)
	}
	return o.Adapter.ExpandFormat(format)
}

func split(e *field.Engine[time.Time], format string, d *time.Time, opts field.SplitOptions) []field.Section {
	sections, err := e.Split(format, d, opts)
	if err != nil {
		panic(err)
	}
	return sections
}

func sectionOf(e *field.Engine[time.Time], format string, d *time.Time) field.Section {
	return split(e, format, d, field.SplitOptions{})[0]
}
