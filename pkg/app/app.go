package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tableflip.dev/datefield/pkg/dateadapter"
	"tableflip.dev/datefield/pkg/field"
	"tableflip.dev/datefield/pkg/locale"
	"tableflip.dev/datefield/pkg/session"
	"tableflip.dev/datefield/pkg/store"
)

// Settings describe one date field. Zero values fall back to the
// configuration.
type Settings struct {
	Format              string
	Locale              string
	Timezone            string
	Density             string
	RTL                 bool
	RespectLeadingZeros bool
	MinutesStep         int
	ValueType           string
	// Value is an RFC 3339 date, empty for an empty field.
	Value        string
	Placeholders map[string]string
}

// Service builds engines and sessions from settings and manages presets.
// It wraps configuration and persistence so UIs and CLIs can share logic.
type Service struct {
	Presets store.Presets
	// Config supplies defaults, nil for the built in ones.
	Config *store.FileConfig
	// Clock replaces time.Now, for tests.
	Clock func() time.Time
	// Validator is shared by every session so the unsupported section
	// warning is logged once. It is created on first use when nil.
	Validator *field.Validator

	validatorOnce sync.Once
}

var (
	ErrNoPresets     = errors.New("app: no preset store configured")
	ErrUnknownLocale = errors.New("app: unknown locale")
)

// Defaults returns the settings of the configuration.
func (s *Service) Defaults() Settings {
	c := s.Config
	if c == nil {
		c = &store.FileConfig{}
	}
	out := Settings{
		Format:              c.Format,
		Locale:              c.Locale,
		Timezone:            c.Timezone,
		Density:             c.Density,
		RTL:                 c.RTL,
		RespectLeadingZeros: c.RespectLeadingZeros,
		MinutesStep:         c.MinutesStep,
		ValueType:           c.ValueType,
		Placeholders:        c.Placeholders,
	}
	return out.withFallbacks()
}

func (st Settings) withFallbacks() Settings {
	if st.Format == "" {
		st.Format = "L"
	}
	if st.Locale == "" {
		st.Locale = dateadapter.EnUS.Name
	}
	if st.Timezone == "" {
		st.Timezone = "default"
	}
	if st.Density == "" {
		st.Density = string(field.DensityDense)
	}
	if st.MinutesStep <= 0 {
		st.MinutesStep = 1
	}
	if st.ValueType == "" {
		st.ValueType = string(field.ValueDateTime)
	}
	return st
}

// Merge overlays the non zero fields of o. Booleans can only be turned
// on.
func (st Settings) Merge(o Settings) Settings {
	if o.Format != "" {
		st.Format = o.Format
	}
	if o.Locale != "" {
		st.Locale = o.Locale
	}
	if o.Timezone != "" {
		st.Timezone = o.Timezone
	}
	if o.Density != "" {
		st.Density = o.Density
	}
	st.RTL = st.RTL || o.RTL
	st.RespectLeadingZeros = st.RespectLeadingZeros || o.RespectLeadingZeros
	if o.MinutesStep > 0 {
		st.MinutesStep = o.MinutesStep
	}
	if o.ValueType != "" {
		st.ValueType = o.ValueType
	}
	if o.Value != "" {
		st.Value = o.Value
	}
	if len(o.Placeholders) > 0 {
		st.Placeholders = o.Placeholders
	}
	return st
}

// Resolve returns the defaults overlaid with the named preset, when name
// is set, and then with flags.
func (s *Service) Resolve(preset string, flags Settings) (Settings, error) {
	st := s.Defaults()
	if preset != "" {
		p, err := s.Preset(preset)
		if err != nil {
			return Settings{}, err
		}
		st = st.Merge(FromPreset(p))
	}
	return st.Merge(flags), nil
}

// Engine builds the field engine of st.
func (s *Service) Engine(st Settings) (*field.Engine[time.Time], error) {
	st = st.withFallbacks()
	l, ok := dateadapter.LookupLocale(st.Locale)
	if !ok {
		return nil, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownLocale, st.Locale, strings.Join(dateadapter.LocaleNames(), ", "))
	}
	tz := field.Timezone(st.Timezone)
	loc, err := dateadapter.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("app: timezone: %w", err)
	}
	opts := []dateadapter.Option{dateadapter.WithLocale(l), dateadapter.WithLocation(loc)}
	if s.Clock != nil {
		opts = append(opts, dateadapter.WithClock(s.Clock))
	}
	return field.NewEngine[time.Time](dateadapter.New(opts...), tz, locale.NewEnglish(st.Placeholders)), nil
}

// Session builds an engine and a session for st.
func (s *Service) Session(ctx context.Context, st Settings) (*session.Session[time.Time], error) {
	st = st.withFallbacks()
	engine, err := s.Engine(st)
	if err != nil {
		return nil, err
	}
	value, err := ParseValue(st.Value)
	if err != nil {
		return nil, err
	}
	return session.New(ctx, engine, session.Config[time.Time]{
		Format:              st.Format,
		ValueType:           field.ValueType(st.ValueType),
		Density:             field.Density(st.Density),
		RTL:                 st.RTL,
		RespectLeadingZeros: st.RespectLeadingZeros,
		MinutesStep:         st.MinutesStep,
		Value:               value,
		Validator:           s.validator(),
	})
}

func (s *Service) validator() *field.Validator {
	s.validatorOnce.Do(func() {
		if s.Validator == nil {
			s.Validator = &field.Validator{}
		}
	})
	return s.Validator
}

// ParseValue reads an RFC 3339 date, nil for the empty string.
func ParseValue(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("app: value %q: %w", v, err)
	}
	return &t, nil
}

// FormatValue renders v as RFC 3339, empty for nil.
func FormatValue(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(time.RFC3339)
}

// FromPreset converts a stored preset into settings.
func FromPreset(p *store.Preset) Settings {
	return Settings{
		Format:              p.Format,
		Locale:              p.Locale,
		Timezone:            p.Timezone,
		Density:             p.Density,
		RTL:                 p.RTL,
		RespectLeadingZeros: p.RespectLeadingZeros,
		MinutesStep:         p.MinutesStep,
		ValueType:           p.ValueType,
		Value:               p.Value,
	}
}

// SavePreset stores st under name.
func (s *Service) SavePreset(name string, st Settings) (*store.Preset, error) {
	if s.Presets == nil {
		return nil, ErrNoPresets
	}
	p := &store.Preset{
		Name:                name,
		Format:              st.Format,
		Locale:              st.Locale,
		Timezone:            st.Timezone,
		Density:             st.Density,
		RTL:                 st.RTL,
		RespectLeadingZeros: st.RespectLeadingZeros,
		MinutesStep:         st.MinutesStep,
		ValueType:           st.ValueType,
		Value:               st.Value,
	}
	if s.Clock != nil {
		p.Saved = s.Clock().UTC()
	}
	if err := s.Presets.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Preset loads the named preset.
func (s *Service) Preset(name string) (*store.Preset, error) {
	if s.Presets == nil {
		return nil, ErrNoPresets
	}
	return s.Presets.Get(name)
}

// ListPresets returns every stored preset sorted by name.
func (s *Service) ListPresets(ctx context.Context) ([]*store.Preset, error) {
	if s.Presets == nil {
		return nil, ErrNoPresets
	}
	return s.Presets.List(ctx)
}

// DeletePreset removes the named preset.
func (s *Service) DeletePreset(name string) error {
	if s.Presets == nil {
		return ErrNoPresets
	}
	return s.Presets.Delete(name)
}

// Watch subscribes to preset change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Presets == nil {
		return nil, ErrNoPresets
	}
	return s.Presets.Watch(ctx)
}
