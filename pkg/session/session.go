// Package session edits one date value through its sections. A Session
// owns its sections slice; it is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/logging/ctxlog"

	"tableflip.dev/datefield/pkg/field"
)

var (
	ErrNoActiveSection = errors.New("session: no active section")
	ErrOutOfRange      = errors.New("session: value out of range")
	ErrNoMatch         = errors.New("session: value matches no option")
	ErrUnknownCommand  = errors.New("session: unknown command")
)

// Config describes the field being edited.
type Config[D any] struct {
	Format              string
	ValueType           field.ValueType
	Density             field.Density
	RTL                 bool
	RespectLeadingZeros bool
	MinutesStep         int
	// Value is the initial value, nil for an empty field.
	Value *D
	// ReferenceDate receives edits while the field has no value. It
	// defaults to the start of today and follows the last valid value.
	ReferenceDate *D
	// Validator is shared to warn once per process. A session creates its
	// own when nil.
	Validator *field.Validator
}

type Session[D any] struct {
	engine     *field.Engine[D]
	cfg        Config[D]
	sections   []field.Section
	ordering   field.SectionOrdering
	boundaries *field.SectionsBoundaries[D]
	active     int
	value      *D
	reference  D
}

// New builds the sections of cfg.Format for cfg.Value.
func New[D any](ctx context.Context, engine *field.Engine[D], cfg Config[D]) (*Session[D], error) {
	if cfg.Validator == nil {
		cfg.Validator = &field.Validator{}
	}
	if cfg.ValueType == "" {
		cfg.ValueType = field.ValueDateTime
	}
	s := &Session[D]{engine: engine, cfg: cfg, active: -1}
	if cfg.ReferenceDate != nil && engine.Adapter.IsValid(*cfg.ReferenceDate) {
		s.reference = *cfg.ReferenceDate
	} else {
		s.reference = engine.Adapter.StartOfDay(engine.Adapter.Date(engine.Timezone))
	}
	s.setValue(cfg.Value)
	if err := s.build(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session[D]) build(ctx context.Context) error {
	sections, err := s.engine.Split(s.cfg.Format, s.value, field.SplitOptions{
		Density:             s.cfg.Density,
		RespectLeadingZeros: s.cfg.RespectLeadingZeros,
		RTL:                 s.cfg.RTL,
	})
	if err != nil {
		return err
	}
	s.cfg.Validator.Validate(ctx, sections, s.cfg.ValueType)
	s.sections = field.AddPositionProperties(sections, s.cfg.RTL)
	s.ordering = field.SectionOrder(s.sections, s.cfg.RTL)
	s.boundaries = s.engine.Boundaries()
	if s.active >= len(s.sections) {
		s.active = -1
	}
	ctxlog.Logger(ctx).Debug("session: built sections", "format", s.cfg.Format, "sections", len(s.sections))
	return nil
}

// Sections returns a copy of the sections.
func (s *Session[D]) Sections() []field.Section {
	out := make([]field.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

func (s *Session[D]) Ordering() field.SectionOrdering { return s.ordering }

// Input is the rendering shown in an editable input.
func (s *Session[D]) Input() string { return field.InputString(s.sections, s.cfg.RTL) }

// Display is the read-only rendering.
func (s *Session[D]) Display() string { return field.DisplayString(s.sections) }

func (s *Session[D]) Format() string { return s.cfg.Format }

func (s *Session[D]) Engine() *field.Engine[D] { return s.engine }

func (s *Session[D]) Config() Config[D] { return s.cfg }

// Active returns the index of the focused section, -1 when none is.
func (s *Session[D]) Active() int { return s.active }

// ActiveSection returns the focused section.
func (s *Session[D]) ActiveSection() (field.Section, bool) {
	if s.active < 0 {
		return field.Section{}, false
	}
	return s.sections[s.active], true
}

// Focus activates section i, or clears the focus when i is -1.
func (s *Session[D]) Focus(i int) error {
	if i < -1 || i >= len(s.sections) {
		return fmt.Errorf("session: section %d out of 0..%d", i, len(s.sections)-1)
	}
	s.active = i
	return nil
}

func (s *Session[D]) move(next func(field.Neighbors) int) {
	if len(s.sections) == 0 {
		return
	}
	if s.active < 0 {
		s.active = s.ordering.StartIndex
		return
	}
	if n := next(s.ordering.Neighbors[s.active]); n >= 0 {
		s.active = n
	}
}

// MoveLeft focuses the logical left neighbor.
func (s *Session[D]) MoveLeft() { s.move(func(n field.Neighbors) int { return n.Left }) }

// MoveRight focuses the logical right neighbor.
func (s *Session[D]) MoveRight() { s.move(func(n field.Neighbors) int { return n.Right }) }

// Home focuses the first section in navigation order.
func (s *Session[D]) Home() {
	if len(s.sections) > 0 {
		s.active = s.ordering.StartIndex
	}
}

// End focuses the last section in navigation order.
func (s *Session[D]) End() {
	if len(s.sections) > 0 {
		s.active = s.ordering.EndIndex
	}
}

// Adjust applies key to the active section.
func (s *Session[D]) Adjust(key field.KeyCode) error {
	current, ok := s.ActiveSection()
	if !ok {
		return ErrNoActiveSection
	}
	value, err := s.engine.Adjust(current, key, s.boundaries, s.value, field.StepAttributes{MinutesStep: s.cfg.MinutesStep})
	if err != nil {
		return err
	}
	s.update(value)
	return nil
}

// SetSectionValue types raw into the active section. Digit sections take
// a number within the section boundaries. Letter sections take one of
// their options, matched ignoring case, or the first option raw prefixes.
func (s *Session[D]) SetSectionValue(raw string) error {
	current, ok := s.ActiveSection()
	if !ok {
		return ErrNoActiveSection
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		s.Clear()
		return nil
	}

	if current.IsDigit() {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("session: %s section: %w", current.Type, err)
		}
		bounds, err := s.boundaries.For(current.Type, field.BoundaryQuery[D]{
			CurrentDate: s.value,
			Format:      current.Format,
			ContentType: current.ContentType,
		})
		if err != nil {
			return err
		}
		if n < bounds.Minimum || n > bounds.Maximum {
			return fmt.Errorf("%w: %d not in %d..%d", ErrOutOfRange, n, bounds.Minimum, bounds.Maximum)
		}
		value, err := s.engine.CleanDigitSectionValue(n, bounds, current)
		if err != nil {
			return err
		}
		s.update(value)
		return nil
	}

	option, ok := matchOption(s.engine.LetterEditingOptions(current.Type, current.Format), raw)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoMatch, raw)
	}
	s.update(option)
	return nil
}

func matchOption(options []string, raw string) (string, bool) {
	for _, o := range options {
		if strings.EqualFold(o, raw) {
			return o, true
		}
	}
	lower := strings.ToLower(raw)
	for _, o := range options {
		if strings.HasPrefix(strings.ToLower(o), lower) {
			return o, true
		}
	}
	return "", false
}

// Clear empties the active section. The field no longer has a value.
func (s *Session[D]) Clear() {
	if s.active < 0 {
		return
	}
	s.sections[s.active].Value = ""
	s.sections[s.active].Modified = true
	s.sections = field.AddPositionProperties(s.sections, s.cfg.RTL)
	s.value = nil
}

func (s *Session[D]) update(value string) {
	s.sections[s.active].Value = value
	s.sections[s.active].Modified = true
	s.sections = field.AddPositionProperties(s.sections, s.cfg.RTL)
	s.derive()
}

// derive recomputes the value once every section is filled. Only the
// edited sections are merged so fields absent from the format keep the
// value of the date being edited.
func (s *Session[D]) derive() {
	for _, sec := range s.sections {
		if sec.Type != field.TypeEmpty && sec.Value == "" {
			s.value = nil
			return
		}
	}
	parsed, ok := s.engine.DateFromSections(s.sections)
	if !ok || !s.engine.Adapter.IsValid(parsed) {
		s.value = nil
		return
	}
	base := s.reference
	if s.value != nil {
		base = *s.value
	}
	merged := s.engine.MergeDateIntoReferenceDate(parsed, s.sections, base, true)
	s.setValue(&merged)
}

// setValue stores a valid value and keeps it as the reference, so a field
// cleared and typed again keeps the fields it still shows.
func (s *Session[D]) setValue(value *D) {
	s.value = nil
	if value == nil || !s.engine.Adapter.IsValid(*value) {
		return
	}
	v := *value
	s.value = &v
	s.reference = v
}

// Value is the date the sections describe, nil while incomplete.
func (s *Session[D]) Value() *D {
	if s.value == nil {
		return nil
	}
	v := *s.value
	return &v
}

// Reference is the date edits are merged into while there is no value:
// the last valid value, or the reference date before there was one.
func (s *Session[D]) Reference() D { return s.reference }

// SetValue replaces the value and rebuilds the sections.
func (s *Session[D]) SetValue(ctx context.Context, value *D) error {
	s.setValue(value)
	return s.build(ctx)
}

// SetFormat changes the format and rebuilds the sections.
func (s *Session[D]) SetFormat(ctx context.Context, format string) error {
	previous := s.cfg.Format
	s.cfg.Format = format
	if err := s.build(ctx); err != nil {
		s.cfg.Format = previous
		return err
	}
	return nil
}
