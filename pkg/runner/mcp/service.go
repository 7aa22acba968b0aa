// Package mcp provides the Model Context Protocol server integration for
// datefield.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/datefield/pkg/app"
	"tableflip.dev/datefield/pkg/field"
	"tableflip.dev/datefield/pkg/format/excel"
	"tableflip.dev/datefield/pkg/store"
)

// Service exposes the field engine to MCP tools.
type Service struct {
	App *app.Service
}

// FieldOptions select and configure a field. Preset, when set, is applied
// before the other options.
type FieldOptions struct {
	Preset              string `json:"preset,omitempty"`
	Format              string `json:"format,omitempty"`
	Locale              string `json:"locale,omitempty"`
	Timezone            string `json:"timezone,omitempty"`
	Value               string `json:"value,omitempty"`
	ValueType           string `json:"valueType,omitempty"`
	RTL                 bool   `json:"rtl,omitempty"`
	Spacious            bool   `json:"spacious,omitempty"`
	RespectLeadingZeros bool   `json:"respectLeadingZeros,omitempty"`
	MinutesStep         int    `json:"minutesStep,omitempty"`
}

func (o FieldOptions) settings() app.Settings {
	st := app.Settings{
		Format:              o.Format,
		Locale:              o.Locale,
		Timezone:            o.Timezone,
		Value:               o.Value,
		ValueType:           o.ValueType,
		RTL:                 o.RTL,
		RespectLeadingZeros: o.RespectLeadingZeros,
		MinutesStep:         o.MinutesStep,
	}
	if o.Spacious {
		st.Density = string(field.DensitySpacious)
	}
	return st
}

// AdjustOptions focus Section and run Commands in order.
type AdjustOptions struct {
	FieldOptions
	Section  int      `json:"section"`
	Commands []string `json:"commands"`
}

// MergeOptions describe edited sections to turn back into a date.
type MergeOptions struct {
	FieldOptions
	Sections []field.Section `json:"sections"`
	// Reference receives the section values, RFC 3339. Without one the
	// parsed date is returned as is.
	Reference  string `json:"reference,omitempty"`
	OnlyEdited bool   `json:"onlyEdited,omitempty"`
}

// MergeResult is the date built from sections.
type MergeResult struct {
	Parsed string `json:"parsed"`
	Value  string `json:"value"`
}

// ExcelResult is a translated Excel number format.
type ExcelResult struct {
	NumFmt   string       `json:"numFmt"`
	Format   string       `json:"format"`
	Snapshot app.Snapshot `json:"snapshot"`
}

// ErrNotParsable is returned when sections do not describe a date.
var ErrNotParsable = errors.New("sections do not describe a valid date")

// NewService builds a service wrapper over the app service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) resolve(o FieldOptions) (app.Settings, error) {
	if s.App == nil {
		return app.Settings{}, errors.New("app service is not configured")
	}
	return s.App.Resolve(o.Preset, o.settings())
}

// Split returns the sections of a field.
func (s *Service) Split(ctx context.Context, o FieldOptions) (*app.Snapshot, error) {
	st, err := s.resolve(o)
	if err != nil {
		return nil, err
	}
	sess, err := s.App.Session(ctx, st)
	if err != nil {
		return nil, err
	}
	snap := app.Snap(sess)
	return &snap, nil
}

// Adjust runs editing commands and returns the resulting field.
func (s *Service) Adjust(ctx context.Context, o AdjustOptions) (*app.Snapshot, error) {
	st, err := s.resolve(o.FieldOptions)
	if err != nil {
		return nil, err
	}
	sess, err := s.App.Session(ctx, st)
	if err != nil {
		return nil, err
	}
	if err := sess.Focus(o.Section); err != nil {
		return nil, err
	}
	for i, c := range o.Commands {
		if err := sess.Apply(c); err != nil {
			return nil, fmt.Errorf("command %d %q: %w", i, c, err)
		}
	}
	snap := app.Snap(sess)
	return &snap, nil
}

// Merge parses sections and merges them into the reference date.
func (s *Service) Merge(ctx context.Context, o MergeOptions) (*MergeResult, error) {
	if len(o.Sections) == 0 {
		return nil, errors.New("sections are required")
	}
	st, err := s.resolve(o.FieldOptions)
	if err != nil {
		return nil, err
	}
	engine, err := s.App.Engine(st)
	if err != nil {
		return nil, err
	}
	parsed, ok := engine.DateFromSections(o.Sections)
	if !ok || !engine.Adapter.IsValid(parsed) {
		return nil, ErrNotParsable
	}
	out := &MergeResult{Parsed: app.FormatValue(&parsed), Value: app.FormatValue(&parsed)}
	if o.Reference == "" {
		return out, nil
	}
	ref, err := app.ParseValue(o.Reference)
	if err != nil {
		return nil, err
	}
	merged := engine.MergeDateIntoReferenceDate(parsed, o.Sections, *ref, o.OnlyEdited)
	out.Value = app.FormatValue(&merged)
	return out, nil
}

// TranslateExcel converts an Excel number format and splits the result.
func (s *Service) TranslateExcel(ctx context.Context, numFmt string, o FieldOptions) (*ExcelResult, error) {
	format, err := excel.Translate(numFmt)
	if err != nil {
		return nil, err
	}
	o.Format = format
	snap, err := s.Split(ctx, o)
	if err != nil {
		return nil, err
	}
	return &ExcelResult{NumFmt: numFmt, Format: format, Snapshot: *snap}, nil
}

// ListPresets returns every stored preset.
func (s *Service) ListPresets(ctx context.Context) ([]*store.Preset, error) {
	if s.App == nil {
		return nil, errors.New("app service is not configured")
	}
	return s.App.ListPresets(ctx)
}

// Preset returns the named preset.
func (s *Service) Preset(name string) (*store.Preset, error) {
	if s.App == nil {
		return nil, errors.New("app service is not configured")
	}
	if name == "" {
		return nil, errors.New("preset name is required")
	}
	return s.App.Preset(name)
}
