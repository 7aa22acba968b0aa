// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datefield/pkg/app"
	"tableflip.dev/datefield/pkg/field"
)

// FieldOptions captures the flags that describe a date field.
type FieldOptions struct {
	Format              string
	Date                string
	Locale              string
	Timezone            string
	RTL                 bool
	Spacious            bool
	RespectLeadingZeros bool
	MinutesStep         int
	ValueType           string
	Preset              string
}

// AddFieldArgs wires field flags on the provided command.
func AddFieldArgs(cmd *cobra.Command, o *FieldOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Value shown in the field, RFC 3339.")
	cmd.Flags().StringVarP(&o.Locale, "locale", "l", "",
		"Locale for month and week day names (en-US, en-GB).")
	cmd.Flags().StringVar(&o.Timezone, "timezone", "",
		`IANA timezone, "default" or "system".`)
	cmd.Flags().BoolVar(&o.RTL, "rtl", false,
		"Lay the field out right to left.")
	cmd.Flags().BoolVar(&o.Spacious, "spacious", false,
		"Pad separators with spaces.")
	cmd.Flags().BoolVar(&o.RespectLeadingZeros, "respect-leading-zeros", false,
		"Only keep leading zeros where the format has them.")
	cmd.Flags().IntVar(&o.MinutesStep, "minutes-step", 0,
		"Step used when adjusting minutes.")
	cmd.Flags().StringVar(&o.ValueType, "value-type", "",
		"What the field edits: date, time or date-time.")
	AddPresetArg(cmd, o)
}

// AddPresetArg registers the flag that loads a stored preset.
func AddPresetArg(cmd *cobra.Command, o *FieldOptions) {
	cmd.Flags().StringVarP(&o.Preset, "preset", "p", "",
		"Stored preset applied before the other flags.")
}

// SetFormat takes the format from the first argument, if any.
func (o *FieldOptions) SetFormat(args []string) {
	if len(args) > 0 {
		o.Format = args[0]
	}
}

// Settings converts the flags into app settings.
func (o *FieldOptions) Settings() app.Settings {
	st := app.Settings{
		Format:              o.Format,
		Locale:              o.Locale,
		Timezone:            o.Timezone,
		RTL:                 o.RTL,
		RespectLeadingZeros: o.RespectLeadingZeros,
		MinutesStep:         o.MinutesStep,
		ValueType:           o.ValueType,
		Value:               o.Date,
	}
	if o.Spacious {
		st.Density = string(field.DensitySpacious)
	}
	return st
}
