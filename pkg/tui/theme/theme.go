package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/datefield/pkg/tui/components/calendar"
)

const (
	foreground = "#e4e4e4"
	background = "#1c1c1c"
	accent     = "#ff87d7"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Field    FieldTheme
	Calendar calendar.Options
	Footer   FooterTheme
}

// FieldTheme styles the sections of a date field.
type FieldTheme struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	Section     lipgloss.Style
	Active      lipgloss.Style
	Placeholder lipgloss.Style
	Separator   lipgloss.Style
	Value       lipgloss.Style
}

// FooterTheme groups styles used by the status and help lines.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Muted blends the foreground toward the background by t, 0 to 1.
func Muted(t float64) string {
	fg, err := colorful.Hex(foreground)
	if err != nil {
		return foreground
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return foreground
	}
	return fg.BlendLab(bg, t).Clamped().Hex()
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Bold(true).
		Reverse(true)
	faint := lipgloss.Color(Muted(0.55))
	dim := lipgloss.Color(Muted(0.35))

	cal := calendar.DefaultOptions()
	cal.HeaderStyle = lipgloss.NewStyle().Foreground(faint).Bold(true)
	cal.EmptyStyle = lipgloss.NewStyle().Foreground(faint)
	cal.DayStyle = lipgloss.NewStyle().Foreground(dim)
	cal.SelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(accent)).Foreground(lipgloss.Color(background))

	return Theme{
		Field: FieldTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:       lipgloss.NewStyle().Bold(true),
			Section:     lipgloss.NewStyle(),
			Active:      active,
			Placeholder: lipgloss.NewStyle().Foreground(faint),
			Separator:   lipgloss.NewStyle().Foreground(dim),
			Value:       lipgloss.NewStyle().Foreground(dim),
		},
		Calendar: cal,
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(dim),
			Status: lipgloss.NewStyle().Foreground(dim),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
