// Package calendar renders a month grid for the date being edited.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/charmbracelet/lipgloss/v2"
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	DayStyle      lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowTitle     bool
	ShowHeader    bool
	// WeekStart is the first column of every row.
	WeekStart time.Weekday
}

// Header returns the two letter week day names starting at weekStart.
func Header(weekStart time.Weekday) string {
	names := make([]string, 7)
	for i := range names {
		names[i] = ((weekStart + time.Weekday(i)) % 7).String()[0:2]
	}
	return strings.Join(names, " ")
}

// Render produces a multi-line calendar string for the given month.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	header := Header(opts.WeekStart)
	if opts.ShowTitle {
		title := fmt.Sprintf("%s %d", month.Month(), month.Year())
		pad := max((len(header)-len(title))/2, 0)
		lines = append(lines, opts.TitleStyle.Render(strings.Repeat(" ", pad)+title))
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(header))
	}

	startOffset := (int(first.Weekday()) - int(opts.WeekStart) + 7) % 7
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

// Month renders the month of selected with its day highlighted, and today
// marked when it falls in the same month.
func Month(selected, today time.Time, opts Options) string {
	days := []Day{{Day: selected.Day(), IsSelected: true}}
	if today.Year() == selected.Year() && today.Month() == selected.Month() {
		if today.Day() == selected.Day() {
			days[0].IsToday = true
		} else {
			days = append(days, Day{Day: today.Day(), IsToday: true})
		}
	}
	return Render(selected, days, opts)
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.DayStyle
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	return int(datetime.DaysInMonth(month.Year(), datetime.Month(month.Month())))
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:    lipgloss.NewStyle().Italic(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		DayStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		ShowTitle:     true,
		ShowHeader:    true,
		WeekStart:     time.Sunday,
	}
}
