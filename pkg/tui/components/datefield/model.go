// Package datefield is a Bubble Tea component that edits a date one
// section at a time.
package datefield

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/datefield/pkg/dateadapter"
	"tableflip.dev/datefield/pkg/field"
	"tableflip.dev/datefield/pkg/session"
	"tableflip.dev/datefield/pkg/tui/components/calendar"
	"tableflip.dev/datefield/pkg/tui/theme"
)

// SaveMsg asks the host to persist the field as a preset.
type SaveMsg struct {
	Format string
	Value  *time.Time
}

// ChangeMsg reports that the value changed.
type ChangeMsg struct {
	Value *time.Time
}

// HelpMsg asks the host to toggle the help.
type HelpMsg struct{}

// Model drives a session from key presses.
type Model struct {
	session *session.Session[time.Time]
	keys    KeyMap
	theme   theme.Theme

	// typed holds the characters entered into the active section since
	// it was focused.
	typed  string
	status string
	err    error
	width  int
}

// NewModel wraps s and focuses its first section.
func NewModel(s *session.Session[time.Time]) *Model {
	m := &Model{
		session: s,
		keys:    DefaultKeyMap(),
		theme:   theme.Default(),
		width:   60,
	}
	s.Home()
	return m
}

// Session returns the edited session.
func (m *Model) Session() *session.Session[time.Time] { return m.session }

// SetStatus replaces the status line.
func (m *Model) SetStatus(status string) {
	m.status = status
	m.err = nil
}

// SetError shows err on the status line.
func (m *Model) SetError(err error) {
	m.err = err
}

// SetSize updates the wrap width.
func (m *Model) SetSize(width, _ int) {
	if width > 0 {
		m.width = width
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles key presses and window sizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	before := m.session.Value()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m.saveCmd()
	case key.Matches(msg, m.keys.Help):
		return func() tea.Msg { return HelpMsg{} }
	case key.Matches(msg, m.keys.Left):
		m.typed = ""
		m.session.MoveLeft()
		return nil
	case key.Matches(msg, m.keys.Right):
		m.typed = ""
		m.session.MoveRight()
		return nil
	case key.Matches(msg, m.keys.Clear):
		m.typed = ""
		m.session.Clear()
		return m.changed(before)
	}

	for _, a := range m.keys.adjustments() {
		if key.Matches(msg, a.binding) {
			m.typed = ""
			m.apply(m.session.Adjust(a.code))
			return m.changed(before)
		}
	}

	if text := msg.Text; text != "" {
		m.typeText(text)
		return m.changed(before)
	}
	return nil
}

// typeText appends text to the active section. A digit that would
// overflow the section starts a new number, a letter that matches no
// option starts a new prefix.
func (m *Model) typeText(text string) {
	current, ok := m.session.ActiveSection()
	if !ok {
		m.session.Home()
		if current, ok = m.session.ActiveSection(); !ok {
			return
		}
	}
	r := []rune(text)
	if len(r) != 1 {
		return
	}
	c := r[0]
	if current.IsDigit() != unicode.IsDigit(c) {
		m.err = errors.New("datefield: " + string(current.Type) + " takes " + string(current.ContentType))
		return
	}

	candidate := m.typed + text
	err := m.session.SetSectionValue(candidate)
	if errors.Is(err, session.ErrOutOfRange) && strings.Trim(candidate, "0") == "" {
		// Leading zeros wait for the next digit.
		m.typed = candidate
		return
	}
	if err != nil && m.typed != "" {
		candidate = text
		err = m.session.SetSectionValue(candidate)
	}
	if err != nil {
		m.typed = ""
		m.apply(err)
		return
	}
	m.typed = candidate
	m.apply(nil)

	if current.IsDigit() && len(m.typed) >= digitsFor(current) {
		m.typed = ""
		m.session.MoveRight()
	}
}

// digitsFor is the digit count after which typing moves on.
func digitsFor(s field.Section) int {
	if s.MaxLength > 0 {
		return s.MaxLength
	}
	if s.Type == field.TypeYear && len(s.Format) >= 4 {
		return 4
	}
	return 2
}

func (m *Model) apply(err error) {
	m.err = err
	if err == nil {
		m.status = ""
	}
}

func (m *Model) changed(before *time.Time) tea.Cmd {
	after := m.session.Value()
	if sameValue(before, after) {
		return nil
	}
	return func() tea.Msg { return ChangeMsg{Value: after} }
}

func sameValue(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func (m *Model) saveCmd() tea.Cmd {
	msg := SaveMsg{Format: m.session.Format(), Value: m.session.Value()}
	return func() tea.Msg { return msg }
}

// View renders the sections, the value and the help line.
func (m *Model) View() string {
	th := m.theme
	var b strings.Builder
	b.WriteString(th.Field.Title.Render(m.session.Format()))
	b.WriteString("\n")
	b.WriteString(th.Field.Frame.Render(m.renderSections()))
	b.WriteString("\n")
	if c := m.renderCalendar(); c != "" {
		b.WriteString(c)
		b.WriteString("\n")
	}

	value := "none"
	if v := m.session.Value(); v != nil {
		value = v.Format(time.RFC3339)
	}
	b.WriteString(th.Field.Value.Render("value " + value))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(th.Footer.Error.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(th.Footer.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(th.Footer.Help.Render(wordwrap.String(m.keys.HelpText(), m.width)))
	return b.String()
}

// renderCalendar shows the month of the value when the format edits days.
func (m *Model) renderCalendar() string {
	v := m.session.Value()
	if v == nil {
		return ""
	}
	hasDay := false
	for _, s := range m.session.Sections() {
		if s.Type == field.TypeDay {
			hasDay = true
			break
		}
	}
	if !hasDay {
		return ""
	}
	e := m.session.Engine()
	opts := m.theme.Calendar
	if a, ok := e.Adapter.(*dateadapter.Adapter); ok {
		opts.WeekStart = a.Locale().WeekStart
	}
	return calendar.Month(*v, e.Adapter.Date(e.Timezone), opts)
}

func (m *Model) renderSections() string {
	th := m.theme.Field
	sections := m.session.Sections()
	if len(sections) == 0 {
		return th.Placeholder.Render("empty format")
	}
	parts := make([]string, 0, len(sections)*3)
	for i, s := range sections {
		if sep := field.CleanString(s.StartSeparator); sep != "" {
			parts = append(parts, th.Separator.Render(sep))
		}
		text := field.VisibleValue(s, field.TargetNonInput)
		style := th.Section
		if s.Value == "" {
			style = th.Placeholder
		}
		if i == m.session.Active() {
			style = th.Active
		}
		if text != "" {
			parts = append(parts, style.Render(text))
		}
		if sep := field.CleanString(s.EndSeparator); sep != "" {
			parts = append(parts, th.Separator.Render(sep))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
