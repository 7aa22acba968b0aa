package datefield

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datefield/pkg/dateadapter"
	"tableflip.dev/datefield/pkg/field"
	"tableflip.dev/datefield/pkg/locale"
	"tableflip.dev/datefield/pkg/session"
)

var now = time.Date(2023, time.January, 5, 14, 7, 9, 0, time.UTC)

func newModel(t *testing.T, format string, value *time.Time) *Model {
	t.Helper()
	a := dateadapter.New(
		dateadapter.WithClock(func() time.Time { return now }),
		dateadapter.WithLocation(time.UTC),
	)
	engine := field.NewEngine[time.Time](a, "UTC", locale.NewEnglish(nil))
	s, err := session.New(context.Background(), engine, session.Config[time.Time]{Format: format, Value: value})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return NewModel(s)
}

func press(m *Model, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typed(text string) []tea.KeyPressMsg {
	out := make([]tea.KeyPressMsg, 0, len(text))
	for _, r := range text {
		out = append(out, tea.KeyPressMsg{Text: string(r), Code: r})
	}
	return out
}

func TestTypingFillsSectionsAndAdvances(t *testing.T) {
	m := newModel(t, "MM/DD/YYYY", nil)

	press(m, typed("12")...)
	if got := m.Session().Active(); got != 1 {
		t.Fatalf("expected the day to be active, got %d", got)
	}
	press(m, typed("25")...)
	cmd := press(m, typed("2023")...)

	value := m.Session().Value()
	if value == nil {
		t.Fatalf("expected a value")
	}
	want := time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
	if !value.Equal(want) {
		t.Fatalf("expected %v, got %v", want, value)
	}
	if cmd == nil {
		t.Fatalf("expected a change command")
	}
	if _, ok := cmd().(ChangeMsg); !ok {
		t.Fatalf("expected a ChangeMsg")
	}
}

func TestTypingOverflowStartsNewNumber(t *testing.T) {
	m := newModel(t, "MM/DD/YYYY", nil)
	press(m, typed("13")...)
	sec := m.Session().Sections()[0]
	if sec.Value != "03" {
		t.Fatalf("expected 03, got %q", sec.Value)
	}
	if got := m.Session().Active(); got != 0 {
		t.Fatalf("expected the month to stay active, got %d", got)
	}
}

func TestTypingLeadingZero(t *testing.T) {
	m := newModel(t, "MM/DD/YYYY", nil)
	press(m, typed("0")...)
	if sec := m.Session().Sections()[0]; sec.Value != "" {
		t.Fatalf("expected the zero to wait, got %q", sec.Value)
	}
	press(m, typed("7")...)
	if sec := m.Session().Sections()[0]; sec.Value != "07" {
		t.Fatalf("expected 07, got %q", sec.Value)
	}
	if got := m.Session().Active(); got != 1 {
		t.Fatalf("expected the day to be active, got %d", got)
	}
}

func TestTypingLetters(t *testing.T) {
	m := newModel(t, "MMMM", nil)
	press(m, typed("Jul")...)
	if sec := m.Session().Sections()[0]; sec.Value != "July" {
		t.Fatalf("expected July, got %q", sec.Value)
	}
	press(m, typed("x")...)
	if m.err == nil {
		t.Fatalf("expected an error for an unmatched letter")
	}
}

func TestArrowKeysAdjust(t *testing.T) {
	v := time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)
	m := newModel(t, "MM/DD/YYYY", &v)

	cmd := press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	if cmd == nil {
		t.Fatalf("expected a change command")
	}
	want := time.Date(2023, time.February, 5, 0, 0, 0, 0, time.UTC)
	if got := m.Session().Value(); got == nil || !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyRight}, tea.KeyPressMsg{Code: tea.KeyDown})
	want = time.Date(2023, time.February, 4, 0, 0, 0, 0, time.UTC)
	if got := m.Session().Value(); got == nil || !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEnd})
	if sec := m.Session().Sections()[1]; sec.Value != "28" {
		t.Fatalf("expected 28, got %q", sec.Value)
	}
}

func TestBackspaceClears(t *testing.T) {
	v := time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)
	m := newModel(t, "MM/DD/YYYY", &v)
	cmd := press(m, tea.KeyPressMsg{Code: tea.KeyBackspace})
	if m.Session().Value() != nil {
		t.Fatalf("expected the value to be cleared")
	}
	if cmd == nil {
		t.Fatalf("expected a change command")
	}
	msg, ok := cmd().(ChangeMsg)
	if !ok || msg.Value != nil {
		t.Fatalf("expected an empty ChangeMsg, got %#v", msg)
	}
}

func TestSaveAndQuit(t *testing.T) {
	m := newModel(t, "MM/DD/YYYY", nil)
	cmd := press(m, tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatalf("expected a save command")
	}
	save, ok := cmd().(SaveMsg)
	if !ok || save.Format != "MM/DD/YYYY" {
		t.Fatalf("expected a SaveMsg for the format, got %#v", save)
	}

	cmd = press(m, tea.KeyPressMsg{Text: "q", Code: 'q'})
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewShowsPlaceholdersAndHelp(t *testing.T) {
	m := newModel(t, "MM/DD/YYYY", nil)
	m.SetSize(200, 10)
	view := m.View()
	for _, want := range []string{"MM/DD/YYYY", "DD", "YYYY", "value none", "increment"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	m.SetStatus("saved")
	if !strings.Contains(m.View(), "saved") {
		t.Fatalf("expected the status line")
	}
}

func TestHelpTextWraps(t *testing.T) {
	m := newModel(t, "YYYY", nil)
	m.SetSize(20, 10)
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) < 6 {
		t.Fatalf("expected the help to wrap, got:\n%s", view)
	}
}

func TestHelpKeyAsksHost(t *testing.T) {
	m := newModel(t, "MM/DD/YYYY", nil)
	cmd := press(m, tea.KeyPressMsg{Text: "?", Code: '?'})
	if cmd == nil {
		t.Fatalf("expected a help command")
	}
	if _, ok := cmd().(HelpMsg); !ok {
		t.Fatalf("expected HelpMsg")
	}
	if m.err != nil {
		t.Fatalf("expected ? not to be typed, got %v", m.err)
	}
}

func TestCalendarFollowsValue(t *testing.T) {
	v := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	m := newModel(t, "MM/DD/YYYY", &v)
	if !strings.Contains(m.View(), "February 2024") {
		t.Fatalf("expected the month, got:\n%s", m.View())
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	if !strings.Contains(m.View(), "March 2024") {
		t.Fatalf("expected the month to follow the value, got:\n%s", m.View())
	}

	m = newModel(t, "HH:mm", &v)
	if strings.Contains(m.View(), "February 2024") {
		t.Fatalf("expected no calendar without a day section")
	}
}
