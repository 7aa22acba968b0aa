// Package app is the date field editor: a datefield component plus preset
// saving and a watch on the preset store.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datefield/pkg/app"
	"tableflip.dev/datefield/pkg/store"
	"tableflip.dev/datefield/pkg/tui/components/datefield"
	"tableflip.dev/datefield/pkg/tui/components/help"
)

// DefaultPresetName is used by ctrl+s when no preset name was given.
const DefaultPresetName = "last"

// Model hosts the field editor.
type Model struct {
	ctx      context.Context
	svc      *app.Service
	settings app.Settings
	// presetName is the preset saves go to.
	presetName string

	field    *datefield.Model
	help     *help.Model
	showHelp bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates the editor for settings. Saves go to presetName.
func New(ctx context.Context, svc *app.Service, settings app.Settings, presetName string) (*Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := svc.Session(ctx, settings)
	if err != nil {
		return nil, err
	}
	if presetName == "" {
		presetName = DefaultPresetName
	}
	return &Model{
		ctx:        ctx,
		svc:        svc,
		settings:   settings,
		presetName: presetName,
		field:      datefield.NewModel(s),
		help:       help.New(60, 20),
	}, nil
}

// Run launches the Bubble Tea program.
func Run(ctx context.Context, svc *app.Service, settings app.Settings, presetName string) error {
	m, err := New(ctx, svc, settings, presetName)
	if err != nil {
		return err
	}
	defer m.stopWatch()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

type savedMsg struct {
	preset *store.Preset
	err    error
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil || svc.Presets == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) saveCmd(msg datefield.SaveMsg) tea.Cmd {
	st := m.settings
	st.Format = msg.Format
	st.Value = app.FormatValue(msg.Value)
	svc, name := m.svc, m.presetName
	return func() tea.Msg {
		p, err := svc.SavePreset(name, st)
		return savedMsg{preset: p, err: err}
	}
}

func (m *Model) handleWatchEvent(ev store.Event) {
	switch ev.Type {
	case store.EventPresetChanged:
		if ev.Name == m.presetName {
			m.field.SetStatus(fmt.Sprintf("preset %q changed on disk", ev.Name))
		}
	case store.EventPresetsInvalidated:
		m.field.SetStatus("presets changed on disk")
	}
}

// Field returns the hosted component.
func (m *Model) Field() *datefield.Model { return m.field }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.field.Init(), startWatchCmd(m.ctx, m.svc))
}

// Update routes messages to the field and handles saves and watch events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.SetSize(msg.Width, msg.Height)
	case tea.KeyPressMsg:
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			_, cmd := m.help.Update(msg)
			return m, cmd
		}
	case datefield.HelpMsg:
		m.showHelp = !m.showHelp
		return m, nil
	case datefield.SaveMsg:
		return m, m.saveCmd(msg)
	case datefield.ChangeMsg:
		m.settings.Value = app.FormatValue(msg.Value)
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.field.SetError(msg.err)
		} else {
			m.field.SetStatus(fmt.Sprintf("saved preset %q", msg.preset.Name))
		}
		return m, nil
	case watchStartedMsg:
		if msg.err != nil {
			m.field.SetError(fmt.Errorf("watch: %w", msg.err))
			return m, nil
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		return m, m.waitForWatch()
	case watchStoppedMsg:
		m.stopWatch()
		return m, nil
	}

	_, cmd := m.field.Update(msg)
	return m, cmd
}

// View renders the field, or the help when it is open.
func (m *Model) View() string {
	if m.showHelp {
		return m.help.View()
	}
	return m.field.View()
}
