package datefield

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"

	"tableflip.dev/datefield/pkg/field"
)

// KeyMap binds keys to field commands.
type KeyMap struct {
	Increment     key.Binding
	Decrement     key.Binding
	PageIncrement key.Binding
	PageDecrement key.Binding
	Minimum       key.Binding
	Maximum       key.Binding
	Left          key.Binding
	Right         key.Binding
	Clear         key.Binding
	Save          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment:     key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "increment")),
		Decrement:     key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "decrement")),
		PageIncrement: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "+5")),
		PageDecrement: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "-5")),
		Minimum:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "minimum")),
		Maximum:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "maximum")),
		Left:          key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("left", "previous")),
		Right:         key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("right/tab", "next")),
		Clear:         key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "clear")),
		Save:          key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save preset")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// adjustments maps the adjusting bindings to key codes.
func (k KeyMap) adjustments() []struct {
	binding key.Binding
	code    field.KeyCode
} {
	return []struct {
		binding key.Binding
		code    field.KeyCode
	}{
		{k.Increment, field.KeyArrowUp},
		{k.Decrement, field.KeyArrowDown},
		{k.PageIncrement, field.KeyPageUp},
		{k.PageDecrement, field.KeyPageDown},
		{k.Minimum, field.KeyHome},
		{k.Maximum, field.KeyEnd},
	}
}

// HelpText renders the short help for every enabled binding.
func (k KeyMap) HelpText() string {
	bindings := []key.Binding{
		k.Increment, k.Decrement, k.PageIncrement, k.PageDecrement, k.Minimum, k.Maximum,
		k.Left, k.Right, k.Clear, k.Save, k.Help, k.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
