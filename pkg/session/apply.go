package session

import (
	"fmt"
	"strings"

	"tableflip.dev/datefield/pkg/field"
)

// Apply runs one editing command against the session. Commands are the
// adjusting key codes (ArrowUp, PageDown, Home, ...), ArrowLeft,
// ArrowRight and Tab to move, Backspace or Delete to clear the active
// section, and "=text" to type text into it.
func (s *Session[D]) Apply(command string) error {
	if text, ok := strings.CutPrefix(command, "="); ok {
		return s.SetSectionValue(text)
	}
	if key, ok := field.ParseKeyCode(command); ok {
		return s.Adjust(key)
	}
	switch command {
	case "ArrowLeft", "ShiftTab":
		s.MoveLeft()
	case "ArrowRight", "Tab":
		s.MoveRight()
	case "Backspace", "Delete":
		if s.active < 0 {
			return ErrNoActiveSection
		}
		s.Clear()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	return nil
}
