package app

import (
	"time"

	"tableflip.dev/datefield/pkg/field"
	"tableflip.dev/datefield/pkg/session"
)

// Snapshot is a transport friendly view of a session.
type Snapshot struct {
	Format   string                `json:"format"`
	Input    string                `json:"input"`
	Display  string                `json:"display"`
	Value    string                `json:"value,omitempty"`
	Active   int                   `json:"active"`
	Sections []field.Section       `json:"sections"`
	Ordering field.SectionOrdering `json:"ordering"`
}

// Snap captures the current state of s.
func Snap(s *session.Session[time.Time]) Snapshot {
	return Snapshot{
		Format:   s.Format(),
		Input:    s.Input(),
		Display:  s.Display(),
		Value:    FormatValue(s.Value()),
		Active:   s.Active(),
		Sections: s.Sections(),
		Ordering: s.Ordering(),
	}
}
