// Package adjust applies editing commands to a field and prints the result.
package adjust

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/datefield/pkg/app"
	"tableflip.dev/datefield/pkg/runner/sections"
)

type Adjust struct {
	Service  *app.Service
	Settings app.Settings
	Preset   string
	// Section is focused before the commands run.
	Section  int
	Commands []string
	JSON     bool
	Out      io.Writer
}

func (n *Adjust) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("adjust: no service")
	}
	st, err := n.Service.Resolve(n.Preset, n.Settings)
	if err != nil {
		return err
	}
	s, err := n.Service.Session(ctx, st)
	if err != nil {
		return err
	}
	if err := s.Focus(n.Section); err != nil {
		return err
	}
	for i, c := range n.Commands {
		if err := s.Apply(c); err != nil {
			return fmt.Errorf("adjust: command %d %q: %w", i, c, err)
		}
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	return sections.Print(out, s, n.JSON, false)
}
