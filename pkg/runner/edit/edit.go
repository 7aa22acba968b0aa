// Package edit runs the interactive field editor.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/datefield/pkg/app"
	tuiapp "tableflip.dev/datefield/pkg/tui/app"
)

type Edit struct {
	Service  *app.Service
	Settings app.Settings
	// Preset is loaded first and receives saves.
	Preset string
	// SaveAs overrides the preset saves go to.
	SaveAs string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("edit: no service")
	}
	st, err := n.Service.Resolve(n.Preset, n.Settings)
	if err != nil {
		return err
	}
	name := n.SaveAs
	if name == "" {
		name = n.Preset
	}
	return tuiapp.Run(ctx, n.Service, st, name)
}
