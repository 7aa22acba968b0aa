// Package preset saves, lists and removes stored field presets.
package preset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/datefield/pkg/app"
	"tableflip.dev/datefield/pkg/printers"
	"tableflip.dev/datefield/pkg/store"
)

// Save stores Settings, layered over the defaults, under Name.
type Save struct {
	Service  *app.Service
	Name     string
	Settings app.Settings
	Out      io.Writer
}

func (n *Save) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("preset: no service")
	}
	st, err := n.Service.Resolve("", n.Settings)
	if err != nil {
		return err
	}
	// Building the session validates the format before it is stored.
	if _, err := n.Service.Session(ctx, st); err != nil {
		return err
	}
	p, err := n.Service.SavePreset(n.Name, st)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(writer(n.Out), "saved preset %q (%s)\n", p.Name, p.Format)
	return nil
}

type List struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("preset: no service")
	}
	all, err := n.Service.ListPresets(ctx)
	if err != nil && len(all) == 0 {
		return err
	}
	out := writer(n.Out)
	if n.JSON {
		if all == nil {
			all = []*store.Preset{}
		}
		b, merr := json.MarshalIndent(all, "", "  ")
		if merr != nil {
			return merr
		}
		_, _ = fmt.Fprintln(out, string(b))
		return err
	}
	pp := printers.PrettyPrint{Out: out, Active: -1}
	pp.NewLine()
	pp.Title("Presets")
	pp.Presets(all...)
	return err
}

type Delete struct {
	Service *app.Service
	Name    string
	Out     io.Writer
}

func (n *Delete) Do(context.Context) error {
	if n.Service == nil {
		return errors.New("preset: no service")
	}
	if err := n.Service.DeletePreset(n.Name); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(writer(n.Out), "removed preset %q\n", n.Name)
	return nil
}

func writer(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
