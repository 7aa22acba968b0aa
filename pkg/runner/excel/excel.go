// Package excel translates an Excel number format and prints its sections.
package excel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"tableflip.dev/datefield/pkg/app"
	"tableflip.dev/datefield/pkg/format/excel"
	"tableflip.dev/datefield/pkg/runner/sections"
)

type Excel struct {
	Service *app.Service
	// NumFmt is a number format code, or the id of a built in format.
	NumFmt   string
	Settings app.Settings
	JSON     bool
	Out      io.Writer
}

func (n *Excel) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("excel: no service")
	}
	numFmt := n.NumFmt
	if id, err := strconv.Atoi(numFmt); err == nil {
		if numFmt, err = excel.BuiltIn(id); err != nil {
			return err
		}
	}
	format, err := excel.Translate(numFmt)
	if err != nil {
		return err
	}
	st := n.Settings
	st.Format = format
	st, err = n.Service.Resolve("", st)
	if err != nil {
		return err
	}
	s, err := n.Service.Session(ctx, st)
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		b, err := json.MarshalIndent(map[string]any{
			"numFmt":   numFmt,
			"format":   format,
			"snapshot": app.Snap(s),
		}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	_, _ = fmt.Fprintf(out, "%s -> %s\n", numFmt, format)
	return sections.Print(out, s, false, false)
}
