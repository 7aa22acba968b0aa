// Package sections prints the sections of a format.
package sections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datefield/pkg/app"
	"tableflip.dev/datefield/pkg/dateadapter"
	"tableflip.dev/datefield/pkg/printers"
	"tableflip.dev/datefield/pkg/session"
)

// Sections splits a format and prints the result.
type Sections struct {
	Service  *app.Service
	Settings app.Settings
	Preset   string
	JSON     bool
	// Calendar also prints the month of the value.
	Calendar bool
	Out      io.Writer
}

// Do renders the sections to Out.
func (n *Sections) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("sections: no service")
	}
	st, err := n.Service.Resolve(n.Preset, n.Settings)
	if err != nil {
		return err
	}
	s, err := n.Service.Session(ctx, st)
	if err != nil {
		return err
	}
	return Print(n.out(), s, n.JSON, n.Calendar)
}

func (n *Sections) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

// Print writes the state of s as a table or as JSON.
func Print(out io.Writer, s *session.Session[time.Time], asJSON, calendar bool) error {
	if asJSON {
		b, err := json.MarshalIndent(app.Snap(s), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{Out: out, Active: s.Active()}
	pp.NewLine()
	pp.Title(s.Format())
	pp.Sections(s.Sections(), s.Ordering())
	pp.Rendered("input", s.Input())
	pp.Rendered("display", s.Display())
	v := s.Value()
	pp.Value(v)
	if calendar && v != nil {
		pp.NewLine()
		weekStart := time.Sunday
		if a, ok := s.Engine().Adapter.(*dateadapter.Adapter); ok {
			weekStart = a.Locale().WeekStart
		}
		pp.Month(*v, weekStart)
	}
	return nil
}
