// Package printers renders sections and presets for the command line.
package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datefield/pkg/field"
	"tableflip.dev/datefield/pkg/store"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Active marks a focused section, -1 for none.
	Active int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Sections prints one row per section with its neighbors in ordering.
func (pp *PrettyPrint) Sections(sections []field.Section, ordering field.SectionOrdering) {
	if len(sections) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no sections\n\n")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	hi := color.New(color.FgHiYellow, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(
		bold.Sprint("#"), bold.Sprint("Type"), bold.Sprint("Content"), bold.Sprint("Format"),
		bold.Sprint("Value"), bold.Sprint("Placeholder"), bold.Sprint("Start"), bold.Sprint("End"),
		bold.Sprint("Range"), bold.Sprint("Left"), bold.Sprint("Right"),
	)
	for i, s := range sections {
		index := strconv.Itoa(i)
		if i == pp.Active {
			index = hi.Sprint(">" + index)
		}
		value := s.Value
		if value == "" {
			value = faint.Sprint("-")
		}
		n, ok := ordering.Neighbors[i]
		if !ok {
			n = field.Neighbors{Left: -1, Right: -1}
		}
		tbl.AddRow(
			index, string(s.Type), string(s.ContentType), s.Format,
			value, s.Placeholder, Visible(s.StartSeparator), Visible(s.EndSeparator),
			fmt.Sprintf("%d..%d", s.Start, s.End), neighbor(n.Left), neighbor(n.Right),
		)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func neighbor(i int) string {
	if i < 0 {
		return "-"
	}
	return strconv.Itoa(i)
}

// Visible quotes s so separators made of spaces or bidi marks are
// readable.
func Visible(s string) string {
	if s == "" {
		return `""`
	}
	return strconv.QuoteToASCII(s)
}

// Rendered prints a labelled string such as the input rendering.
func (pp *PrettyPrint) Rendered(label, s string) {
	l := color.New(color.Faint)
	_, _ = l.Fprintf(pp.out(), "%-8s ", label)
	_, _ = fmt.Fprintln(pp.out(), Visible(s))
}

// Value prints the date the sections describe.
func (pp *PrettyPrint) Value(value *time.Time) {
	l := color.New(color.Faint)
	_, _ = l.Fprintf(pp.out(), "%-8s ", "value")
	if value == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "none")
		return
	}
	_, _ = fmt.Fprintln(pp.out(), value.Format(time.RFC3339))
}

// Presets prints the stored presets.
func (pp *PrettyPrint) Presets(presets ...*store.Preset) {
	if len(presets) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Format"), bold.Sprint("Locale"), bold.Sprint("Options"), bold.Sprint("Saved"))
	for _, p := range presets {
		tbl.AddRow(y.Sprint(p.Name), p.Format, p.Locale, presetOptions(p), p.Saved.Local().Format(time.DateTime))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func presetOptions(p *store.Preset) string {
	var opts []string
	if p.RTL {
		opts = append(opts, "rtl")
	}
	if p.Density != "" && p.Density != string(field.DensityDense) {
		opts = append(opts, p.Density)
	}
	if p.RespectLeadingZeros {
		opts = append(opts, "leading-zeros")
	}
	if p.MinutesStep > 1 {
		opts = append(opts, fmt.Sprintf("step=%d", p.MinutesStep))
	}
	if p.Value != "" {
		opts = append(opts, "value="+p.Value)
	}
	return strings.Join(opts, ",")
}
