package printers

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/fatih/color"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the month of on as a grid starting at weekStart, with the
// day of on highlighted.
func (pp *PrettyPrint) Month(on time.Time, weekStart time.Weekday) {
	out := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", on.Month(), on.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	h := color.New(color.Faint)
	for i := 0; i < 7; i++ {
		_, _ = h.Fprintf(out, "%2s ", ((weekStart + time.Weekday(i)) % 7).String()[0:2])
	}
	_, _ = fmt.Fprint(out, "\n")

	first := StartDay(on)
	// Pad out the start of the month.
	for d := weekStart; d%7 != first; d++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite, color.Underline)

	d := first
	for i := 1; i <= DaysIn(on); i++ {
		p := l1
		if i == on.Day() {
			p = l2
		}
		_, _ = p.Fprintf(out, "%2d", i)
		_, _ = fmt.Fprint(out, " ")
		d = (d + 1) % 7
		if d == weekStart {
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then time.Time) int {
	return int(datetime.DaysInMonth(then.Year(), datetime.Month(then.Month())))
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
