package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dietlog/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar of the month containing then. Days with entries
// are bold, today is underlined.
func (pp *PrettyPrint) Month(then time.Time, items []entry.LogItem) {
	count := make([]int, DaysIn(then))
	prefix := then.Format("2006-01-")
	for _, item := range items {
		if !strings.HasPrefix(item.Date, prefix) {
			continue
		}
		t, err := entry.ParseDate(item.Date)
		if err != nil {
			continue
		}
		count[t.Day()-1]++
	}
	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	w := pp.Writer()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d)))

	today := time.Now().In(then.Location())

	for i := 0; i < DaysIn(then); i++ {
		attrs := []color.Attribute{color.Faint, color.FgWhite}
		if i < len(count) && count[i] > 0 {
			attrs = []color.Attribute{color.Bold, color.FgHiWhite}
		}
		if today.Year() == then.Year() && today.Month() == then.Month() && today.Day() == i+1 {
			attrs = append(attrs, color.Underline)
		}
		_, _ = color.New(attrs...).Fprintf(w, "%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
