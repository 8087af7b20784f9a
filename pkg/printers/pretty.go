package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/entry"
	"tableflip.dev/dietlog/pkg/timeline"
)

// PrettyPrint renders journal views for a terminal.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
	// Loc is the zone timestamps are shown in, time.Local when nil.
	Loc *time.Location
}

// Writer is where output goes.
func (pp *PrettyPrint) Writer() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Writer())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Writer(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.Writer(), title)
	_, _ = c.Fprintf(pp.Writer(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Writer(), " entry")
	default:
		_, _ = c.Fprintln(pp.Writer(), " entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.Writer(), " none\n\n")
}

// Day prints the entries of one day, already in display order.
func (pp *PrettyPrint) Day(date string, items []entry.LogItem) {
	pp.TitleWithCount(dayTitle(date), len(items))
	if len(items) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)
	label := color.New(color.FgCyan)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	for _, item := range items {
		clock := faint.Sprint("  ·  ")
		if !timeline.Untimed(item) {
			clock = entry.Clock(item.Timestamp, pp.Loc)
		}
		content := item.Content
		if item.ImageURL != "" {
			content += faint.Sprint(" [image]")
		}
		row := []interface{}{clock, label.Sprint(item.Category.Label()), content}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(item.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
	pp.NewLine()
}

// Added confirms a new entry and any celebration it earned.
func (pp *PrettyPrint) Added(res app.Result) {
	ok := color.New(color.FgGreen)
	_, _ = ok.Fprintf(pp.Writer(), "Added %s: %s", res.Item.Category.Label(), res.Item.Content)
	_, _ = color.New(color.Faint).Fprintf(pp.Writer(), " (%s)\n", res.Item.ID)
	if res.Celebration != nil {
		pp.Celebrate(*res.Celebration)
	}
}

// Celebrate announces a weight loss in grams.
func (pp *PrettyPrint) Celebrate(grams int) {
	c := color.New(color.FgHiMagenta, color.Bold)
	_, _ = c.Fprintf(pp.Writer(), "🎉 You lost %dg!\n", grams)
}

// Weights prints a weight history, most recent day first.
func (pp *PrettyPrint) Weights(h app.WeightHistory) {
	pp.TitleWithCount(fmt.Sprintf("Weight %s to %s", h.Since, h.Until), len(h.Points))
	if len(h.Points) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range h.Points {
		row := []interface{}{p.Date, weekday(p.Date), p.Item.Content}
		if pp.ShowID {
			row = append([]interface{}{p.Item.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
	if delta, ok := h.Change(); ok {
		c := color.New(color.FgGreen)
		if delta > 0 {
			c = color.New(color.FgRed)
		}
		_, _ = c.Fprintf(pp.Writer(), "change %+.1f kg\n", delta)
	}
	pp.NewLine()
}

// Categories prints every category with its input kind and entry count.
func (pp *PrettyPrint) Categories(date string, counts []app.CategoryCount) {
	pp.Title(dayTitle(date))
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Id"), bold.Sprint("Input"), bold.Sprint("Entries"))
	for _, c := range counts {
		count := faint.Sprint("-")
		if c.Count > 0 {
			count = bold.Sprint(c.Count)
		}
		tbl.AddRow(c.Label, string(c.Category), c.Kind.String(), count)
	}
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
	pp.NewLine()
}

// Options prints the fixed choices of c, if it has any.
func (pp *PrettyPrint) Options(c category.Category) {
	info := c.Info()
	if len(info.Options) == 0 {
		return
	}
	pp.Title(info.Label + " options")
	_, _ = fmt.Fprintln(pp.Writer(), "  "+strings.Join(info.Options, "\n  "))
	pp.NewLine()
}

func dayTitle(date string) string {
	if wd := weekday(date); wd != "" {
		return wd + " " + date
	}
	return date
}

func weekday(date string) string {
	t, err := entry.ParseDate(date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}

// Line prints one plain line.
func (pp *PrettyPrint) Line(s string) {
	_, _ = fmt.Fprintln(pp.Writer(), s)
}
