package options

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/format"
)

// EntryOptions collects the raw fields of a new entry.
type EntryOptions struct {
	Time        string
	Start       string
	End         string
	Label       string
	Other       string
	Description string
	Image       string
	Value       string
	Text        string
	Items       []string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Clock time for wake-up-time, shower, wind-down and sleep, example: --time=7:30.`)
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Start of a time range, example: --start=09:00.`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`End of a time range, optional for meals, example: --end=09:40.`)
	cmd.Flags().StringVarP(&o.Label, "label", "l", "",
		`Activity label or choice option, use "Other" with --other for a custom value.`)
	cmd.Flags().StringVar(&o.Other, "other", "",
		`Custom value used when --label=Other.`)
	cmd.Flags().StringVarP(&o.Description, "desc", "d", "",
		`What was eaten.`)
	cmd.Flags().StringVar(&o.Image, "image", "",
		`Path to a photo of the meal, stored inline with the entry.`)
	cmd.Flags().StringVar(&o.Value, "value", "",
		`Weight in kilograms, "." or "," as decimal separator.`)
	cmd.Flags().StringVarP(&o.Text, "text", "t", "",
		`Free text for liquid, supplements and anything-else.`)
	cmd.Flags().StringSliceVar(&o.Items, "item", nil,
		`Supplement taken, repeatable, example: --item="Vitamin D" --item=Zinc.`)
}

// clockShape matches an argument meant as a clock time. Range checks are
// left to the formatter.
var clockShape = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// Fields maps the flags onto format.Fields. Positional args, when present,
// fill the main field of the category's input kind. For ranges and meals up
// to two leading clock times become start and end.
func (o *EntryOptions) Fields(c category.Category, args []string) (format.Fields, error) {
	f := format.Fields{
		Time:        o.Time,
		Start:       o.Start,
		End:         o.End,
		Choice:      o.Label,
		Other:       o.Other,
		Description: o.Description,
		Value:       o.Value,
		Text:        o.Text,
		Items:       o.Items,
	}
	if len(args) == 0 {
		return f, nil
	}
	switch c.Kind() {
	case category.KindClockTime:
		f.Time = strings.Join(args, " ")
	case category.KindDecimal:
		f.Value = strings.Join(args, " ")
	case category.KindText:
		f.Text = strings.Join(args, " ")
	case category.KindChoice:
		f.Choice = strings.Join(args, " ")
	case category.KindRange, category.KindLabeledRange, category.KindMeal:
		n := 0
		for n < 2 && n < len(args) && clockShape.MatchString(args[n]) {
			n++
		}
		if n > 0 {
			f.Start = args[0]
		}
		if n > 1 {
			f.End = args[1]
		}
		rest := strings.Join(args[n:], " ")
		if rest == "" {
			break
		}
		switch c.Kind() {
		case category.KindRange:
			return f, fmt.Errorf("%s takes a start and an end time, unexpected %q", c, rest)
		case category.KindLabeledRange:
			f.Choice = rest
		case category.KindMeal:
			f.Description = rest
		}
	}
	return f, nil
}
