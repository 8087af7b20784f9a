// Package format turns the structured fields of a category into the single
// canonical content string stored on a log entry.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/dietlog/pkg/category"
)

// RangeSeparator joins the start and end of a time range.
const RangeSeparator = "–"

var (
	clockPattern   = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	decimalPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// Fields is the raw input collected for one entry. Each kind reads only the
// fields it needs.
type Fields struct {
	// Time is the clock time of a clock-time category.
	Time string
	// Start and End bound a time range.
	Start string
	End   string
	// Choice is the selected activity label or choice option.
	Choice string
	// Other replaces Choice when Choice is category.Other.
	Other       string
	Description string
	// ImageURL is inline image data for meals.
	ImageURL string
	// Value is the raw decimal of a numeric category.
	Value string
	// Text is free text. Items are joined with ", " when Text is empty.
	Text  string
	Items []string
}

// Result is a formatted entry.
type Result struct {
	Content  string
	ImageURL string
}

// Format validates fields for c and builds the content string. Failures
// match ErrValidation.
func Format(c category.Category, f Fields) (Result, error) {
	info := c.Info()
	v := &collector{category: c}

	var res Result
	switch info.Kind {
	case category.KindClockTime:
		res.Content = clockTime(v, f)
	case category.KindLabeledRange:
		res.Content = labeledRange(v, info, f)
	case category.KindRange:
		res.Content = timeRange(v, f)
	case category.KindMeal:
		res = meal(v, f)
	case category.KindDecimal:
		res.Content = decimal(v, f)
	case category.KindText:
		res.Content = text(v, f)
	case category.KindChoice:
		res.Content = choice(v, info, f)
	}

	if err := v.err(); err != nil {
		return Result{}, err
	}
	return res, nil
}

func clockTime(v *collector, f Fields) string {
	t := strings.TrimSpace(f.Time)
	checkClock(v, "time", t, true)
	return t
}

func labeledRange(v *collector, info category.Info, f Fields) string {
	start, end := rangeBounds(v, f)
	label := strings.TrimSpace(f.Choice)
	switch {
	case label == "":
		v.add("label", "is required")
	case label == category.Other:
		label = strings.TrimSpace(f.Other)
		if label == "" {
			v.add("other", "is required when label is %s", category.Other)
		}
	case !info.HasOption(label):
		v.add("label", "unknown option %q", label)
	}
	return start + RangeSeparator + end + " " + label
}

func timeRange(v *collector, f Fields) string {
	start, end := rangeBounds(v, f)
	return start + RangeSeparator + end
}

func rangeBounds(v *collector, f Fields) (string, string) {
	start := strings.TrimSpace(f.Start)
	end := strings.TrimSpace(f.End)
	checkClock(v, "start", start, true)
	checkClock(v, "end", end, true)
	return start, end
}

func meal(v *collector, f Fields) Result {
	start := strings.TrimSpace(f.Start)
	end := strings.TrimSpace(f.End)
	desc := strings.TrimSpace(f.Description)
	image := strings.TrimSpace(f.ImageURL)

	checkClock(v, "start", start, true)
	checkClock(v, "end", end, false)
	if desc == "" && image == "" {
		v.add("description", "a description or an image is required")
	}

	content := start
	if end != "" && end != start {
		content += RangeSeparator + end
	}
	if desc != "" {
		content += " " + desc
	}
	return Result{Content: content, ImageURL: image}
}

func decimal(v *collector, f Fields) string {
	raw := strings.TrimSpace(f.Value)
	if raw == "" {
		v.add("value", "is required")
		return raw
	}
	if _, err := ParseDecimal(raw); err != nil {
		v.add("value", "%v", err)
	}
	return raw
}

func text(v *collector, f Fields) string {
	t := strings.TrimSpace(f.Text)
	if t == "" && len(f.Items) > 0 {
		items := make([]string, 0, len(f.Items))
		for _, item := range f.Items {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		t = strings.Join(items, ", ")
	}
	if t == "" {
		v.add("text", "is required")
	}
	return t
}

func choice(v *collector, info category.Info, f Fields) string {
	opt := strings.TrimSpace(f.Choice)
	switch {
	case opt == "":
		v.add("choice", "is required")
		return ""
	case !info.HasOption(opt):
		v.add("choice", "unknown option %q", opt)
		return ""
	case opt == category.Other:
		other := strings.TrimSpace(f.Other)
		if other == "" {
			v.add("other", "is required when choice is %s", category.Other)
		}
		return other
	}
	return opt
}

// checkClock validates an H:MM or HH:MM string within a day.
func checkClock(v *collector, field, value string, required bool) {
	if value == "" {
		if required {
			v.add(field, "is required")
		}
		return
	}
	if _, _, ok := ParseClock(value); !ok {
		v.add(field, "%q is not a time of day (H:MM or HH:MM)", value)
	}
}

// ParseClock parses a whole H:MM or HH:MM string with hour 0-23 and minute
// 0-59.
func ParseClock(value string) (hour, minute int, ok bool) {
	if !clockPattern.MatchString(value) {
		return 0, 0, false
	}
	h, m, _ := strings.Cut(value, ":")
	hour, _ = strconv.Atoi(h)
	minute, _ = strconv.Atoi(m)
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// NormalizeDecimal swaps a comma decimal separator for a period.
func NormalizeDecimal(raw string) string {
	return strings.Replace(strings.TrimSpace(raw), ",", ".", 1)
}

// ParseDecimal parses a positive decimal written with either separator.
func ParseDecimal(raw string) (float64, error) {
	n := NormalizeDecimal(raw)
	if !decimalPattern.MatchString(n) {
		return 0, &decimalError{raw: raw, reason: "is not a number"}
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &decimalError{raw: raw, reason: "is not a finite number"}
	}
	if f <= 0 {
		return 0, &decimalError{raw: raw, reason: "must be greater than zero"}
	}
	return f, nil
}

type decimalError struct {
	raw    string
	reason string
}

func (e *decimalError) Error() string {
	return strconv.Quote(e.raw) + " " + e.reason
}
