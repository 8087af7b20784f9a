package entry

import (
	"fmt"
	"time"
)

// LayoutISO is the layout of LogItem.Date.
const LayoutISO = "2006-01-02"

// ParseDate validates a YYYY-MM-DD string and returns it at UTC midnight.
// UTC is only used for calendar arithmetic here, never for day bases.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("entry: invalid date %q: %w", v, err)
	}
	return t, nil
}

// FormatDate returns the calendar day of t as seen in t's location.
func FormatDate(t time.Time) string {
	return t.Format(LayoutISO)
}

// AddDays moves a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DayBase returns local midnight of date in loc, in epoch milliseconds.
func DayBase(date string, loc *time.Location) (int64, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(LayoutISO, date, loc)
	if err != nil {
		return 0, fmt.Errorf("entry: invalid date %q: %w", date, err)
	}
	return t.UnixMilli(), nil
}

// Clock renders an ordering timestamp as HH:MM in loc.
func Clock(timestamp int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(timestamp).In(loc).Format("15:04")
}
