// Package timeline derives the ordering timestamp of a journal entry.
package timeline

import (
	"regexp"
	"strconv"
	"time"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/entry"
)

const (
	// UntimedStep separates consecutive untimed entries of one day.
	UntimedStep = int64(time.Second / time.Millisecond)

	hourMillis   = int64(time.Hour / time.Millisecond)
	minuteMillis = int64(time.Minute / time.Millisecond)
)

var leadingTimePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)

// LeadingTime extracts the clock time content starts with. The prefix is not
// range checked: "25:00 x" yields 25, 0.
func LeadingTime(content string) (hour, minute int, ok bool) {
	m := leadingTimePattern.FindStringSubmatch(content)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, true
}

// Untimed reports whether an entry is ordered by the fallback counter.
func Untimed(item entry.LogItem) bool {
	_, _, ok := LeadingTime(item.Content)
	return !ok
}

// Resolver computes timestamps relative to local midnight in one location.
type Resolver struct {
	loc *time.Location
}

// New returns a Resolver for loc. A nil loc means time.Local.
func New(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{loc: loc}
}

// Location is the zone day bases are computed in.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Resolve returns the timestamp for a new entry. existing must be the
// entries already stored for date, before the new one is inserted.
//
// Time-bearing categories whose content starts with H:MM land on that time of
// day. Everything else is placed one second after the previous untimed entry
// of the day, counting from midnight.
func (r *Resolver) Resolve(c category.Category, content, date string, existing []entry.LogItem) (int64, error) {
	base, err := entry.DayBase(date, r.loc)
	if err != nil {
		return 0, err
	}
	if c.Info().Timed() {
		if h, m, ok := LeadingTime(content); ok {
			return base + int64(h)*hourMillis + int64(m)*minuteMillis, nil
		}
	}
	untimed := 0
	for _, item := range existing {
		if item.Date == date && Untimed(item) {
			untimed++
		}
	}
	return base + int64(untimed+1)*UntimedStep, nil
}
