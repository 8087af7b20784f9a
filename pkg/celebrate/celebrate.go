// Package celebrate decides whether a new weight is worth celebrating.
package celebrate

import (
	"math"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/entry"
	"tableflip.dev/dietlog/pkg/format"
)

// Source answers the lookups the evaluator needs. Results are most recent
// first. *logstore.Store implements it.
type Source interface {
	ByCategoryOnDate(c category.Category, date string) []entry.LogItem
	ByCategoryBeforeDate(c category.Category, date string) []entry.LogItem
}

// Mode selects which earlier weight a new one is compared against.
type Mode string

const (
	// Yesterday compares against the latest weight of the previous
	// calendar day only.
	Yesterday Mode = "yesterday"
	// Latest compares against the latest weight of any earlier day.
	Latest Mode = "latest"
)

// Evaluator runs the comparison for its Mode.
type Evaluator struct {
	Mode Mode
}

// Evaluate dispatches on e.Mode. An unknown mode behaves like Yesterday.
func (e Evaluator) Evaluate(content, date string, prior Source) (int, bool) {
	if e.Mode == Latest {
		return EvaluateLatest(content, date, prior)
	}
	return Evaluate(content, date, prior)
}

// Evaluate returns the loss in grams between the most recent weight logged
// on the day before date and content. prior must not contain the new entry.
func Evaluate(content, date string, prior Source) (grams int, ok bool) {
	yesterday, err := entry.AddDays(date, -1)
	if err != nil {
		return 0, false
	}
	return compare(content, prior.ByCategoryOnDate(category.Weight, yesterday))
}

// EvaluateLatest is Evaluate against the most recent weight of any day
// before date.
func EvaluateLatest(content, date string, prior Source) (grams int, ok bool) {
	return compare(content, prior.ByCategoryBeforeDate(category.Weight, date))
}

func compare(content string, earlier []entry.LogItem) (int, bool) {
	if len(earlier) == 0 {
		return 0, false
	}
	current, err := format.ParseDecimal(content)
	if err != nil {
		return 0, false
	}
	previous, err := format.ParseDecimal(earlier[0].Content)
	if err != nil {
		return 0, false
	}
	if current >= previous {
		return 0, false
	}
	// A loss under half a gram still counts and reports 0.
	return int(math.Round((previous - current) * 1000)), true
}
