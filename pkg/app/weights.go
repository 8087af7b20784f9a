package app

import (
	"fmt"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/entry"
	"tableflip.dev/dietlog/pkg/format"
)

// DefaultHistoryDays is how far back the weight history looks by default.
const DefaultHistoryDays = 7

// WeightPoint is the latest weight logged on one day.
type WeightPoint struct {
	Date string
	Item entry.LogItem
	// Value is the parsed weight, zero when Parsed is false.
	Value  float64
	Parsed bool
}

// WeightHistory covers the days [Since, Until], Until being the day before
// the query date.
type WeightHistory struct {
	Since  string
	Until  string
	Points []WeightPoint
}

// Change is the difference between the most recent and the oldest parsed
// point. ok is false with fewer than two parsed points.
func (h WeightHistory) Change() (delta float64, ok bool) {
	var newest, oldest *WeightPoint
	for i := range h.Points {
		if !h.Points[i].Parsed {
			continue
		}
		if newest == nil {
			newest = &h.Points[i]
		}
		oldest = &h.Points[i]
	}
	if newest == nil || newest == oldest {
		return 0, false
	}
	return newest.Value - oldest.Value, true
}

// QueryWeightHistory walks the daysBack days before beforeDate, most recent
// first, and reports the latest weight of each day that has one.
func (s *Service) QueryWeightHistory(beforeDate string, daysBack int) (WeightHistory, error) {
	if s.Logs == nil {
		return WeightHistory{}, ErrNoStore
	}
	if daysBack <= 0 {
		return WeightHistory{}, fmt.Errorf("app: days back must be greater than zero, got %d", daysBack)
	}
	until, err := entry.AddDays(beforeDate, -1)
	if err != nil {
		return WeightHistory{}, fmt.Errorf("app: %w", err)
	}
	since, _ := entry.AddDays(beforeDate, -daysBack)

	history := WeightHistory{Since: since, Until: until, Points: make([]WeightPoint, 0, daysBack)}
	for i := 1; i <= daysBack; i++ {
		day, _ := entry.AddDays(beforeDate, -i)
		weights := s.Logs.ByCategoryOnDate(category.Weight, day)
		if len(weights) == 0 {
			continue
		}
		point := WeightPoint{Date: day, Item: weights[0]}
		if v, err := format.ParseDecimal(weights[0].Content); err == nil {
			point.Value = v
			point.Parsed = true
		}
		history.Points = append(history.Points, point)
	}
	return history, nil
}
