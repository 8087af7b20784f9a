package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/entry"
	"tableflip.dev/dietlog/pkg/format"
	"tableflip.dev/dietlog/pkg/logstore"
)

type seedEntry struct {
	category category.Category
	fields   format.Fields
}

// sampleDay is a plausible day touching most categories.
var sampleDay = []seedEntry{
	{category.Weight, format.Fields{Value: "51.2"}},
	{category.AnythingElse, format.Fields{Text: "No not really"}},
	{category.StomachFeeling, format.Fields{Choice: "Good"}},
	{category.Liquid, format.Fields{Text: "2L water"}},
	{category.WakeUpTime, format.Fields{Time: "8:00"}},
	{category.Shower, format.Fields{Time: "8:15"}},
	{category.Activity, format.Fields{Start: "09:00", End: "09:40", Choice: "Walking"}},
	{category.Supplements, format.Fields{Text: "Mg citrate"}},
	{category.WorkingHours, format.Fields{Start: "09:00", End: "18:00"}},
	{category.Breakfast, format.Fields{Start: "12:00", End: "12:30", Description: "Eggs, cheese, bread"}},
	{category.Supplements, format.Fields{Items: []string{"Vitamin D"}}},
	{category.Poopy, format.Fields{Choice: "Type 4 - Smooth and soft"}},
	{category.Snacks, format.Fields{Start: "15:00", End: "15:15", Description: "apple"}},
	{category.WindDown, format.Fields{Time: "21:00"}},
	{category.Sleep, format.Fields{Time: "22:00"}},
}

// Seed fills an empty date with the sample day. Entries go through AddEntry
// so they are formatted and timed like user input.
func (s *Service) Seed(ctx context.Context, date string) ([]entry.LogItem, error) {
	existing, err := s.QueryByDate(date)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: %s has %d", ErrDateNotEmpty, date, len(existing))
	}
	added := make([]entry.LogItem, 0, len(sampleDay))
	for _, se := range sampleDay {
		res, err := s.AddEntry(ctx, se.category, se.fields, date)
		if err != nil && !errors.Is(err, logstore.ErrPersistence) {
			return added, fmt.Errorf("app: seed %s: %w", se.category, err)
		}
		added = append(added, res.Item)
		if err != nil {
			return added, err
		}
	}
	return added, nil
}
