package printers

import (
	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/entry"
)

// DayView is the structured form of one day.
type DayView struct {
	Date    string          `json:"date" yaml:"date"`
	Entries []entry.LogItem `json:"entries" yaml:"entries"`
}

func NewDayView(date string, items []entry.LogItem) DayView {
	if items == nil {
		items = []entry.LogItem{}
	}
	return DayView{Date: date, Entries: items}
}

// AddedView is the structured form of a new entry.
type AddedView struct {
	Entry       entry.LogItem `json:"entry" yaml:"entry"`
	Celebration *int          `json:"celebrationGrams,omitempty" yaml:"celebrationGrams,omitempty"`
}

func NewAddedView(res app.Result) AddedView {
	return AddedView{Entry: res.Item, Celebration: res.Celebration}
}

// WeightView is one day of a weight history.
type WeightView struct {
	Date    string  `json:"date" yaml:"date"`
	ID      string  `json:"id" yaml:"id"`
	Content string  `json:"content" yaml:"content"`
	Kg      float64 `json:"kg,omitempty" yaml:"kg,omitempty"`
}

// WeightsView is the structured form of a weight history.
type WeightsView struct {
	Since   string       `json:"since" yaml:"since"`
	Until   string       `json:"until" yaml:"until"`
	Weights []WeightView `json:"weights" yaml:"weights"`
	Change  *float64     `json:"changeKg,omitempty" yaml:"changeKg,omitempty"`
}

func NewWeightsView(h app.WeightHistory) WeightsView {
	v := WeightsView{Since: h.Since, Until: h.Until, Weights: make([]WeightView, 0, len(h.Points))}
	for _, p := range h.Points {
		v.Weights = append(v.Weights, WeightView{Date: p.Date, ID: p.Item.ID, Content: p.Item.Content, Kg: p.Value})
	}
	if delta, ok := h.Change(); ok {
		v.Change = &delta
	}
	return v
}
