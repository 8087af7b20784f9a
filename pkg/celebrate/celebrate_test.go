package celebrate

import (
	"testing"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/entry"
)

type fakeSource []entry.LogItem

func (f fakeSource) ByCategoryOnDate(c category.Category, date string) []entry.LogItem {
	var out []entry.LogItem
	for i := len(f) - 1; i >= 0; i-- {
		if f[i].Category == c && f[i].Date == date {
			out = append(out, f[i])
		}
	}
	return out
}

func (f fakeSource) ByCategoryBeforeDate(c category.Category, date string) []entry.LogItem {
	var out []entry.LogItem
	for i := len(f) - 1; i >= 0; i-- {
		if f[i].Category == c && f[i].Date < date {
			out = append(out, f[i])
		}
	}
	return out
}

func weight(date, content string) entry.LogItem {
	return entry.LogItem{Category: category.Weight, Date: date, Content: content}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		prior   fakeSource
		content string
		grams   int
		ok      bool
	}{
		{"loss", fakeSource{weight("2024-03-09", "80")}, "78", 2000, true},
		{"gain", fakeSource{weight("2024-03-09", "80")}, "82", 0, false},
		{"same", fakeSource{weight("2024-03-09", "80")}, "80,0", 0, false},
		{"comma", fakeSource{weight("2024-03-09", "51,2")}, "51.05", 150, true},
		{"rounding", fakeSource{weight("2024-03-09", "70.3")}, "70.1", 200, true},
		{"loss under a gram", fakeSource{weight("2024-03-09", "80.0004")}, "80", 0, true},
		{"latest of yesterday", fakeSource{weight("2024-03-09", "79"), weight("2024-03-09", "80")}, "78", 2000, true},
		{"only older days", fakeSource{weight("2024-03-07", "90")}, "78", 0, false},
		{"same day ignored", fakeSource{weight("2024-03-10", "90")}, "78", 0, false},
		{"no prior", nil, "78", 0, false},
		{"unparseable prior", fakeSource{weight("2024-03-09", "n/a")}, "78", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grams, ok := Evaluate(tc.content, "2024-03-10", tc.prior)
			if grams != tc.grams || ok != tc.ok {
				t.Fatalf("expected %d %v, got %d %v", tc.grams, tc.ok, grams, ok)
			}
		})
	}
}

func TestEvaluateAcrossMonth(t *testing.T) {
	grams, ok := Evaluate("60", "2024-03-01", fakeSource{weight("2024-02-29", "60.5")})
	if !ok || grams != 500 {
		t.Fatalf("expected 500 grams, got %d %v", grams, ok)
	}
}

func TestEvaluateLatest(t *testing.T) {
	prior := fakeSource{weight("2024-03-01", "85"), weight("2024-03-07", "80")}
	if _, ok := Evaluate("78", "2024-03-10", prior); ok {
		t.Fatalf("yesterday mode should not look past the previous day")
	}
	grams, ok := Evaluator{Mode: Latest}.Evaluate("78", "2024-03-10", prior)
	if !ok || grams != 2000 {
		t.Fatalf("expected 2000 grams, got %d %v", grams, ok)
	}
}
