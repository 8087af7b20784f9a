package format

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"tableflip.dev/dietlog/pkg/category"
)

func TestClockTimeAcceptsEveryValidTime(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 7, 30, 59} {
			for _, s := range []string{fmt.Sprintf("%d:%02d", h, m), fmt.Sprintf("%02d:%02d", h, m)} {
				res, err := Format(category.WakeUpTime, Fields{Time: s})
				if err != nil {
					t.Fatalf("%s: unexpected error: %v", s, err)
				}
				if res.Content != s {
					t.Fatalf("expected %q unchanged, got %q", s, res.Content)
				}
			}
		}
	}
}

func TestClockTimeRejects(t *testing.T) {
	for _, s := range []string{"", "24:00", "7:60", "7", "07:5", "123:00", "ab:cd", "7.30"} {
		_, err := Format(category.Sleep, Fields{Time: s})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%q: expected validation error, got %v", s, err)
		}
	}
}

func TestActivity(t *testing.T) {
	res, err := Format(category.Activity, Fields{Start: "09:00", End: "09:40", Choice: "Walking"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Content != "09:00–09:40 Walking" {
		t.Fatalf("unexpected content %q", res.Content)
	}

	res, err = Format(category.Activity, Fields{Start: "18:00", End: "19:00", Choice: category.Other, Other: " Rowing "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Content != "18:00–19:00 Rowing" {
		t.Fatalf("unexpected content %q", res.Content)
	}

	_, err = Format(category.Activity, Fields{Start: "18:00", End: "19:00", Choice: category.Other})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "other" {
		t.Fatalf("expected other field error, got %v", err)
	}
}

func TestActivityAggregatesErrors(t *testing.T) {
	_, err := Format(category.Activity, Fields{})
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected aggregated errors, got %T %v", err, err)
	}
	if len(errs) != 3 {
		t.Fatalf("expected start, end and label errors, got %d: %v", len(errs), errs)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("aggregate should match ErrValidation")
	}
}

func TestWorkingHours(t *testing.T) {
	res, err := Format(category.WorkingHours, Fields{Start: "09:00", End: "18:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Content != "09:00–18:00" {
		t.Fatalf("unexpected content %q", res.Content)
	}
	if _, err := Format(category.WorkingHours, Fields{Start: "09:00"}); err == nil {
		t.Fatalf("expected error for missing end")
	}
}

func TestMeal(t *testing.T) {
	cases := []struct {
		name   string
		fields Fields
		want   string
	}{
		{"same start and end", Fields{Start: "08:00", End: "08:00", Description: "Eggs"}, "08:00 Eggs"},
		{"range", Fields{Start: "08:00", End: "08:30", Description: "Eggs"}, "08:00–08:30 Eggs"},
		{"no end", Fields{Start: "12:30", Description: "Oats, banana"}, "12:30 Oats, banana"},
		{"image only", Fields{Start: "19:00", ImageURL: "data:image/png;base64,AA=="}, "19:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Format(category.Breakfast, tc.fields)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Content != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, res.Content)
			}
			if res.ImageURL != tc.fields.ImageURL {
				t.Fatalf("image should be carried separately, got %q", res.ImageURL)
			}
		})
	}
}

func TestMealRequiresTimeAndSomething(t *testing.T) {
	if _, err := Format(category.Dinner, Fields{Description: "Soup"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected error for missing start, got %v", err)
	}
	if _, err := Format(category.Snacks, Fields{Start: "15:00"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected error for missing description and image, got %v", err)
	}
	if _, err := Format(category.Snacks, Fields{Start: "15:00", End: "25:00", Description: "Nuts"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected error for bad end, got %v", err)
	}
}

func TestWeightSeparators(t *testing.T) {
	for _, raw := range []string{"51.2", "51,2", " 80 "} {
		res, err := Format(category.Weight, Fields{Value: raw})
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if res.Content != strings.TrimSpace(raw) {
			t.Fatalf("content should keep the original separator: got %q", res.Content)
		}
	}
	a, _ := ParseDecimal("51.2")
	b, _ := ParseDecimal("51,2")
	if a != b {
		t.Fatalf("expected equal values, got %v and %v", a, b)
	}
}

func TestWeightRejects(t *testing.T) {
	for _, raw := range []string{"", "0", "0.0", "-5", "abc", "1e3", "NaN", "Inf", "70kg"} {
		if _, err := Format(category.Weight, Fields{Value: raw}); !errors.Is(err, ErrValidation) {
			t.Fatalf("%q: expected validation error, got %v", raw, err)
		}
	}
}

func TestText(t *testing.T) {
	res, err := Format(category.Liquid, Fields{Text: "  2L water "})
	if err != nil || res.Content != "2L water" {
		t.Fatalf("unexpected result %q, %v", res.Content, err)
	}
	res, err = Format(category.Supplements, Fields{Items: []string{"Vitamin D", " ", "Omega-3"}})
	if err != nil || res.Content != "Vitamin D, Omega-3" {
		t.Fatalf("unexpected result %q, %v", res.Content, err)
	}
	if _, err := Format(category.AnythingElse, Fields{Text: "   "}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected error for blank text, got %v", err)
	}
}

func TestChoice(t *testing.T) {
	res, err := Format(category.Poopy, Fields{Choice: "Type 4 - Smooth and soft"})
	if err != nil || res.Content != "Type 4 - Smooth and soft" {
		t.Fatalf("unexpected result %q, %v", res.Content, err)
	}
	res, err = Format(category.StomachFeeling, Fields{Choice: category.Other, Other: "Heavy"})
	if err != nil || res.Content != "Heavy" {
		t.Fatalf("unexpected result %q, %v", res.Content, err)
	}
	bad := []struct {
		c category.Category
		f Fields
	}{
		{category.Poopy, Fields{}},
		{category.Poopy, Fields{Choice: "Type 7 - Liquid"}},
		{category.Poopy, Fields{Choice: category.Other, Other: "x"}},
		{category.StomachFeeling, Fields{Choice: category.Other, Other: " "}},
	}
	for _, tc := range bad {
		if _, err := Format(tc.c, tc.f); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s %+v: expected validation error, got %v", tc.c, tc.f, err)
		}
	}
}
