package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	days, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 7 {
		t.Fatalf("expected 7, got %d", days)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	days, label, err := ParseWindow("1w 2d 1week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 16 {
		t.Fatalf("expected 16, got %d", days)
	}
	if label != "2w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d", "2w-"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("%q: expected error for invalid window", in)
		}
	}
}

func TestFormatWindow(t *testing.T) {
	cases := map[int]string{0: "0d", 1: "1d", 7: "1w", 10: "1w3d", 21: "3w"}
	for in, want := range cases {
		if got := FormatWindow(in); got != want {
			t.Fatalf("%d: expected %s, got %s", in, want, got)
		}
	}
}

func TestResolveDate(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)
	// 22:30 UTC is already the next day at +03:00.
	now := time.Date(2024, time.February, 29, 22, 30, 0, 0, time.UTC)

	cases := map[string]string{
		"":           "2024-03-01",
		"today":      "2024-03-01",
		"Yesterday":  "2024-02-29",
		"2024-01-15": "2024-01-15",
		"2024-03-01": "2024-03-01",
	}
	for in, want := range cases {
		got, err := ResolveDate(in, now, loc)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}

	for _, in := range []string{"2024-03-02", "tomorrow", "01/03/2024"} {
		if _, err := ResolveDate(in, now, loc); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}
