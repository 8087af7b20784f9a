// Package category defines the closed set of journal categories and the
// input shape each one accepts.
package category

import (
	"fmt"
	"strings"
)

// Category identifies what a log entry is about.
type Category string

const (
	WakeUpTime     Category = "wake-up-time"
	Weight         Category = "weight"
	Activity       Category = "activity"
	Shower         Category = "shower"
	Breakfast      Category = "breakfast"
	Snacks         Category = "snacks"
	Dinner         Category = "dinner"
	Liquid         Category = "liquid"
	Supplements    Category = "supplements"
	Poopy          Category = "poopy"
	WorkingHours   Category = "working-hours"
	StomachFeeling Category = "stomach-feeling"
	AnythingElse   Category = "anything-else"
	WindDown       Category = "wind-down"
	Sleep          Category = "sleep"
)

// Kind is the input shape of a category. The formatter dispatches on it.
type Kind int

const (
	KindClockTime Kind = iota
	KindLabeledRange
	KindRange
	KindMeal
	KindDecimal
	KindText
	KindChoice
)

func (k Kind) String() string {
	switch k {
	case KindClockTime:
		return "clock-time"
	case KindLabeledRange:
		return "time-range+label"
	case KindRange:
		return "time-range"
	case KindMeal:
		return "time-range+description"
	case KindDecimal:
		return "decimal"
	case KindText:
		return "text"
	case KindChoice:
		return "choice"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Other is the option that switches a choice to its free-text override.
const Other = "Other"

// Info is the static metadata of one category.
type Info struct {
	Category Category
	Label    string
	Kind     Kind
	// Options lists the fixed values for choice and labeled-range kinds.
	Options []string
}

// Timed reports whether entries of this category carry a leading clock time
// that orders them within the day.
func (i Info) Timed() bool {
	switch i.Kind {
	case KindClockTime, KindLabeledRange, KindRange, KindMeal:
		return true
	default:
		return false
	}
}

// AllowsOther reports whether Other is one of the options.
func (i Info) AllowsOther() bool {
	for _, o := range i.Options {
		if o == Other {
			return true
		}
	}
	return false
}

// HasOption reports whether value is one of the fixed options.
func (i Info) HasOption(value string) bool {
	for _, o := range i.Options {
		if o == value {
			return true
		}
	}
	return false
}

var (
	ActivityOptions = []string{
		"Walking",
		"Running",
		"Jogging",
		"Cycling",
		"Swimming",
		"Yoga",
		"Pilates",
		"Gym Workout",
		"Weight Training",
		"Cardio",
		"HIIT",
		"Stretching",
		"Dancing",
		"Sports",
		"Hiking",
		Other,
	}

	// PoopyOptions follow the Bristol stool chart.
	PoopyOptions = []string{
		"Type 1 - Separate hard lumps",
		"Type 2 - Lumpy and sausage-like",
		"Type 3 - Sausage-like with cracks",
		"Type 4 - Smooth and soft",
		"Type 5 - Soft blobs",
		"Type 6 - Mushy with ragged edges",
	}

	StomachFeelingOptions = []string{
		"Good",
		"Bloated",
		"Gassy",
		"Cramping",
		"Nauseous",
		"Hungry",
		Other,
	}

	// CommonSupplements are suggestions offered when logging supplements.
	// Supplements stay free text.
	CommonSupplements = []string{
		"Vitamin D",
		"Vitamin C",
		"Omega-3",
		"Magnesium",
		"Zinc",
		"B Complex",
		"Probiotics",
		"Iron",
		"Calcium",
		"Multivitamin",
	}
)

// registry is in display order.
var registry = []Info{
	{Category: WakeUpTime, Label: "Wake up time", Kind: KindClockTime},
	{Category: Weight, Label: "Weight", Kind: KindDecimal},
	{Category: Activity, Label: "Activity", Kind: KindLabeledRange, Options: ActivityOptions},
	{Category: Shower, Label: "Shower", Kind: KindClockTime},
	{Category: Breakfast, Label: "Breakfast", Kind: KindMeal},
	{Category: Snacks, Label: "Snacks", Kind: KindMeal},
	{Category: Dinner, Label: "Dinner", Kind: KindMeal},
	{Category: Liquid, Label: "Liquid", Kind: KindText},
	{Category: Supplements, Label: "Supplements", Kind: KindText},
	{Category: Poopy, Label: "Poopy", Kind: KindChoice, Options: PoopyOptions},
	{Category: WorkingHours, Label: "Working hours", Kind: KindRange},
	{Category: StomachFeeling, Label: "Stomach feeling", Kind: KindChoice, Options: StomachFeelingOptions},
	{Category: AnythingElse, Label: "Anything else", Kind: KindText},
	{Category: WindDown, Label: "Wind down", Kind: KindClockTime},
	{Category: Sleep, Label: "Sleep", Kind: KindClockTime},
}

var byCategory = func() map[Category]Info {
	m := make(map[Category]Info, len(registry))
	for _, info := range registry {
		m[info.Category] = info
	}
	return m
}()

// All returns every category in display order.
func All() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// Parse converts user input to a Category or returns an error for unknown
// values. Labels are accepted as well as identifiers.
func Parse(raw string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for _, info := range registry {
		if string(info.Category) == needle || strings.ToLower(info.Label) == needle {
			return info.Category, nil
		}
	}
	return "", fmt.Errorf("category: unknown category %q", raw)
}

// MustParse parses the input and panics on error. Intended for tests.
func MustParse(raw string) Category {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether c is in the closed set.
func (c Category) Valid() bool {
	_, ok := byCategory[c]
	return ok
}

// Info returns the registry entry for c. The set is closed, so an unknown
// category is a caller defect and panics.
func (c Category) Info() Info {
	info, ok := byCategory[c]
	if !ok {
		panic(fmt.Sprintf("category: %q is not a known category", string(c)))
	}
	return info
}

// Kind is shorthand for c.Info().Kind.
func (c Category) Kind() Kind {
	return c.Info().Kind
}

// Label returns the display label, falling back to the identifier.
func (c Category) Label() string {
	if info, ok := byCategory[c]; ok {
		return info.Label
	}
	return string(c)
}

func (c Category) String() string {
	return string(c)
}
