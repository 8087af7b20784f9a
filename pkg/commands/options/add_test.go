package options

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/dietlog/pkg/category"
	"tableflip.dev/dietlog/pkg/format"
)

func TestFieldsPositional(t *testing.T) {
	tests := map[string]struct {
		c    category.Category
		opts EntryOptions
		args []string
		want format.Fields
	}{
		"clock time": {
			c:    category.WakeUpTime,
			args: []string{"7:30"},
			want: format.Fields{Time: "7:30"},
		},
		"weight": {
			c:    category.Weight,
			args: []string{"80,4"},
			want: format.Fields{Value: "80,4"},
		},
		"text joins args": {
			c:    category.Liquid,
			args: []string{"2", "liters", "water"},
			want: format.Fields{Text: "2 liters water"},
		},
		"choice": {
			c:    category.StomachFeeling,
			args: []string{"Bloated"},
			want: format.Fields{Choice: "Bloated"},
		},
		"activity label keeps range flags": {
			c:    category.Activity,
			opts: EntryOptions{Start: "09:00", End: "09:40"},
			args: []string{"Walking"},
			want: format.Fields{Start: "09:00", End: "09:40", Choice: "Walking"},
		},
		"working hours from two times": {
			c:    category.WorkingHours,
			args: []string{"09:00", "18:00"},
			want: format.Fields{Start: "09:00", End: "18:00"},
		},
		"activity times and label": {
			c:    category.Activity,
			args: []string{"09:00", "09:40", "Gym", "Workout"},
			want: format.Fields{Start: "09:00", End: "09:40", Choice: "Gym Workout"},
		},
		"meal start and description": {
			c:    category.Dinner,
			args: []string{"19:00", "Soup"},
			want: format.Fields{Start: "19:00", Description: "Soup"},
		},
		"meal description": {
			c:    category.Breakfast,
			opts: EntryOptions{Start: "08:00"},
			args: []string{"Eggs,", "toast"},
			want: format.Fields{Start: "08:00", Description: "Eggs, toast"},
		},
		"flags only": {
			c:    category.Supplements,
			opts: EntryOptions{Items: []string{"Zinc", "Iron"}},
			want: format.Fields{Items: []string{"Zinc", "Iron"}},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.opts.Fields(tc.c, tc.args)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFieldsRangeRejectsExtraArgs(t *testing.T) {
	o := &EntryOptions{}
	_, err := o.Fields(category.WorkingHours, []string{"09:00", "18:00", "remote"})
	assert.ErrorContains(t, err, `unexpected "remote"`)

	_, err = o.Fields(category.WorkingHours, []string{"all", "day"})
	assert.Error(t, err)
}

func TestFormatValidate(t *testing.T) {
	for _, o := range []string{"pretty", "json", "yaml"} {
		assert.NoError(t, (&FormatOptions{Output: o}).Validate(), o)
	}
	assert.Error(t, (&FormatOptions{Output: "xml"}).Validate())
}

func TestFormatApplyJSON(t *testing.T) {
	o := &FormatOptions{Output: "yaml"}
	assert.NoError(t, o.Apply(true))
	assert.Equal(t, "json", o.Output)

	o = &FormatOptions{Output: "yaml"}
	assert.NoError(t, o.Apply(false))
	assert.Equal(t, "yaml", o.Output)
}
