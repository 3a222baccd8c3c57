// Package moodengine derives trend, breakdown and narrative insights from a
// user's mood check-in history.
//
// Every function in this package is pure: callers hand in a snapshot of raw
// entries plus the evaluation instant and get read-only views back. The only
// stateful piece, the per-visit support prompt flag, is passed in and returned
// explicitly (see SupportPromptState).
package moodengine

import "strings"

// Category is one of the five ordered mood levels.
type Category string

const (
	Struggling Category = "struggling"
	Low        Category = "low"
	Okay       Category = "okay"
	Good       Category = "good"
	Amazing    Category = "amazing"
)

// MinValue and MaxValue bound every normalized mood value.
const (
	MinValue = 1
	MaxValue = 5
)

type categoryInfo struct {
	value int
	label string
	color string
}

var categories = map[Category]categoryInfo{
	Struggling: {value: 1, label: "Struggling", color: "#cfd2d6"},
	Low:        {value: 2, label: "Low", color: "#a9c3b1"},
	Okay:       {value: 3, label: "Okay", color: "#b9a7f3"},
	Good:       {value: 4, label: "Good", color: "#f8a7c3"},
	Amazing:    {value: 5, label: "Amazing", color: "#f06292"},
}

// DisplayOrder lists categories from highest to lowest value. It is the
// order of the breakdown legend and also the tie-break priority for the
// most common category: when counts are equal the higher-valued category wins.
var DisplayOrder = []Category{Amazing, Good, Okay, Low, Struggling}

// ParseCategory maps a free-text mood label onto a category. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseCategory(label string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(label)))
	if !c.Valid() {
		return "", false
	}
	return c, true
}

// CategoryForValue returns the category whose value is v.
func CategoryForValue(v int) (Category, bool) {
	for c, info := range categories {
		if info.value == v {
			return c, true
		}
	}
	return "", false
}

// Value returns the numeric level (1-5), or 0 for an unknown category.
func (c Category) Value() int {
	return categories[c].value
}

// Label returns the display label, e.g. "Amazing".
func (c Category) Label() string {
	return categories[c].label
}

// Color returns the chart color for the category.
func (c Category) Color() string {
	return categories[c].color
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}
