// Package models defines data structures for chart series and their percentage views.
package models

import (
	"math"

	"github.com/tiendc/go-deepcopy"
)

// Series represents one named sequence of values plotted across shared categories.
type Series struct {
	// Label is the series display name. It is not required to be unique.
	Label string `json:"label"`
	// Values holds one value per category. A nil entry is a missing cell.
	Values []*float64 `json:"data"`
}

// SeriesSet is an ordered list of series. Order is the stack order.
type SeriesSet []Series

// Len returns the number of categories, i.e. the length of the longest series.
func (s SeriesSet) Len() int {
	n := 0
	for _, series := range s {
		if len(series.Values) > n {
			n = len(series.Values)
		}
	}
	return n
}

// Labels returns the series labels in stack order.
func (s SeriesSet) Labels() []string {
	labels := make([]string, len(s))
	for i, series := range s {
		labels[i] = series.Label
	}
	return labels
}

// Clone returns a deep copy of the set. Value pointers are not shared with s.
func (s SeriesSet) Clone() SeriesSet {
	if s == nil {
		return nil
	}
	var out SeriesSet
	if err := deepcopy.Copy(&out, s); err != nil {
		// deepcopy only fails on incompatible types, which cannot happen for SeriesSet
		panic(err)
	}
	return out
}

// PercentSeries is a series whose values are shares of a category total, 0 to 100.
type PercentSeries struct {
	// Label is the series display name.
	Label string `json:"label"`
	// Values holds one percentage per category. Never NaN.
	Values []float64 `json:"data"`
}

// PercentSet is the percentage view of a SeriesSet, aligned with it index by index.
type PercentSet []PercentSeries

// Num returns a pointer to v. It is a convenience for building Series literals.
func Num(v float64) *float64 {
	return &v
}

// Nums converts a list of values into series values. NaN entries become nil.
func Nums(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i, v := range vs {
		if !math.IsNaN(v) {
			out[i] = Num(v)
		}
	}
	return out
}
