// Package normalize converts raw series values into per-category percentage shares.
//
// Every function here is pure: inputs are never modified and identical inputs
// always produce identical outputs. Callers keep the raw series and recompute from
// them whenever visibility changes, never from a previous result.
package normalize

import (
	"math"

	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
)

// Normalize returns the percentage view of original under the given visibility mask.
//
// For each category i, the total is the sum of absolute values of all visible series at i.
// A visible series receives |v|/total*100 when the total is positive and 0 otherwise.
// Hidden series are zeroed. Nil, NaN and infinite values contribute 0.
// Each output series has the same length as its input series.
func Normalize(original models.SeriesSet, mask models.VisibilityMask) models.PercentSet {
	return NormalizeCategories(original, mask, original.Len())
}

// NormalizeCategories is Normalize with an explicit category count n.
// Values at positions >= n do not count toward any total and yield 0.
func NormalizeCategories(original models.SeriesSet, mask models.VisibilityMask, n int) models.PercentSet {
	scales, totals := scaledTotals(original, mask, n)

	out := make(models.PercentSet, len(original))
	for s, series := range original {
		values := make([]float64, len(series.Values))
		if mask.IsVisible(s) {
			for i, v := range series.Values {
				if i >= len(totals) || totals[i] <= 0 {
					continue
				}
				values[i] = contribution(v) / scales[i] / totals[i] * 100
			}
		}
		out[s] = models.PercentSeries{
			Label:  series.Label,
			Values: values,
		}
	}
	return out
}

// Totals returns the sum of absolute values of the visible series for each of n categories.
// A sum beyond the float64 range is +Inf.
func Totals(original models.SeriesSet, mask models.VisibilityMask, n int) []float64 {
	if n < 0 {
		n = 0
	}
	totals := make([]float64, n)
	for s, series := range original {
		if !mask.IsVisible(s) {
			continue
		}
		for i, v := range series.Values {
			if i >= n {
				break
			}
			totals[i] += contribution(v)
		}
	}
	return totals
}

// scaledTotals returns, per category, the largest visible magnitude and the visible
// sum divided by it. Shares computed from the scaled sums stay finite for any finite
// inputs. Categories without a positive magnitude have scale and total 0.
func scaledTotals(original models.SeriesSet, mask models.VisibilityMask, n int) (scales, totals []float64) {
	if n < 0 {
		n = 0
	}
	scales = make([]float64, n)
	for s, series := range original {
		if !mask.IsVisible(s) {
			continue
		}
		for i, v := range series.Values {
			if i >= n {
				break
			}
			scales[i] = math.Max(scales[i], contribution(v))
		}
	}

	totals = make([]float64, n)
	for s, series := range original {
		if !mask.IsVisible(s) {
			continue
		}
		for i, v := range series.Values {
			if i >= n {
				break
			}
			if scales[i] > 0 {
				totals[i] += contribution(v) / scales[i]
			}
		}
	}
	return scales, totals
}

// ToggleVisibility returns mask with series index flipped.
func ToggleVisibility(mask models.VisibilityMask, index int) models.VisibilityMask {
	return mask.Toggle(index)
}

// contribution is the absolute magnitude a cell adds to its category total.
func contribution(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return math.Abs(*v)
}
