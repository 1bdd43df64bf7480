package stackpct

import (
	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/normalize"
)

// View holds the raw chart data behind a displayed percentage chart together with
// the current visibility mask. Percentages are always recomputed from the retained
// raw data, so a series hidden and shown again gets its share back exactly.
//
// A View is owned by one caller and is not safe for concurrent use.
type View struct {
	original models.ChartData
	mask     models.VisibilityMask
}

// NewView returns a view over a deep copy of data with every series visible.
func NewView(data models.ChartData) *View {
	return &View{original: data.Clone()}
}

// NewViewFromResult returns a view over a built chart, keeping its hidden series.
func NewViewFromResult(result *models.ChartResult) *View {
	v := NewView(result.Data)
	v.mask = result.Hidden
	return v
}

// Original returns a deep copy of the raw data.
func (v *View) Original() models.ChartData {
	return v.original.Clone()
}

// Mask returns the current visibility mask.
func (v *View) Mask() models.VisibilityMask {
	return v.mask
}

// Percentages returns the percentage view under the current mask.
func (v *View) Percentages() models.PercentSet {
	return normalize.NormalizeCategories(v.original.Datasets, v.mask, len(v.original.Labels))
}

// Totals returns the visible total of each category.
func (v *View) Totals() []float64 {
	return normalize.Totals(v.original.Datasets, v.mask, len(v.original.Labels))
}

// Toggle flips the visibility of series i and returns the recomputed percentages.
// Indices outside the series range leave the mask unchanged.
func (v *View) Toggle(i int) models.PercentSet {
	if i >= 0 && i < len(v.original.Datasets) {
		v.mask = normalize.ToggleVisibility(v.mask, i)
	}
	return v.Percentages()
}

// SetVisible makes exactly the listed series visible and returns the recomputed percentages.
func (v *View) SetVisible(indices ...int) models.PercentSet {
	v.mask = models.VisibleOnly(len(v.original.Datasets), indices...)
	return v.Percentages()
}

// Update replaces the raw data, for example after a chart filter change.
// Hidden flags are kept for series indices that still exist.
func (v *View) Update(data models.ChartData) models.PercentSet {
	v.original = data.Clone()
	v.mask = hiddenMask(v.mask.HiddenIndices(), len(v.original.Datasets))
	return v.Percentages()
}
