// Package stackpct builds chart series from spreadsheets and keeps their
// percentage-stacked view consistent with series visibility.
package stackpct

import (
	"fmt"

	"github.com/ukaji3/stackpct-go/pkg/stackpct/parser"
)

// ChartType represents the kind of chart the series are aggregated for.
type ChartType string

const (
	// ChartLine plots raw values as lines.
	ChartLine ChartType = "line"
	// ChartBar plots raw values as grouped bars.
	ChartBar ChartType = "bar"
	// ChartStackedBar stacks raw values.
	ChartStackedBar ChartType = "stackedBar"
	// ChartPercentStackedBar stacks each series' share of the category total.
	ChartPercentStackedBar ChartType = "percentStackedBar"
)

// ParseChartType validates a chart type name.
func ParseChartType(s string) (ChartType, error) {
	switch ct := ChartType(s); ct {
	case ChartLine, ChartBar, ChartStackedBar, ChartPercentStackedBar:
		return ct, nil
	default:
		return "", fmt.Errorf("%w: %s (must be line, bar, stackedBar, or percentStackedBar)", ErrUnsupportedChartType, s)
	}
}

// ChartFilter narrows the chart to the rows where Column equals Value.
// Column alone only collects the distinct values offered to the user.
type ChartFilter struct {
	Column string `yaml:"column" json:"column"`
	Value  string `yaml:"value" json:"value"`
}

// Options configures chart generation.
type Options struct {
	// ChartType selects the chart kind. Only percentStackedBar is normalized.
	ChartType ChartType `yaml:"chart_type" json:"chart_type"`
	// Sheet is the sheet to read.
	Sheet string `yaml:"sheet" json:"sheet"`
	// Range restricts reading to a cell range such as A1:F40. Empty reads the whole sheet.
	Range string `yaml:"range,omitempty" json:"range,omitempty"`
	// XAxis is the header of the category column.
	XAxis string `yaml:"x_axis" json:"x_axis"`
	// YAxes are the headers of the value columns, one series each.
	YAxes []string `yaml:"y_axes" json:"y_axes"`
	// Filter selects the source rows before aggregation.
	Filter parser.FilterOptions `yaml:"filter,omitempty" json:"filter,omitempty"`
	// ChartFilter is applied after Filter and reports the distinct values of its column.
	ChartFilter ChartFilter `yaml:"chart_filter,omitempty" json:"chart_filter,omitempty"`
	// Hidden lists the series indices hidden from the percentage totals.
	Hidden []int `yaml:"hidden,omitempty" json:"hidden,omitempty"`
}

// DefaultOptions returns default chart options.
func DefaultOptions() Options {
	return Options{
		ChartType: ChartPercentStackedBar,
	}
}

// Validate checks that the options name everything a chart needs.
func (o Options) Validate() error {
	if o.Sheet == "" || o.XAxis == "" || len(o.YAxes) == 0 || o.ChartType == "" {
		return ErrMissingParameters
	}
	_, err := ParseChartType(string(o.ChartType))
	return err
}

// Normalized reports whether the chart type uses the percentage view.
func (o Options) Normalized() bool {
	return o.ChartType == ChartPercentStackedBar
}
