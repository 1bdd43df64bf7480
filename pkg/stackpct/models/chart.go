package models

// ChartData holds the category labels and aggregated raw series of a chart.
type ChartData struct {
	// Labels are the category labels along the x axis.
	Labels []string `json:"labels"`
	// Datasets are the raw series, one value per label.
	Datasets SeriesSet `json:"datasets"`
}

// Clone returns a deep copy of the chart data.
func (c ChartData) Clone() ChartData {
	out := ChartData{Datasets: c.Datasets.Clone()}
	if c.Labels != nil {
		out.Labels = append([]string(nil), c.Labels...)
	}
	return out
}

// ChartResult represents a generated chart including its percentage view.
type ChartResult struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// Sheet is the sheet the data was read from.
	Sheet string `json:"sheet"`
	// ChartType is the chart type (line, bar, stackedBar, percentStackedBar).
	ChartType string `json:"chart_type"`
	// Data is the raw aggregated chart data. It is never replaced by percentages.
	Data ChartData `json:"chart_data"`
	// Percentages is the normalized view, set only for percentStackedBar charts.
	Percentages PercentSet `json:"percentages,omitempty"`
	// Hidden is the visibility mask the percentages were computed with.
	Hidden VisibilityMask `json:"hidden"`
	// FilterValues lists the distinct values of the chart filter column.
	FilterValues []string `json:"chart_filter_values,omitempty"`
	// FilteredData holds the chart data for every chart filter value, keyed by value,
	// so a viewer can switch filters without rebuilding.
	FilteredData map[string]ChartData `json:"filtered_data,omitempty"`
	// RowCount is the number of rows left after filtering.
	RowCount int `json:"filtered_row_count"`
}
