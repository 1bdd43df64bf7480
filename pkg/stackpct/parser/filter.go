package parser

import (
	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
)

// FilterOptions selects the rows of a table that feed a chart.
type FilterOptions struct {
	// StartRow is the first Excel row number to keep (inclusive). 0 means no lower bound.
	StartRow int `yaml:"start_row" json:"start_row"`
	// EndRow is the last Excel row number to keep (inclusive). 0 means no upper bound.
	EndRow int `yaml:"end_row" json:"end_row"`
	// Column and Value keep only rows whose Column cell equals Value.
	// Numeric cells match by number, so "1.0" selects a cell holding 1.
	// The filter is skipped when either is empty.
	Column string `yaml:"column" json:"column"`
	Value  string `yaml:"value" json:"value"`
}

// Filter returns a new table holding the rows of t selected by opts.
// The row range is applied before the column filter. t is not modified.
func Filter(t *models.Table, opts FilterOptions) (*models.Table, error) {
	useColumn := opts.Column != "" && opts.Value != ""
	if useColumn && !t.HasColumn(opts.Column) {
		return nil, columnError(opts.Column)
	}

	out := &models.Table{
		Sheet:     t.Sheet,
		HeaderRow: t.HeaderRow,
		Columns:   t.Columns,
	}
	for _, row := range t.Rows {
		if opts.StartRow > 0 && row.R < opts.StartRow {
			continue
		}
		if opts.EndRow > 0 && row.R > opts.EndRow {
			continue
		}
		if useColumn && !matchValue(row.Cells[opts.Column], opts.Value) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// matchValue reports whether a cell equals the filter value.
// Numeric cells compare as numbers when the value parses as one; text compares exactly.
func matchValue(cell interface{}, want string) bool {
	switch cell.(type) {
	case int64, float64:
		if n, w := Coerce(cell), Coerce(want); n != nil && w != nil {
			return *n == *w
		}
	}
	return cellString(cell) == want
}

// UniqueValues returns the distinct non-empty values of a column in first-seen order.
func UniqueValues(t *models.Table, column string) ([]string, error) {
	if !t.HasColumn(column) {
		return nil, columnError(column)
	}

	var out []string
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		v, ok := row.Cells[column]
		if !ok {
			continue
		}
		s := cellString(v)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}
