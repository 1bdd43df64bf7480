package parser

import (
	"sort"

	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
)

// category is one distinct x-axis value and the rows that carry it.
type category struct {
	label   string
	numeric *float64
	rows    []int
}

// Aggregate groups the table rows by the x column and sums each y column per group.
//
// Labels are the distinct non-empty x values, numbers first in numeric order, then
// text in lexical order. A y value is nil when no row of the group has a numeric cell
// in that column; non-numeric cells are skipped.
func Aggregate(t *models.Table, xColumn string, yColumns []string) (models.ChartData, error) {
	for _, name := range append([]string{xColumn}, yColumns...) {
		if !t.HasColumn(name) {
			return models.ChartData{}, columnError(name)
		}
	}

	categories := groupRows(t, xColumn)

	data := models.ChartData{
		Labels:   make([]string, len(categories)),
		Datasets: make(models.SeriesSet, 0, len(yColumns)),
	}
	for i, c := range categories {
		data.Labels[i] = c.label
	}

	for _, y := range yColumns {
		values := make([]*float64, len(categories))
		for i, c := range categories {
			values[i] = sumColumn(t, c.rows, y)
		}
		data.Datasets = append(data.Datasets, models.Series{
			Label:  y,
			Values: values,
		})
	}
	return data, nil
}

// groupRows collects row indexes per distinct x value and returns the groups sorted.
func groupRows(t *models.Table, xColumn string) []*category {
	byLabel := make(map[string]*category)
	var categories []*category
	for i, row := range t.Rows {
		v, ok := row.Cells[xColumn]
		if !ok {
			continue
		}
		label := cellString(v)
		if label == "" {
			continue
		}
		c, ok := byLabel[label]
		if !ok {
			c = &category{label: label}
			if _, isText := v.(string); !isText {
				c.numeric = Coerce(v)
			}
			byLabel[label] = c
			categories = append(categories, c)
		}
		c.rows = append(c.rows, i)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		a, b := categories[i], categories[j]
		switch {
		case a.numeric != nil && b.numeric != nil:
			return *a.numeric < *b.numeric
		case a.numeric != nil:
			return true
		case b.numeric != nil:
			return false
		default:
			return a.label < b.label
		}
	})
	return categories
}

// sumColumn sums the numeric cells of column over the given rows.
func sumColumn(t *models.Table, rows []int, column string) *float64 {
	var sum float64
	found := false
	for _, idx := range rows {
		v := Coerce(t.Rows[idx].Cells[column])
		if v == nil {
			continue
		}
		sum += *v
		found = true
	}
	if !found {
		return nil
	}
	return &sum
}
