package stackpct

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/normalize"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/parser"
	"github.com/xuri/excelize/v2"
)

// Build reads a workbook and generates the chart described by opts.
func Build(path string, opts Options) (*models.ChartResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tableOpts, err := opts.tableOptions()
	if err != nil {
		return nil, err
	}

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := parser.ReadTable(f, opts.Sheet, tableOpts)
	if err != nil {
		return nil, NewBuildError(opts.Sheet, "read", err)
	}

	result, err := BuildFromTable(table, opts)
	if err != nil {
		return nil, err
	}
	result.BookName = filepath.Base(path)
	return result, nil
}

// BuildFromTable generates a chart from an already loaded table.
//
// The row filter runs first, then the distinct chart filter values are collected,
// then the chart filter narrows the rows before aggregation. Every chart filter value
// is also aggregated on its own into FilteredData. Percentage charts are normalized
// against opts.Hidden; the raw aggregated data is always kept in the result.
func BuildFromTable(table *models.Table, opts Options) (*models.ChartResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	filtered, err := parser.Filter(table, opts.Filter)
	if err != nil {
		return nil, NewBuildError(table.Sheet, "filter", err)
	}

	var (
		filterValues []string
		filteredData map[string]models.ChartData
	)
	if opts.ChartFilter.Column != "" {
		filterValues, err = parser.UniqueValues(filtered, opts.ChartFilter.Column)
		if err != nil {
			return nil, NewBuildError(table.Sheet, "chart_filter", err)
		}
		filteredData, err = aggregateByValue(filtered, opts, filterValues)
		if err != nil {
			return nil, NewBuildError(table.Sheet, "chart_filter", err)
		}
		filtered, err = parser.Filter(filtered, parser.FilterOptions{
			Column: opts.ChartFilter.Column,
			Value:  opts.ChartFilter.Value,
		})
		if err != nil {
			return nil, NewBuildError(table.Sheet, "chart_filter", err)
		}
	}

	data, err := parser.Aggregate(filtered, opts.XAxis, opts.YAxes)
	if err != nil {
		return nil, NewBuildError(table.Sheet, "aggregate", err)
	}

	mask := hiddenMask(opts.Hidden, len(data.Datasets))
	result := &models.ChartResult{
		Sheet:        table.Sheet,
		ChartType:    string(opts.ChartType),
		Data:         data,
		Hidden:       mask,
		FilterValues: filterValues,
		FilteredData: filteredData,
		RowCount:     len(filtered.Rows),
	}
	if opts.Normalized() {
		result.Percentages = normalize.NormalizeCategories(data.Datasets, mask, len(data.Labels))
	}
	return result, nil
}

// aggregateByValue aggregates the rows of each chart filter value separately.
func aggregateByValue(table *models.Table, opts Options, values []string) (map[string]models.ChartData, error) {
	out := make(map[string]models.ChartData, len(values))
	for _, value := range values {
		rows, err := parser.Filter(table, parser.FilterOptions{
			Column: opts.ChartFilter.Column,
			Value:  value,
		})
		if err != nil {
			return nil, err
		}
		data, err := parser.Aggregate(rows, opts.XAxis, opts.YAxes)
		if err != nil {
			return nil, err
		}
		out[value] = data
	}
	return out, nil
}

// Inspect lists the sheets of a workbook with their header columns and row counts.
// A sheet that cannot be read is still listed, with its Error set.
func Inspect(path string) (*models.WorkbookInfo, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info := &models.WorkbookInfo{BookName: filepath.Base(path)}
	for _, sheetName := range parser.SheetNames(f) {
		info.Sheets = append(info.Sheets, inspectSheet(f, sheetName))
	}
	return info, nil
}

func inspectSheet(f *excelize.File, sheetName string) models.SheetInfo {
	sheet := models.SheetInfo{Name: sheetName}
	table, err := parser.ReadTable(f, sheetName, parser.TableOptions{})
	if err != nil {
		sheet.Error = NewBuildError(sheetName, "read", err).Error()
		return sheet
	}
	sheet.Columns = table.Columns
	sheet.RowCount = len(table.Rows)
	return sheet
}

// ReadTable reads one sheet of a workbook into a table.
func ReadTable(path, sheet, rangeRef string) (*models.Table, error) {
	tableOpts, err := Options{Sheet: sheet, Range: rangeRef}.tableOptions()
	if err != nil {
		return nil, err
	}
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := parser.ReadTable(f, sheet, tableOpts)
	if err != nil {
		return nil, NewBuildError(sheet, "read", err)
	}
	return table, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return f, nil
}

// tableOptions resolves the range option. A sheet-qualified range must name opts.Sheet.
func (o Options) tableOptions() (parser.TableOptions, error) {
	if o.Range == "" {
		return parser.TableOptions{}, nil
	}
	sheetName, area, err := parser.ParseRange(o.Range)
	if err != nil {
		return parser.TableOptions{}, err
	}
	if sheetName != "" && sheetName != o.Sheet {
		return parser.TableOptions{}, fmt.Errorf("%w: range %q refers to sheet %q, not %q",
			parser.ErrInvalidRange, o.Range, sheetName, o.Sheet)
	}
	return parser.TableOptions{Area: &area}, nil
}

// hiddenMask builds a mask from hidden indices, dropping those outside [0, n).
func hiddenMask(hidden []int, n int) models.VisibilityMask {
	mask := models.AllVisible()
	for _, i := range hidden {
		if i >= 0 && i < n {
			mask = mask.Hide(i)
		}
	}
	return mask
}
