package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
	"github.com/xuri/excelize/v2"
)

// TableOptions configures how a sheet is read into a table.
type TableOptions struct {
	// Area restricts reading to a cell range. Nil reads the whole sheet.
	Area *models.Area
}

// SheetNames returns the sheet names of a workbook in workbook order.
func SheetNames(f *excelize.File) []string {
	return f.GetSheetList()
}

// ReadTable reads a sheet into a table.
// The first non-empty row inside the data bounds is the header row; every
// non-empty row below it becomes a data row.
func ReadTable(f *excelize.File, sheetName string, opts TableOptions) (*models.Table, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	// Raw values keep number formats such as thousands separators out of numeric cells
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return tableFromRows(sheetName, rows, opts.Area, newDateConverter(f, sheetName)), nil
}

// cellConverter turns the raw text of the cell at 0-based coordinates into a cell value.
type cellConverter func(rowIdx, colIdx int, raw string) interface{}

// tableFromRows builds a table from a grid of cell strings.
// A nil convert parses every cell with parseValue.
func tableFromRows(sheetName string, rows [][]string, area *models.Area, convert cellConverter) *models.Table {
	if convert == nil {
		convert = func(_, _ int, raw string) interface{} { return parseValue(raw) }
	}
	table := &models.Table{Sheet: sheetName}

	b := findDataBounds(rows, area)
	if b.empty() {
		return table
	}

	table.HeaderRow = b.minRow + 1
	headers := make([]string, 0, b.maxCol-b.minCol+1)
	for colIdx := b.minCol; colIdx <= b.maxCol; colIdx++ {
		header := cellAt(rows, b.minRow, colIdx)
		if header != "" {
			header = cellString(convert(b.minRow, colIdx, header))
		}
		headers = append(headers, strings.TrimSpace(header))
	}
	table.Columns = uniqueHeaders(headers)

	for rowIdx := b.minRow + 1; rowIdx <= b.maxRow; rowIdx++ {
		cells := make(map[string]interface{})
		for i, name := range table.Columns {
			cellValue := cellAt(rows, rowIdx, b.minCol+i)
			if cellValue == "" {
				continue
			}
			cells[name] = convert(rowIdx, b.minCol+i, cellValue)
		}
		if len(cells) == 0 {
			continue
		}
		table.Rows = append(table.Rows, models.Row{
			R:     rowIdx + 1,
			Cells: cells,
		})
	}

	return table
}

// uniqueHeaders names blank headers "Unnamed: <i>" and suffixes duplicates with ".1", ".2", ...
func uniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	taken := make(map[string]bool, len(headers))
	for i, h := range headers {
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for n := 1; taken[name]; n++ {
			name = fmt.Sprintf("%s.%d", h, n)
		}
		taken[name] = true
		out[i] = name
	}
	return out
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float, rejecting the NaN and Inf spellings ParseFloat accepts
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}

// Coerce converts a cell value into a chart value.
// Numbers and numeric strings yield a value; empty, non-numeric, NaN and infinite
// inputs yield nil.
func Coerce(v interface{}) *float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case float32:
		f = float64(x)
	case float64:
		f = x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// cellString returns the text form of a cell value used for grouping and filtering.
func cellString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
