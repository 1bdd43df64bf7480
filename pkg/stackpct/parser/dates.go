package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// DateLayout is the text form of date cells, matching ISO 8601 without a zone.
const DateLayout = "2006-01-02T15:04:05"

// builtInDateFormats are the built-in number format IDs that display dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// newDateConverter returns a converter that renders numeric cells with a date
// number format as DateLayout strings. Other cells go through parseValue.
func newDateConverter(f *excelize.File, sheetName string) cellConverter {
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	styles := make(map[int]bool)

	return func(rowIdx, colIdx int, raw string) interface{} {
		v := parseValue(raw)
		serial := Coerce(v)
		if _, isText := v.(string); isText || serial == nil {
			return v
		}

		cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
		if err != nil {
			return v
		}
		styleID, err := f.GetCellStyle(sheetName, cell)
		if err != nil {
			return v
		}
		isDate, ok := styles[styleID]
		if !ok {
			isDate = isDateStyle(f, styleID)
			styles[styleID] = isDate
		}
		if !isDate {
			return v
		}

		t, err := excelize.ExcelDateToTime(*serial, date1904)
		if err != nil {
			return v
		}
		return t.Format(DateLayout)
	}
}

// isDateStyle reports whether the cell style displays its number as a date or time.
func isDateStyle(f *excelize.File, styleID int) bool {
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtInDateFormats[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return false
}

// isDateFormatCode reports whether a custom number format code contains date or time tokens.
// Quoted literals, escaped characters and bracketed sections such as [Red] are ignored.
func isDateFormatCode(code string) bool {
	inQuote, inBracket, escaped := false, false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			inQuote = r != '"'
		case inBracket:
			inBracket = r != ']'
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		case strings.ContainsRune("ymdhs", r):
			return true
		}
	}
	return false
}
