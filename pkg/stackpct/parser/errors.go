// Package parser reads spreadsheet sheets into tables and aggregates them into chart series.
package parser

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrColumnNotFound indicates a requested column header is not present in the table.
var ErrColumnNotFound = errors.New("column not found")

// ErrInvalidRange indicates a range reference could not be parsed.
var ErrInvalidRange = errors.New("invalid range reference")

func columnError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}
