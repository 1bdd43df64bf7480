package stackpct

import (
	"errors"
	"fmt"

	"github.com/ukaji3/stackpct-go/pkg/stackpct/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrMissingParameters indicates the options lack a sheet, axis or chart type.
var ErrMissingParameters = errors.New("missing required parameters")

// ErrUnsupportedChartType indicates an unknown chart type.
var ErrUnsupportedChartType = errors.New("unsupported chart type")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrColumnNotFound indicates a requested column does not exist.
var ErrColumnNotFound = parser.ErrColumnNotFound

// BuildError represents an error during chart generation.
type BuildError struct {
	Sheet string
	Stage string // "read", "filter", "chart_filter", "aggregate"
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(sheet, stage string, err error) *BuildError {
	return &BuildError{
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}

// ErrInvalidRange indicates a range option could not be parsed.
var ErrInvalidRange = parser.ErrInvalidRange
