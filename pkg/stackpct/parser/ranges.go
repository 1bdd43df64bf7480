package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference into its sheet name and area.
// Accepted forms: A1:D10, $A$1:$D$10, Sheet1!A1:D10 and 'My Sheet'!$A$1:$D$10.
// The sheet name is empty when the reference carries none.
func ParseRange(ref string) (string, models.Area, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	rangeStr := ref
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area, ok := parseRangeToArea(rangeStr)
	if !ok {
		return "", models.Area{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}
	return sheetName, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10. A single cell is a 1x1 area.
func parseRangeToArea(rangeStr string) (models.Area, bool) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Area{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Area{}, false
	}

	// Normalize reversed references such as D10:A1
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
