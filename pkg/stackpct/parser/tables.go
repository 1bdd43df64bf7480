package parser

import (
	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
)

// bounds is the bounding box of non-empty cells, as 0-based row and column indexes.
type bounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

func (b bounds) empty() bool {
	return b.minRow < 0
}

// findDataBounds finds the bounding box of non-empty cells inside the optional area.
// minRow is -1 when no cell has data.
func findDataBounds(rows [][]string, area *models.Area) bounds {
	b := bounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if area != nil && !area.Contains(rowIdx+1, colIdx+1) {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if b.maxRow < 0 || rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if b.maxCol < 0 || colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b
}

// cellAt returns the cell at 0-based coordinates, or "" past the end of a short row.
func cellAt(rows [][]string, rowIdx, colIdx int) string {
	if rowIdx < 0 || rowIdx >= len(rows) {
		return ""
	}
	row := rows[rowIdx]
	if colIdx < 0 || colIdx >= len(row) {
		return ""
	}
	return row[colIdx]
}
