package models

// Row represents a single data row of a sheet.
type Row struct {
	// R is the Excel row number (1-based).
	R int `json:"r"`
	// Cells maps column header to cell value (int64, float64 or string).
	// Empty cells are absent.
	Cells map[string]interface{} `json:"c"`
}

// Table represents the rows of a sheet below its header row.
type Table struct {
	// Sheet is the sheet name the table was read from.
	Sheet string `json:"sheet"`
	// HeaderRow is the Excel row number of the header (1-based).
	HeaderRow int `json:"header_row"`
	// Columns lists the header names in column order.
	Columns []string `json:"columns"`
	// Rows contains the data rows in sheet order.
	Rows []Row `json:"rows,omitempty"`
}

// HasColumn reports whether the table has a column with the given header.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
