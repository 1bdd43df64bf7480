package models

// SheetInfo describes one sheet of an uploaded workbook.
type SheetInfo struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Columns lists the header names, when the sheet was read.
	Columns []string `json:"columns,omitempty"`
	// RowCount is the number of data rows below the header.
	RowCount int `json:"row_count"`
	// Error is set when the sheet could not be read.
	Error string `json:"error,omitempty"`
}

// WorkbookInfo represents workbook-level metadata.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetInfo `json:"sheets"`
}
