package models

// Area represents cell coordinate bounds of a range such as A1:D10.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether the cell at row r, column c lies inside the area.
func (a Area) Contains(r, c int) bool {
	return r >= a.R1 && r <= a.R2 && c >= a.C1 && c <= a.C2
}
