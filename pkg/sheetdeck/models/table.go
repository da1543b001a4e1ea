package models

// Table is the occupied rectangle of the data sheet, padded to a full
// rows x cols grid. Absent cells hold empty strings.
type Table struct {
	// Cells holds display strings, row-major, every row the same length.
	Cells [][]string `json:"cells"`
}

// RowCount returns the number of table rows, at least 1.
func (t *Table) RowCount() int {
	return len(t.Cells)
}

// ColCount returns the number of table columns, at least 1.
func (t *Table) ColCount() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0])
}
