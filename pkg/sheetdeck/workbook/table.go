package workbook

import (
	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads the occupied rectangle of the data sheet as display
// strings. Ragged rows are padded with empty strings so every row has
// the same length, and an empty sheet yields a single empty cell. The
// result is always at least 1x1.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	rowCount := len(rows)
	if rowCount < 1 {
		rowCount = 1
	}
	colCount := 1
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	cells := make([][]string, rowCount)
	for r := range cells {
		cells[r] = make([]string, colCount)
		if r < len(rows) {
			copy(cells[r], rows[r])
		}
	}

	return &models.Table{Cells: cells}, nil
}
