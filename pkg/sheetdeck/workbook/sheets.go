// Package workbook reads converter inputs from xlsx workbooks.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetPair returns the names of the settings sheet and the data sheet,
// the first two sheets of the workbook in tab order.
func SheetPair(f *excelize.File) (settingsSheet, dataSheet string, err error) {
	list := f.GetSheetList()
	if len(list) < 2 {
		return "", "", NewValidationError("sheet_count",
			fmt.Sprintf("workbook has %d sheet(s), need at least 2 (settings + data)", len(list)),
			ErrTooFewSheets)
	}
	return list[0], list[1], nil
}
