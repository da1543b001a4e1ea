package workbook

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadTable(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Region")
	f.SetCellValue("Sheet1", "B1", "Total")
	f.SetCellValue("Sheet1", "A2", "North")
	f.SetCellValue("Sheet1", "B2", 120)
	f.SetCellValue("Sheet1", "A3", "South")
	f.SetCellValue("Sheet1", "B3", 80.5)
	f2 := saveAndReopen(t, f)

	table, err := ReadTable(f2, "Sheet1")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if table.RowCount() != 3 || table.ColCount() != 2 {
		t.Fatalf("expected 3x2 table, got %dx%d", table.RowCount(), table.ColCount())
	}
	if table.Cells[0][0] != "Region" || table.Cells[0][1] != "Total" {
		t.Errorf("unexpected header row: %v", table.Cells[0])
	}
	if table.Cells[1][1] != "120" {
		t.Errorf("expected %q, got %q", "120", table.Cells[1][1])
	}
	if table.Cells[2][1] != "80.5" {
		t.Errorf("expected %q, got %q", "80.5", table.Cells[2][1])
	}
}

func TestReadTableRaggedRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "a")
	f.SetCellValue("Sheet1", "B1", "b")
	f.SetCellValue("Sheet1", "C1", "c")
	f.SetCellValue("Sheet1", "A2", "d")
	f2 := saveAndReopen(t, f)

	table, err := ReadTable(f2, "Sheet1")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if table.RowCount() != 2 || table.ColCount() != 3 {
		t.Fatalf("expected 2x3 table, got %dx%d", table.RowCount(), table.ColCount())
	}
	// Short rows pad with empty strings, never a placeholder word.
	if table.Cells[1][1] != "" || table.Cells[1][2] != "" {
		t.Errorf("expected empty padding, got %v", table.Cells[1])
	}
}

func TestReadTableGapRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "top")
	f.SetCellValue("Sheet1", "A3", "bottom")
	f2 := saveAndReopen(t, f)

	table, err := ReadTable(f2, "Sheet1")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if table.RowCount() != 3 || table.ColCount() != 1 {
		t.Fatalf("expected 3x1 table, got %dx%d", table.RowCount(), table.ColCount())
	}
	if table.Cells[1][0] != "" {
		t.Errorf("expected empty middle row, got %q", table.Cells[1][0])
	}
}

func TestReadTableEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f2 := saveAndReopen(t, f)

	table, err := ReadTable(f2, "Sheet1")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if table.RowCount() != 1 || table.ColCount() != 1 {
		t.Fatalf("expected 1x1 table for empty sheet, got %dx%d", table.RowCount(), table.ColCount())
	}
	if table.Cells[0][0] != "" {
		t.Errorf("expected empty cell, got %q", table.Cells[0][0])
	}
}

func TestSheetPair(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Data"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f2 := saveAndReopen(t, f)

	settingsSheet, dataSheet, err := SheetPair(f2)
	if err != nil {
		t.Fatalf("SheetPair failed: %v", err)
	}
	if settingsSheet != "Sheet1" || dataSheet != "Data" {
		t.Errorf("SheetPair = %q, %q, expected Sheet1, Data", settingsSheet, dataSheet)
	}
}

func TestSheetPairTooFewSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f2 := saveAndReopen(t, f)

	_, _, err := SheetPair(f2)
	if err == nil {
		t.Fatal("expected error for single-sheet workbook")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !errors.Is(err, ErrTooFewSheets) {
		t.Errorf("expected ErrTooFewSheets, got %v", err)
	}
}
