package format

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if err := WriteWorkbook(sampleRows(3), "Consumption", path); err != nil {
		t.Fatalf("WriteWorkbook() failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook failed: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Sheet1", "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if header != "Start time (UTC)" {
		t.Errorf("A1 = %q, want header", header)
	}

	value, err := f.GetCellValue("Sheet1", "C2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if value != "1" {
		t.Errorf("C2 = %q, want %q", value, "1")
	}

	datasetID, err := f.GetCellValue("Sheet1", "D4")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if datasetID != "193" {
		t.Errorf("D4 = %q, want %q", datasetID, "193")
	}

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 4 { // header + 3 data rows
		t.Errorf("row count = %d, want 4", len(rows))
	}
}

func TestWriteWorkbook_EmptyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := WriteWorkbook(nil, "Wind", path); err != nil {
		t.Fatalf("WriteWorkbook() with no rows failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 { // header only
		t.Errorf("row count = %d, want 1", len(rows))
	}
}
