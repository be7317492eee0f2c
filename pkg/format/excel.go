package format

import (
	"fmt"

	"github.com/fingrid-tools/opendata-client/pkg/series"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook exports rows to an Excel workbook at path. One sheet, header
// row, one row per data point.
func WriteWorkbook(rows []series.Row, label, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"Start time (UTC)", "End time (UTC)", "Value", "Dataset ID"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, r := range rows {
		values := []any{
			r.StartTime.Format(timeColumnLayout),
			r.EndTime.Format(timeColumnLayout),
			r.Value,
			r.DatasetID,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{Title: label}); err != nil {
		return fmt.Errorf("set workbook title: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
