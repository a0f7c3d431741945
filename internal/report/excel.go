package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "NDVI Stats"

// WriteXLSX writes the statistics workbook: one row per image with the
// numeric columns formatted to three decimals. Missing statistics stay as
// empty cells.
func WriteXLSX(rows []Row, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no report rows to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name report sheet: %w", err)
	}

	headers := []string{"Image Name", "NDVI Min", "NDVI Max", "NDVI Mean"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	numberFormat := "0.000"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numberFormat})
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "D", 12); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColStyle(sheetName, "B:D", style); err != nil {
		return fmt.Errorf("failed to set column style: %w", err)
	}

	for i, row := range rows {
		rowIndex := i + 2
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), row.Image); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowIndex, err)
		}
		for column, value := range map[string]*float64{
			"B": row.NDVIMin,
			"C": row.NDVIMax,
			"D": row.NDVIMean,
		} {
			if value == nil {
				continue
			}
			if err := f.SetCellValue(sheetName, fmt.Sprintf("%s%d", column, rowIndex), *value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", rowIndex, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}

	return nil
}
