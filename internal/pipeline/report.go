package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"longoptgen/internal"
)

// ExportRowsToXLSX writes the review sheet: every parsed tuple with its
// derived macro, trimmed value, and whether the dedupe filter kept it.
func ExportRowsToXLSX(rows []internal.ReportRow, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"index", "option_name", "macro_name", "value", "kept", "duplicate_of"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.Index)
		set(2, row.OptionName)
		set(3, row.MacroName)
		set(4, row.Value)
		set(5, row.Kept)
		set(6, row.DuplicateOf)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
