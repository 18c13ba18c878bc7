package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"api-waste-admin/model"
)

// RenderXLSX produces the spreadsheet variant of a table export. Same grid,
// same ordering guarantees as the PDF.
func RenderXLSX(t Table, rows []model.Row) ([]byte, error) {
	headers, body := t.BuildGrid(rows)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	for r, cells := range body {
		for c, value := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
