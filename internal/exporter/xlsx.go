package exporter

import (
	"io"

	"github.com/xuri/excelize/v2"

	apperrors "bookingdesk/internal/errors"
)

// DefaultSheetName names the single tab of exported workbooks.
const DefaultSheetName = "Bookings"

// WriteXLSX writes the table as a one-tab workbook with a bold, frozen
// header row. Values are written as text so cells keep their sheet format.
func WriteXLSX(w io.Writer, sheet string, table Table) error {
	if sheet == "" {
		sheet = DefaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return apperrors.NewExportError("failed to name sheet", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return apperrors.NewExportError("failed to open sheet writer", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return apperrors.NewExportError("failed to create header style", err)
	}

	rowNum := 1
	if len(table.Headers) > 0 {
		if err := sw.SetPanes(&excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return apperrors.NewExportError("failed to freeze header", err)
		}

		header := make([]interface{}, len(table.Headers))
		for i, h := range table.Headers {
			header[i] = excelize.Cell{StyleID: bold, Value: h}
		}
		if err := sw.SetRow("A1", header); err != nil {
			return apperrors.NewExportError("failed to write headers", err)
		}
		rowNum++
	}

	for _, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		axis, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return apperrors.NewExportError("failed to address row", err)
		}
		if err := sw.SetRow(axis, cells); err != nil {
			return apperrors.NewExportError("failed to write row", err).WithContext("row", rowNum)
		}
		rowNum++
	}

	if err := sw.Flush(); err != nil {
		return apperrors.NewExportError("failed to flush sheet", err)
	}
	if err := f.Write(w); err != nil {
		return apperrors.NewExportError("failed to write workbook", err)
	}
	return nil
}
