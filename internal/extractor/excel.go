package extractor

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxColumns guards against extremely wide sheets
const maxColumns = 1000

// ExcelReader implements line reading for Excel workbooks.
// Every row of every sheet becomes one comma-delimited line; cells holding a comma are quoted.
type ExcelReader struct{}

func (r *ExcelReader) ReadLines(reader io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string

	for _, sheet := range f.GetSheetList() {
		rows, err := f.Rows(sheet)
		if err != nil {
			continue
		}

		for rows.Next() {
			row, err := rows.Columns()
			if err != nil {
				break
			}
			lines = append(lines, joinRow(row))
		}
		if err := rows.Close(); err != nil {
			return nil, err
		}
	}

	return lines, nil
}

func joinRow(row []string) string {
	if len(row) > maxColumns {
		row = row[:maxColumns]
	}
	cells := make([]string, len(row))
	for i, cell := range row {
		if strings.Contains(cell, ",") {
			cell = `"` + cell + `"`
		}
		cells[i] = cell
	}
	return strings.Join(cells, ",")
}
