package ingest

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadExcel parses a workbook into a Table. The header row is located by
// scanning each sheet for a row containing marker (a known column name,
// e.g. the pricing mapping's SKU column); everything below it becomes data.
// Finance teams move the header around between workbook revisions, so a
// fixed row index is not reliable.
func ReadExcel(path, marker string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		headerIdx := findHeaderRow(rows, marker)
		if headerIdx < 0 {
			continue
		}

		slog.Debug("found header row in workbook",
			slog.String("sheet", sheet),
			slog.Int("header_row", headerIdx))

		header := rows[headerIdx]
		table := &Table{Columns: header}
		for _, record := range rows[headerIdx+1:] {
			if isEmptyRecord(record) {
				continue
			}
			// excelize trims trailing empty cells, so short records here
			// are padding, not malformation.
			row := make(Row, len(header))
			for i, col := range header {
				if i < len(record) {
					row[col] = record[i]
				} else {
					row[col] = ""
				}
			}
			table.Rows = append(table.Rows, row)
		}
		return table, nil
	}

	return nil, fmt.Errorf("no sheet with header column %q in workbook", marker)
}

func findHeaderRow(rows [][]string, marker string) int {
	for i, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) == marker {
				return i
			}
		}
	}
	return -1
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
