package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// ExtraColumnsKey marks a row that carried more values than the header
	// has columns. The surplus values are joined under this key.
	ExtraColumnsKey = "extras"
	// MissingColumnValue is the sentinel stored for columns a short row did
	// not provide.
	MissingColumnValue = "MISSING_COLUMN_INPUT"
)

// Row is a single extract row keyed by physical column name.
type Row map[string]string

// Table is a parsed extract: the header columns in file order plus the rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// ReadCSV parses the extract at path. Short and long rows are tagged with
// the malformed-row sentinels, never dropped.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	// Excel exports prefix the first header cell with a UTF-8 BOM.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := &Table{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		table.Rows = append(table.Rows, rowFromRecord(header, record))
	}

	return table, nil
}

func rowFromRecord(columns, record []string) Row {
	row := make(Row, len(columns))
	for i, col := range columns {
		if i < len(record) {
			row[col] = record[i]
		} else {
			row[col] = MissingColumnValue
		}
	}
	if len(record) > len(columns) {
		row[ExtraColumnsKey] = strings.Join(record[len(columns):], ",")
	}
	return row
}

// IsWellFormed reports whether a row parsed cleanly: no missing column
// values and no extra values beyond the header.
func IsWellFormed(row Row) bool {
	if _, ok := row[ExtraColumnsKey]; ok {
		return false
	}
	for _, v := range row {
		if v == MissingColumnValue {
			return false
		}
	}
	return true
}

// WellFormed filters a table down to its well-formed rows, logging one
// diagnostic per rejected row.
func WellFormed(logger *slog.Logger, table *Table) []Row {
	rows := make([]Row, 0, len(table.Rows))
	for i, row := range table.Rows {
		if !IsWellFormed(row) {
			logger.Warn("dropping malformed row",
				slog.Int("row", i+1),
				slog.Any("columns", missingValueColumns(row)))
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func missingValueColumns(row Row) []string {
	var cols []string
	for k, v := range row {
		if v == MissingColumnValue {
			cols = append(cols, k)
		}
	}
	if _, ok := row[ExtraColumnsKey]; ok {
		cols = append(cols, ExtraColumnsKey)
	}
	return cols
}
