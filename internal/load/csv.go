// Package load turns raw source-file bytes into tables. The loaders are
// deliberately forgiving about shape (ragged rows, mixed record styles) but
// strict about unreadable input, mirroring the pipeline's tolerant-parse,
// fail-on-missing-data policy.
package load

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"foodpipe/internal/table"
)

// CSV reads header-plus-records data into a table. The header row decides
// the column count: shorter records are padded with empty cells and longer
// records are clipped, so the table is always rectangular. Header cells are
// whitespace-trimmed. An input without even a header row is an error.
func CSV(data []byte) (*table.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // ragged rows tolerated
	r.LazyQuotes = true    // hand-written files, forgiving quoting

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	t := table.New(header)
	t.TrimColumns()

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read record: %w", err)
		}
		t.AppendRow(rec)
	}
	return t, nil
}

// CSVFile reads the file at path through CSV.
func CSVFile(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return CSV(data)
}
