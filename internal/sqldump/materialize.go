package sqldump

import (
	"strconv"

	"foodpipe/internal/table"
)

// Materialize turns the assembled records into a table. The column count is
// the maximum record length seen across all records: schema drift between
// statements widens the table, it never truncates a record. Shorter records
// are padded with empty cells.
//
// Columns get positional names col_1..col_N; when at least four columns
// exist, the first four are renamed to the restaurant convention. An empty
// record sequence yields an explicit empty table.
func Materialize(records [][]string) *table.Table {
	if len(records) == 0 {
		return table.New(nil)
	}

	width := 0
	for _, r := range records {
		if len(r) > width {
			width = len(r)
		}
	}

	cols := make([]string, width)
	for i := range cols {
		cols[i] = "col_" + strconv.Itoa(i+1)
	}

	t := table.New(cols)
	for _, r := range records {
		t.AppendRow(r)
	}

	if width >= len(RestaurantColumns) {
		for i, name := range RestaurantColumns {
			t.Rename(i, name)
		}
	}
	return t
}
