// Package table holds the in-memory table value shared by every pipeline
// stage: an ordered list of column names plus ordered rows of string cells.
// Cells stay untyped strings until a stage explicitly coerces them.
package table

import (
	"fmt"
	"strings"
)

// Table is an ordered grid of string cells. The column count is fixed at
// construction; AppendRow pads or clips incoming rows to that width so every
// stored row has exactly len(cols) cells.
type Table struct {
	cols []string
	rows [][]string
}

// New creates an empty table with the given column names.
// The slice is copied, so callers may reuse theirs.
func New(cols []string) *Table {
	c := make([]string, len(cols))
	copy(c, cols)
	return &Table{cols: c}
}

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// AppendRow stores one row. Short rows are padded with empty cells, long rows
// are clipped to the table width. The input slice is copied.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.cols))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Row returns the stored row at index i. The returned slice is the table's
// own backing storage; callers that need to mutate should Clone first.
func (t *Table) Row(i int) []string { return t.rows[i] }

// Rows returns all stored rows, backing storage included.
func (t *Table) Rows() [][]string { return t.rows }

// ColumnIndex returns the position of the first column with the given name,
// or -1 if no such column exists. Duplicate names resolve to the first
// occurrence, so lookups stay deterministic on messy headers.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.cols {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Get returns the cell at (row, column name), or "" when the column does not
// exist. Row indexes out of range panic, same as slice indexing.
func (t *Table) Get(row int, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return ""
	}
	return t.rows[row][idx]
}

// Column returns all cells of the named column in row order, or nil when the
// column does not exist.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[idx]
	}
	return out
}

// Rename sets the name of the column at position i.
func (t *Table) Rename(i int, name string) {
	if i < 0 || i >= len(t.cols) {
		return
	}
	t.cols[i] = name
}

// TrimColumns strips surrounding whitespace from every column name.
// Loaders call this so downstream lookups never trip on padded headers.
func (t *Table) TrimColumns() {
	for i, c := range t.cols {
		t.cols[i] = strings.TrimSpace(c)
	}
}

// SetColumn overwrites the named column with the given values, or appends a
// new column when no column with that name exists. values must have one cell
// per row; extra cells are ignored, missing cells become empty.
func (t *Table) SetColumn(name string, values []string) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		t.cols = append(t.cols, name)
		idx = len(t.cols) - 1
		for i := range t.rows {
			t.rows[i] = append(t.rows[i], "")
		}
	}
	for i := range t.rows {
		if i < len(values) {
			t.rows[i][idx] = values[i]
		} else {
			t.rows[i][idx] = ""
		}
	}
}

// Select returns a new table containing only the requested columns, in that
// order. It fails on a column name the table does not have.
func (t *Table) Select(names []string) (*Table, error) {
	indexes := make([]int, len(names))
	for i, name := range names {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("unknown column %q in select list", name)
		}
		indexes[i] = idx
	}

	out := New(names)
	for _, r := range t.rows {
		proj := make([]string, len(indexes))
		for i, idx := range indexes {
			proj[i] = r[idx]
		}
		out.rows = append(out.rows, proj)
	}
	return out, nil
}

// Clone returns a deep copy: new column slice, new row slices.
func (t *Table) Clone() *Table {
	out := New(t.cols)
	out.rows = make([][]string, len(t.rows))
	for i, r := range t.rows {
		row := make([]string, len(r))
		copy(row, r)
		out.rows[i] = row
	}
	return out
}
