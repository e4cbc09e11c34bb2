package merge

import "foodpipe/internal/table"

// withPrefix returns a copy of t with every column name prefixed. Rows are
// copied so the original table stays untouched.
func withPrefix(t *table.Table, prefix string) *table.Table {
	cols := t.Columns()
	for i, c := range cols {
		cols[i] = prefix + c
	}
	out := table.New(cols)
	for _, r := range t.Rows() {
		out.AppendRow(r)
	}
	return out
}

// leftJoin appends right's columns to every left row. A left row picks up the
// first right row whose normalized key matches; without a match the joined
// cells stay empty. Keys are normalized with table.NormalizeKey so "4" and
// "4.0" join, while unparseable keys never match anything.
func leftJoin(left, right *table.Table, leftKey, rightKey string) *table.Table {
	out := table.New(append(left.Columns(), right.Columns()...))

	index := make(map[string]int)
	if ri := right.ColumnIndex(rightKey); ri >= 0 {
		for i, r := range right.Rows() {
			k := table.NormalizeKey(r[ri])
			if k == "" {
				continue
			}
			if _, dup := index[k]; !dup {
				index[k] = i
			}
		}
	}

	li := left.ColumnIndex(leftKey)
	empty := make([]string, right.Width())
	for _, lr := range left.Rows() {
		match := empty
		if li >= 0 {
			if k := table.NormalizeKey(lr[li]); k != "" {
				if i, ok := index[k]; ok {
					match = right.Row(i)
				}
			}
		}

		row := make([]string, 0, left.Width()+right.Width())
		row = append(row, lr...)
		row = append(row, match...)
		out.AppendRow(row)
	}
	return out
}
