// Package sqldump reconstructs tabular records from hand-written SQL dump
// text without a SQL grammar or a database engine. It recognizes only
//
//	INSERT INTO <table> VALUES (...), (...);
//
// statements and favors best-effort extraction over strict rejection: the
// dumps it reads are assumed hand-written and imperfect, so unterminated
// quoting is tolerated and ragged column counts are widened, never dropped.
//
// Everything in this package is a pure function from input text to values.
// There is no file I/O and no shared state, so concurrent calls on
// independent inputs are safe.
package sqldump

import "foodpipe/internal/table"

// RestaurantColumns is the naming convention applied to the first four
// columns of a materialized restaurant table: identifier, display name,
// cuisine, rating. It is a renaming convenience layered on the generic
// table, not a validated schema.
var RestaurantColumns = []string{"restaurant_id", "restaurant_name", "cuisine", "rating"}

// ParseTable runs the whole parse for one table name: extract every matching
// VALUES block from the dump text, assemble the records of all blocks in
// document order, and materialize them into a single table.
//
// A dump with zero matching statements yields an explicit empty table, not
// an error; the caller decides whether that is fatal.
func ParseTable(text, tableName string) *table.Table {
	var records [][]string
	for _, block := range ExtractValueLists(text, tableName) {
		records = append(records, AssembleRecords(block)...)
	}
	return Materialize(records)
}
