// Package merge builds the final denormalized dataset: orders left-joined
// with users and restaurants, flattened to analysis-friendly column names,
// numerically coerced, and trimmed to the final column set.
package merge

import (
	"fmt"

	"foodpipe/internal/table"
)

// Build produces the final dataset from the three source tables. Inputs are
// not mutated. Rows are never dropped: an order that matches no user or no
// restaurant keeps its joined columns empty.
func Build(orders, users, restaurants *table.Table) (*table.Table, error) {
	merged := leftJoin(orders, withPrefix(users, "user_"), "user_id", "user_user_id")
	merged = leftJoin(merged, withPrefix(restaurants, "restaurant_"), "restaurant_id", "restaurant_restaurant_id")

	flatten(merged)

	final, err := merged.Select(keepColumns(merged))
	if err != nil {
		return nil, fmt.Errorf("project final columns: %w", err)
	}

	coerceAndClean(final)
	return final, nil
}

// flatten lifts the prefixed join columns the reports care about to their
// unprefixed names. Missing source columns are simply skipped; an existing
// column of the target name is overwritten.
func flatten(t *table.Table) {
	copyCol := func(src, dst string) {
		if t.HasColumn(src) {
			t.SetColumn(dst, t.Column(src))
		}
	}

	copyCol("user_name", "name")
	copyCol("user_city", "city")
	copyCol("user_membership", "membership")

	// The restaurant display name arrives double-prefixed because the
	// restaurant table already calls the column restaurant_name.
	copyCol("restaurant_restaurant_name", "restaurant_name")
	copyCol("restaurant_cuisine", "cuisine")

	if t.HasColumn("restaurant_rating") {
		src := t.Column("restaurant_rating")
		out := make([]string, len(src))
		for i, s := range src {
			if f, ok := table.Float(s); ok {
				out[i] = table.FormatFloat(f)
			}
		}
		t.SetColumn("rating", out)
	}
}

// keepColumns returns the final column list in report order: order details,
// then user info, then restaurant info, then provenance. Only columns the
// merged table actually has are kept, each at its first position.
func keepColumns(t *table.Table) []string {
	groups := [][]string{
		{"order_id", "customer", "user_id", "restaurant_id", "item", "quantity", "price", "total_amount", "date"},
		{"name", "city", "membership", "user_user_id"},
		{"restaurant_id", "restaurant_name", "cuisine", "rating"},
		{"__source_file"},
	}

	var keep []string
	seen := make(map[string]bool)
	for _, group := range groups {
		for _, col := range group {
			if t.HasColumn(col) && !seen[col] {
				seen[col] = true
				keep = append(keep, col)
			}
		}
	}
	return keep
}
