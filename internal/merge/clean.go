package merge

import (
	"strconv"
	"time"

	"foodpipe/internal/table"
)

// dateLayouts are tried in order when normalizing order dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02.01.2006",
}

// coerceAndClean normalizes the numeric and date columns in place.
//
// quantity becomes a whole number, defaulting to 0 when unparseable. price
// keeps its numeric value or becomes empty. total_amount is recomputed as
// quantity*price rounded to cents whenever both columns exist; any stale
// value from the source file is discarded. Dates collapse to YYYY-MM-DD or
// empty.
func coerceAndClean(t *table.Table) {
	var qty []int64
	if t.HasColumn("quantity") {
		src := t.Column("quantity")
		qty = make([]int64, len(src))
		out := make([]string, len(src))
		for i, s := range src {
			n, ok := table.Int(s)
			if !ok {
				n = 0
			}
			qty[i] = n
			out[i] = strconv.FormatInt(n, 10)
		}
		t.SetColumn("quantity", out)
	}

	var price []float64
	var priceOK []bool
	if t.HasColumn("price") {
		src := t.Column("price")
		price = make([]float64, len(src))
		priceOK = make([]bool, len(src))
		out := make([]string, len(src))
		for i, s := range src {
			f, ok := table.Float(s)
			price[i], priceOK[i] = f, ok
			if ok {
				out[i] = table.FormatFloat(f)
			}
		}
		t.SetColumn("price", out)
	}

	if qty != nil && price != nil {
		out := make([]string, t.Len())
		for i := range out {
			if priceOK[i] {
				out[i] = table.FormatFloat(table.Round2(float64(qty[i]) * price[i]))
			}
		}
		t.SetColumn("total_amount", out)
	} else {
		// Without both inputs the best we can do is tidy whatever
		// total_amount the source carried, treating blanks as zero.
		src := t.Column("total_amount")
		out := make([]string, t.Len())
		for i := range out {
			f := 0.0
			if src != nil {
				if v, ok := table.Float(src[i]); ok {
					f = v
				}
			}
			out[i] = table.FormatFloat(table.Round2(f))
		}
		t.SetColumn("total_amount", out)
	}

	if t.HasColumn("date") {
		src := t.Column("date")
		out := make([]string, len(src))
		for i, s := range src {
			out[i] = normalizeDate(s)
		}
		t.SetColumn("date", out)
	}
}

// normalizeDate parses s against the known layouts and reformats it as
// YYYY-MM-DD. Anything unparseable becomes empty.
func normalizeDate(s string) string {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return ""
}
