package sqldump

import "strings"

// AssembleRecords splits one value-list block into its parenthesized records
// and tokenizes each, producing rows of raw string fields.
//
// A block wrapped in one overall pair of parentheses is a comma-joined
// sequence of tuples: the outer pair is stripped and the remainder split on
// the literal close-paren, comma, open-paren boundary between tuples. A
// block not so wrapped is treated as a single record. The boundary split is
// deliberately literal; it does not balance nested parentheses, so a quoted
// field that happens to contain the exact boundary text splits wrongly.
// That matches the flat grammar these dumps actually use.
func AssembleRecords(block string) [][]string {
	vals := strings.TrimSpace(block)

	var recs []string
	if strings.HasPrefix(vals, "(") && strings.HasSuffix(vals, ")") && len(vals) >= 2 {
		recs = splitRecords(vals[1 : len(vals)-1])
	} else {
		recs = []string{vals}
	}

	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		fields := SplitValues(rec)
		for i, f := range fields {
			// One further layer of whitespace and quotes per token.
			fields[i] = trimQuotes(strings.TrimSpace(f))
		}
		rows = append(rows, fields)
	}
	return rows
}

// splitRecords splits "1,'a'),(2,'b'),  (3,'c'" style text on every
// ")," + optional whitespace + "(" boundary, dropping the boundary text
// itself. The surrounding outer parentheses must already be stripped.
func splitRecords(s string) []string {
	var parts []string
	start := 0
	for i := 0; i+1 < len(s); i++ {
		if s[i] != ')' || s[i+1] != ',' {
			continue
		}
		j := skipSpace(s, i+2)
		if j < len(s) && s[j] == '(' {
			parts = append(parts, s[start:i])
			start = j + 1
			i = j
		}
	}
	return append(parts, s[start:])
}
