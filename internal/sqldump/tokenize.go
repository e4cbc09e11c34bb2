package sqldump

import "strings"

// SplitValues splits one record string (the text between a tuple's
// parentheses) into its comma-separated fields. Quoting follows SQL dump
// conventions: fields may be wrapped in single or double quotes, a doubled
// quote character inside a quoted field is an escaped literal quote, and a
// comma inside quotes is ordinary content.
//
// The scan is a two-state machine, UNQUOTED and QUOTED. Opening and closing
// quote characters are consumed without being copied; an escape consumes two
// input characters and emits one. A comma in the UNQUOTED state ends the
// current field. End of input flushes the field in progress whatever the
// state, so an empty record still yields one empty field and an unterminated
// quote yields whatever was accumulated instead of an error.
//
// Output fields are always strings; no numeric coercion happens here.
func SplitValues(record string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false
	var quoteChar byte

	for i := 0; i < len(record); i++ {
		ch := record[i]
		switch {
		case ch == '\'' || ch == '"':
			if !inQuote {
				inQuote = true
				quoteChar = ch
			} else if ch == quoteChar {
				if i+1 < len(record) && record[i+1] == quoteChar {
					// Escaped quote ('' or ""): one literal quote.
					cur.WriteByte(quoteChar)
					i++
				} else {
					inQuote = false
					quoteChar = 0
				}
			} else {
				// The other quote kind inside a quoted field is content.
				cur.WriteByte(ch)
			}
		case ch == ',' && !inQuote:
			fields = append(fields, finishField(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}

	// The trailing field always flushes, even if empty.
	return append(fields, finishField(cur.String()))
}

// finishField trims surrounding whitespace, then strips quote characters
// that survived the scan (possible on unbalanced input).
func finishField(s string) string {
	return trimQuotes(strings.TrimSpace(s))
}
