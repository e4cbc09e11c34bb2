package sqldump

import "strings"

// ExtractValueLists locates every
//
//	INSERT INTO <tableName> VALUES <block>;
//
// statement in the dump text and returns each statement's value-list block
// in document order. Keywords match case-insensitively, the table name may
// be backtick-quoted, and a block may span multiple lines. Statements for
// other tables are skipped entirely.
//
// Zero matches is an empty result, not an error; the caller decides whether
// an empty parse is fatal.
func ExtractValueLists(text, tableName string) []string {
	var blocks []string
	upper := upperASCII(text)
	target := upperASCII(tableName)

	pos := 0
	for pos < len(text) {
		rel := strings.Index(upper[pos:], "INSERT")
		if rel == -1 {
			break
		}
		at := pos + rel

		block, end, ok := matchStatement(text, upper, at+len("INSERT"), target)
		if !ok {
			// Not a statement for our table; keep scanning past the keyword.
			pos = at + len("INSERT")
			continue
		}
		blocks = append(blocks, block)
		pos = end
	}
	return blocks
}

// matchStatement tries to read "INTO <target> VALUES <block>;" starting just
// after an INSERT keyword at offset i. On success it returns the block (the
// text between VALUES and the statement's terminating semicolon) and the
// offset just past that semicolon.
func matchStatement(text, upper string, i int, target string) (string, int, bool) {
	j := skipSpace(text, i)
	if j == i || !strings.HasPrefix(upper[j:], "INTO") {
		return "", 0, false
	}
	afterInto := j + len("INTO")
	j = skipSpace(text, afterInto)
	if j == afterInto {
		return "", 0, false
	}

	// Optional backtick around the table identifier; each side on its own,
	// the way hand-written dumps mix them.
	if j < len(text) && text[j] == '`' {
		j++
	}
	if !strings.HasPrefix(upper[j:], target) {
		return "", 0, false
	}
	j += len(target)
	if j < len(text) && text[j] == '`' {
		j++
	}

	k := skipSpace(text, j)
	if k == j || !strings.HasPrefix(upper[k:], "VALUES") {
		return "", 0, false
	}
	k = skipSpace(text, k+len("VALUES"))

	end := findTerminator(text, k)
	if end == -1 {
		return "", 0, false
	}
	return text[k:end], end + 1, true
}

// findTerminator returns the index of the semicolon ending the statement
// that starts at from, honoring quoting: a semicolon inside a quoted value
// is content, and doubled quote characters are escapes that keep the quote
// open. Returns -1 when the statement never terminates.
func findTerminator(s string, from int) int {
	inQuote := false
	var quoteChar byte
	for i := from; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\'' || ch == '"':
			if !inQuote {
				inQuote = true
				quoteChar = ch
			} else if ch == quoteChar {
				if i+1 < len(s) && s[i+1] == quoteChar {
					i++ // escaped quote, still inside the string
				} else {
					inQuote = false
				}
			}
		case ch == ';' && !inQuote:
			return i
		}
	}
	return -1
}
