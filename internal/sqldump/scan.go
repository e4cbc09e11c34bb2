package sqldump

// Low-level scanning helpers shared by the extractor, the record splitter
// and the tokenizer. All of them work on bytes: the characters that matter
// to the grammar (quotes, commas, parens, semicolons, whitespace) are ASCII,
// and multi-byte UTF-8 content passes through untouched.

// isSpace reports whether b is an ASCII whitespace byte.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// skipSpace returns the first index at or after i that is not whitespace.
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// trimQuotes strips one leading and one trailing quote character, single or
// double; the two ends are handled independently, so unbalanced leftovers
// from a malformed dump still come off.
func trimQuotes(s string) string {
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '\'' || s[len(s)-1] == '"') {
		s = s[:len(s)-1]
	}
	return s
}

// upperASCII uppercases ASCII letters and leaves every other byte alone.
// Unlike strings.ToUpper it never changes the byte length (some characters
// grow or shrink under full Unicode case mapping), so an offset into the
// folded text is always a valid offset into the original.
func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
