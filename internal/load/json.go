package load

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"foodpipe/internal/table"
)

// JSON reads a list of flat objects into a table. The preferred shape is a
// top-level JSON array; when the input is not an array, it falls back to
// JSON Lines (one object per line, blank lines skipped).
//
// Column order is the order of first key appearance across all records, so
// the table header is stable for a given input rather than map-random.
// Values are stringified: numbers keep their source text, booleans become
// "true"/"false", null becomes an empty cell, and nested values are kept as
// compact JSON.
func JSON(data []byte) (*table.Table, error) {
	cols, recs, err := decodeArray(data)
	if err != nil {
		var linesErr error
		cols, recs, linesErr = decodeLines(data)
		if linesErr != nil {
			return nil, fmt.Errorf("json: not an object array (%v) and not json lines: %w", err, linesErr)
		}
	}

	t := table.New(cols)
	t.TrimColumns()
	for _, rec := range recs {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = rec[c]
		}
		t.AppendRow(row)
	}
	return t, nil
}

func decodeArray(data []byte) ([]string, []map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("read opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, nil, fmt.Errorf("expected array, got %v", tok)
	}

	var cols []string
	seen := make(map[string]bool)
	var recs []map[string]string

	for dec.More() {
		rec, keys, err := decodeObject(dec)
		if err != nil {
			return nil, nil, err
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
		recs = append(recs, rec)
	}
	return cols, recs, nil
}

func decodeLines(data []byte) ([]string, []map[string]string, error) {
	var cols []string
	seen := make(map[string]bool)
	var recs []map[string]string

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, keys, err := decodeObject(json.NewDecoder(strings.NewReader(line)))
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan lines: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil, fmt.Errorf("no records")
	}
	return cols, recs, nil
}

// decodeObject reads one {...} value from the decoder, returning cells keyed
// by field name plus the key order as written in the source.
func decodeObject(dec *json.Decoder) (map[string]string, []string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("read record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected object, got %v", tok)
	}
	return decodeObjectBody(dec)
}

// decodeObjectBody reads key/value pairs up to and including the closing
// brace. The opening brace must already be consumed.
func decodeObjectBody(dec *json.Decoder) (map[string]string, []string, error) {
	rec := make(map[string]string)
	var keys []string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("read key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected string key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, fmt.Errorf("read value of %q: %w", key, err)
		}

		if _, dup := rec[key]; !dup {
			keys = append(keys, key)
		}
		rec[key] = cellFromRaw(raw)
	}

	if _, err := dec.Token(); err != nil { // closing brace
		return nil, nil, fmt.Errorf("read record end: %w", err)
	}
	return rec, keys, nil
}

// cellFromRaw renders one JSON value as a table cell.
func cellFromRaw(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	switch {
	case s == "null":
		return ""
	case s == "true" || s == "false":
		return s
	case len(s) > 0 && s[0] == '"':
		var v string
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
		return s
	case len(s) > 0 && (s[0] == '{' || s[0] == '['):
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err == nil {
			return buf.String()
		}
		return s
	default:
		// Numbers keep their source text; "4.50" stays "4.50".
		return s
	}
}
