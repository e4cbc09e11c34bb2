package table

import (
	"math"
	"strconv"
	"strings"
)

// Cell coercion helpers. The parse side of the pipeline keeps everything as
// strings; these are the single place where a stage turns a cell into a
// number. All of them are tolerant: a cell that does not parse reports
// ok=false instead of failing the row.

// Float parses a cell as a float64 after trimming whitespace. Only finite
// values qualify; strconv understands NaN and infinity spellings, but a cell
// holding one reports ok=false like any other junk.
func Float(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int parses a cell as an integer. Fractional values are truncated toward
// zero, so "2.9" becomes 2.
func Int(s string) (int64, bool) {
	f, ok := Float(s)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// Round2 rounds to two decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// FormatFloat renders a float with the fewest digits that round-trip,
// so 4.50 becomes "4.5" and 100.00 becomes "100".
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// NormalizeKey canonicalizes a join-key cell so that numerically equal keys
// compare equal: "4", "4.0" and " 4 " all normalize to "4". A cell that does
// not parse as a number normalizes to "", which join code treats as
// never-matching.
func NormalizeKey(s string) string {
	f, ok := Float(s)
	if !ok {
		return ""
	}
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return FormatFloat(f)
}
