// Package report computes the two revenue summaries over the final dataset.
//
// Both reports read total_amount as a float, treating anything unparseable
// as zero, skip rows whose group key is empty, and come back sorted by value
// descending with ties broken by key.
package report

import (
	"fmt"
	"io"
	"sort"

	"foodpipe/internal/table"
)

// Titles printed above each report.
const (
	GoldCityTitle = "Total amount spent by Gold members per city:"
	CuisineTitle  = "Average total amount spent per cuisine:"
)

// Entry is one group row of a report.
type Entry struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// GoldCityRevenue sums total_amount per city across rows whose membership is
// exactly "Gold". Sums are rounded to cents.
func GoldCityRevenue(t *table.Table) []Entry {
	sums := make(map[string]float64)
	for i := 0; i < t.Len(); i++ {
		if t.Get(i, "membership") != "Gold" {
			continue
		}
		city := t.Get(i, "city")
		if city == "" {
			continue
		}
		sums[city] += amount(t, i)
	}

	entries := make([]Entry, 0, len(sums))
	for city, sum := range sums {
		entries = append(entries, Entry{Key: city, Value: table.Round2(sum)})
	}
	sortEntries(entries)
	return entries
}

// CuisineAverage computes the mean total_amount per cuisine across all rows.
// Means are rounded to cents.
func CuisineAverage(t *table.Table) []Entry {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := 0; i < t.Len(); i++ {
		cuisine := t.Get(i, "cuisine")
		if cuisine == "" {
			continue
		}
		sums[cuisine] += amount(t, i)
		counts[cuisine]++
	}

	entries := make([]Entry, 0, len(sums))
	for cuisine, sum := range sums {
		entries = append(entries, Entry{Key: cuisine, Value: table.Round2(sum / float64(counts[cuisine]))})
	}
	sortEntries(entries)
	return entries
}

// Print writes a report to w: the title line, then one "key: value" line per
// entry. Values print without trailing zeros.
func Print(w io.Writer, title string, entries []Entry) {
	fmt.Fprintln(w, title)
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %s\n", e.Key, table.FormatFloat(e.Value))
	}
}

func amount(t *table.Table, row int) float64 {
	f, ok := table.Float(t.Get(row, "total_amount"))
	if !ok {
		return 0
	}
	return f
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Key < entries[j].Key
	})
}
