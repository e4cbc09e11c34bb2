// Package sink persists the finished dataset. The CSV sink is the default
// destination; the Postgres sink is optional and loads the same table into a
// database for downstream queries.
package sink

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"foodpipe/internal/table"
)

// A Sink writes a finished dataset somewhere durable.
type Sink interface {
	Write(ctx context.Context, t *table.Table) error
}

// CSV writes the dataset to a single file: header row first, then one line
// per data row.
type CSV struct {
	Path string
}

func (c *CSV) Write(ctx context.Context, t *table.Table) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows() {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}

	if err := os.WriteFile(c.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Path, err)
	}
	return nil
}
