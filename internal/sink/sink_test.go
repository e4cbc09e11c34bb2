package sink

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodpipe/internal/load"
	"foodpipe/internal/table"
)

func TestCSV_WriteRoundTrips(t *testing.T) {
	// 1. Write a small dataset to a temp file.
	in := table.New([]string{"order_id", "item", "price"})
	in.AppendRow([]string{"1", "Pizza, large", "12.5"})
	in.AppendRow([]string{"2", `He said "hi"`, ""})

	path := filepath.Join(t.TempDir(), "out.csv")
	sink := &CSV{Path: path}
	require.NoError(t, sink.Write(context.Background(), in))

	// 2. Read it back through the loader and compare.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out, err := load.CSV(data)
	require.NoError(t, err)

	assert.Equal(t, in.Columns(), out.Columns())
	assert.Equal(t, in.Rows(), out.Rows())
}

func TestCSV_WriteEmptyDatasetKeepsHeader(t *testing.T) {
	in := table.New([]string{"restaurant_id", "restaurant_name", "cuisine", "rating"})

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, (&CSV{Path: path}).Write(context.Background(), in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out, err := load.CSV(data)
	require.NoError(t, err)

	assert.Equal(t, in.Columns(), out.Columns())
	assert.Equal(t, 0, out.Len())
}

func TestCSV_WriteBadPath(t *testing.T) {
	in := table.New([]string{"a"})
	err := (&CSV{Path: filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv")}).Write(context.Background(), in)
	assert.Error(t, err)
}

func TestPostgresDDL_QuotesIdentifiers(t *testing.T) {
	assert.Equal(t, `DROP TABLE IF EXISTS "orders-final"`, dropStatement("orders-final"))

	// Embedded quotes double, and every column lands as TEXT.
	got := createStatement(`final "dataset"`, []string{"order_id", "total amount"})
	assert.Equal(t, `CREATE TABLE "final ""dataset""" ("order_id" TEXT, "total amount" TEXT)`, got)
}

func TestPostgres_WriteRejectsHeaderlessDataset(t *testing.T) {
	// The guard fires before any connection work, so a zero-value sink is
	// enough to exercise it.
	err := (&Postgres{table: "dataset"}).Write(context.Background(), table.New(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no columns")
}
