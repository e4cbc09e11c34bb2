package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrders = `order_id,customer,user_id,restaurant_id,item,quantity,price,total_amount,date
101,Alice,1,1,Pizza,2,12.5,999,2024-03-05
`

const testUsers = `[{"user_id": 1, "name": "Alice A.", "city": "Boston", "membership": "Gold"}]`

const testRestaurants = `INSERT INTO restaurants VALUES (1,'Mario''s','Italian',4.5);`

func TestMergeAndReportCommands(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.csv"), []byte(testOrders), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(testUsers), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "restaurants.sql"), []byte(testRestaurants), 0o644))
	outFile := filepath.Join(dir, "final.csv")

	// 1. merge writes the dataset and reports where it went.
	root := NewCmdRoot()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"merge", "--data-dir", dir, "--out", outFile})
	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), "Wrote final dataset to "+outFile)
	_, err := os.Stat(outFile)
	require.NoError(t, err)

	// 2. report reads the file back and prints both summaries.
	root = NewCmdRoot()
	buf.Reset()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"report", "--in", outFile})
	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), "Total amount spent by Gold members per city:")
	assert.Contains(t, buf.String(), "Boston: 25")
	assert.Contains(t, buf.String(), "Average total amount spent per cuisine:")
	assert.Contains(t, buf.String(), "Italian: 25")

	// 3. A selector narrows the output to one report.
	root = NewCmdRoot()
	buf.Reset()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"report", "gold-cities", "--in", outFile})
	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), "Boston: 25")
	assert.NotContains(t, buf.String(), "Average total amount spent per cuisine:")
}

func TestMergeCommand_MissingInputs(t *testing.T) {
	root := NewCmdRoot()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"merge", "--data-dir", t.TempDir()})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders")
}
