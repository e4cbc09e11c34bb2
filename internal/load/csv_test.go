package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV_HeaderAndRecords(t *testing.T) {
	data := []byte("order_id,user_id,price\n1,10,12.5\n2,11,7\n")

	tb, err := CSV(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"order_id", "user_id", "price"}, tb.Columns())
	require.Equal(t, 2, tb.Len())
	assert.Equal(t, []string{"1", "10", "12.5"}, tb.Row(0))
}

func TestCSV_TrimsHeaderCells(t *testing.T) {
	tb, err := CSV([]byte(" order_id , user_id \n1,10\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"order_id", "user_id"}, tb.Columns())
}

func TestCSV_RaggedRowsPaddedAndClipped(t *testing.T) {
	data := []byte("a,b,c\n1\n1,2,3,4\n")

	tb, err := CSV(data)
	require.NoError(t, err)

	require.Equal(t, 2, tb.Len())
	assert.Equal(t, []string{"1", "", ""}, tb.Row(0))
	assert.Equal(t, []string{"1", "2", "3"}, tb.Row(1))
}

func TestCSV_QuotedFieldWithComma(t *testing.T) {
	tb, err := CSV([]byte("name,city\n\"Doe, Jane\",Berlin\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Doe, Jane", "Berlin"}, tb.Row(0))
}

func TestCSV_HeaderOnlyIsEmptyTable(t *testing.T) {
	tb, err := CSV([]byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tb.Len())
}

func TestCSV_EmptyInputIsError(t *testing.T) {
	_, err := CSV(nil)
	require.Error(t, err)
}

func TestCSVFile_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	tb, err := CSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, tb.Row(0))

	_, err = CSVFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
