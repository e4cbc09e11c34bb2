package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_ArrayOfObjects(t *testing.T) {
	data := []byte(`[
		{"user_id": 10, "name": "Alice", "city": "Berlin"},
		{"user_id": 11, "name": "Bob", "city": "Madrid"}
	]`)

	tb, err := JSON(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"user_id", "name", "city"}, tb.Columns())
	require.Equal(t, 2, tb.Len())
	assert.Equal(t, []string{"10", "Alice", "Berlin"}, tb.Row(0))
	assert.Equal(t, []string{"11", "Bob", "Madrid"}, tb.Row(1))
}

func TestJSON_ColumnOrderIsFirstAppearance(t *testing.T) {
	data := []byte(`[
		{"b": 1, "a": 2},
		{"a": 3, "c": 4}
	]`)

	tb, err := JSON(data)
	require.NoError(t, err)

	// b and a from the first record, c appended when it first shows up.
	assert.Equal(t, []string{"b", "a", "c"}, tb.Columns())
	assert.Equal(t, []string{"1", "2", ""}, tb.Row(0))
	assert.Equal(t, []string{"3", "", "4"}, tb.Row(1))
}

func TestJSON_LinesFallback(t *testing.T) {
	data := []byte(`{"user_id": 10, "name": "Alice"}
{"user_id": 11, "name": "Bob"}

{"user_id": 12, "name": "Cara"}`)

	tb, err := JSON(data)
	require.NoError(t, err)

	require.Equal(t, 3, tb.Len())
	assert.Equal(t, []string{"user_id", "name"}, tb.Columns())
	assert.Equal(t, []string{"12", "Cara"}, tb.Row(2))
}

func TestJSON_ValueStringification(t *testing.T) {
	data := []byte(`[{"n": 4.50, "b": true, "x": null, "nested": {"k": 1}, "list": [1, 2]}]`)

	tb, err := JSON(data)
	require.NoError(t, err)

	// Numbers keep their source text, null is an empty cell, nested values
	// stay compact JSON.
	assert.Equal(t, "4.50", tb.Get(0, "n"))
	assert.Equal(t, "true", tb.Get(0, "b"))
	assert.Equal(t, "", tb.Get(0, "x"))
	assert.Equal(t, `{"k":1}`, tb.Get(0, "nested"))
	assert.Equal(t, `[1,2]`, tb.Get(0, "list"))
}

func TestJSON_EmptyArrayIsEmptyTable(t *testing.T) {
	tb, err := JSON([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, tb.Len())
	assert.Equal(t, 0, tb.Width())
}

func TestJSON_GarbageIsError(t *testing.T) {
	_, err := JSON([]byte("not json at all"))
	require.Error(t, err)

	_, err = JSON(nil)
	require.Error(t, err)
}
