package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodpipe/internal/pipeline"
	"foodpipe/internal/report"
	"foodpipe/internal/table"
)

func testHandler() *Handler {
	tab := table.New([]string{"order_id", "membership", "city", "cuisine", "total_amount"})
	tab.AppendRow([]string{"101", "Gold", "Boston", "Italian", "25"})
	tab.AppendRow([]string{"102", "Silver", "Denver", "Japanese", "30"})

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHandler(&pipeline.Result{RunID: "test-run", Dataset: tab}, log)
}

func TestHealth(t *testing.T) {
	h := testHandler()
	e := echo.New()

	t.Run("Should return ok status with run metadata", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.Health(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		assert.Contains(t, rec.Body.String(), "test-run")
	})
}

func TestDataset(t *testing.T) {
	h := testHandler()
	e := echo.New()

	t.Run("Should return columns and rows", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dataset", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.Dataset(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var payload datasetPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, []string{"order_id", "membership", "city", "cuisine", "total_amount"}, payload.Columns)
		assert.Equal(t, 2, payload.Count)
		require.Len(t, payload.Rows, 2)
		assert.Equal(t, "101", payload.Rows[0][0])
	})
}

func TestReportEndpoints(t *testing.T) {
	h := testHandler()
	e := echo.New()

	t.Run("Should return gold city revenue", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports/gold-city-revenue", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.GoldCityRevenue(c))

		var payload reportPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "gold-city-revenue", payload.Report)
		assert.Equal(t, []report.Entry{{Key: "Boston", Value: 25}}, payload.Entries)
	})

	t.Run("Should return cuisine averages over all memberships", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports/cuisine-average", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.CuisineAverage(c))

		var payload reportPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, []report.Entry{
			{Key: "Japanese", Value: 30},
			{Key: "Italian", Value: 25},
		}, payload.Entries)
	})
}

func TestRoutesRegistered(t *testing.T) {
	e := New(testHandler())

	srv := httptest.NewServer(e)
	defer srv.Close()

	for _, path := range []string{"/healthz", "/api/dataset", "/api/reports/gold-city-revenue", "/api/reports/cuisine-average"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
