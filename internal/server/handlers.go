package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodpipe/internal/report"
)

// datasetPayload is the wire shape of /api/dataset.
type datasetPayload struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Count   int        `json:"count"`
}

// reportPayload is the wire shape of the report endpoints.
type reportPayload struct {
	Report  string         `json:"report"`
	Entries []report.Entry `json:"entries"`
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"run_id": h.res.RunID,
		"rows":   h.res.Dataset.Len(),
	})
}

func (h *Handler) Dataset(c echo.Context) error {
	t := h.res.Dataset
	rows := t.Rows()
	if rows == nil {
		rows = [][]string{}
	}
	return c.JSON(http.StatusOK, datasetPayload{
		Columns: t.Columns(),
		Rows:    rows,
		Count:   t.Len(),
	})
}

func (h *Handler) GoldCityRevenue(c echo.Context) error {
	return c.JSON(http.StatusOK, reportPayload{
		Report:  "gold-city-revenue",
		Entries: report.GoldCityRevenue(h.res.Dataset),
	})
}

func (h *Handler) CuisineAverage(c echo.Context) error {
	return c.JSON(http.StatusOK, reportPayload{
		Report:  "cuisine-average",
		Entries: report.CuisineAverage(h.res.Dataset),
	})
}
