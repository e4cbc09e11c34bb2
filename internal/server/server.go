// Package server exposes a finished pipeline run over HTTP: the dataset
// itself plus the two revenue reports, all read-only JSON.
package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"foodpipe/internal/pipeline"
)

// Handler serves one finished pipeline run. The dataset is immutable once
// built, so every handler is safe for concurrent requests.
type Handler struct {
	res *pipeline.Result
	log *logrus.Logger
}

func NewHandler(res *pipeline.Result, log *logrus.Logger) *Handler {
	return &Handler{res: res, log: log}
}

// New builds an Echo instance with all routes registered.
func New(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/dataset", h.Dataset)

	reports := api.Group("/reports")
	reports.GET("/gold-city-revenue", h.GoldCityRevenue)
	reports.GET("/cuisine-average", h.CuisineAverage)

	return e
}
