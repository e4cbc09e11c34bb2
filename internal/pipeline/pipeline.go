// Package pipeline runs the end-to-end dataset build: probe the source
// store for the three input files, parse each one, merge them, and hand the
// finished dataset back to the caller for writing.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"foodpipe/internal/config"
	"foodpipe/internal/load"
	"foodpipe/internal/merge"
	"foodpipe/internal/source"
	"foodpipe/internal/sqldump"
	"foodpipe/internal/table"
)

// ErrNoRestaurantData reports a restaurant dump that exists but yields no
// rows for the configured table.
var ErrNoRestaurantData = errors.New("no restaurant data found in sql dump")

// Filename variants probed for each input, in preference order. The odd
// restaurant spellings are the ones the upstream exports actually use.
var (
	orderCandidates         = []string{"order.csv", "orders.csv"}
	userCandidates          = []string{"user.json", "users.json"}
	restaurantSQLCandidates = []string{"restaurrent.sql", "restaurent.sql", "restaurants.sql"}
)

// restaurantCSV is preferred over the SQL dump when both are present.
const restaurantCSV = "restaurants.csv"

// Result describes one finished run.
type Result struct {
	RunID       string
	Dataset     *table.Table
	Orders      int
	Users       int
	Restaurants int
	Elapsed     time.Duration
}

// Run executes one dataset build against the configured store. Orders and
// users are required; a missing restaurant source degrades to an empty
// restaurant table so the orders still come through.
func Run(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	runLog := log.WithField("run_id", runID)

	store, err := source.FromConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open source store: %w", err)
	}

	orders, err := loadOrders(ctx, store, runLog)
	if err != nil {
		return nil, err
	}
	users, err := loadUsers(ctx, store, runLog)
	if err != nil {
		return nil, err
	}
	restaurants, err := loadRestaurants(ctx, store, cfg.RestaurantTable, runLog)
	if err != nil {
		return nil, err
	}

	dataset, err := merge.Build(orders, users, restaurants)
	if err != nil {
		return nil, fmt.Errorf("merge dataset: %w", err)
	}

	res := &Result{
		RunID:       runID,
		Dataset:     dataset,
		Orders:      orders.Len(),
		Users:       users.Len(),
		Restaurants: restaurants.Len(),
		Elapsed:     time.Since(start),
	}
	runLog.WithFields(logrus.Fields{
		"rows":    dataset.Len(),
		"columns": dataset.Width(),
		"elapsed": res.Elapsed.String(),
	}).Info("dataset built")
	return res, nil
}

func loadOrders(ctx context.Context, store source.Store, log *logrus.Entry) (*table.Table, error) {
	name, err := source.FindFirst(ctx, store, orderCandidates)
	if err != nil {
		return nil, fmt.Errorf("orders csv: %w", err)
	}
	data, err := store.ReadFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	t, err := load.CSV(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("orders file %s is empty", name)
	}
	log.WithFields(logrus.Fields{"file": name, "rows": t.Len()}).Info("orders loaded")
	return t, nil
}

func loadUsers(ctx context.Context, store source.Store, log *logrus.Entry) (*table.Table, error) {
	name, err := source.FindFirst(ctx, store, userCandidates)
	if err != nil {
		return nil, fmt.Errorf("users json: %w", err)
	}
	data, err := store.ReadFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	t, err := load.JSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	log.WithFields(logrus.Fields{"file": name, "rows": t.Len()}).Info("users loaded")
	return t, nil
}

// loadRestaurants prefers an already-parsed restaurants.csv, falls back to
// the SQL dump, and finally degrades to an empty table with the expected
// header when no source exists at all.
func loadRestaurants(ctx context.Context, store source.Store, tableName string, log *logrus.Entry) (*table.Table, error) {
	if ok, err := store.Exists(ctx, restaurantCSV); err != nil {
		return nil, fmt.Errorf("probe %s: %w", restaurantCSV, err)
	} else if ok {
		data, err := store.ReadFile(ctx, restaurantCSV)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", restaurantCSV, err)
		}
		t, err := load.CSV(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", restaurantCSV, err)
		}
		log.WithFields(logrus.Fields{"file": restaurantCSV, "rows": t.Len()}).Info("restaurants loaded")
		return t, nil
	}

	name, err := source.FindFirst(ctx, store, restaurantSQLCandidates)
	if errors.Is(err, source.ErrNotFound) {
		log.Warn("no restaurant source found, continuing with an empty restaurant table")
		return table.New(sqldump.RestaurantColumns), nil
	}
	if err != nil {
		return nil, fmt.Errorf("restaurants sql: %w", err)
	}

	data, err := store.ReadFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	t := sqldump.ParseTable(string(data), tableName)
	if t.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoRestaurantData)
	}
	log.WithFields(logrus.Fields{"file": name, "rows": t.Len()}).Info("restaurants loaded")
	return t, nil
}
