// Package config loads pipeline configuration from the environment, with an
// optional .env file underneath. Precedence is flags > environment > .env >
// built-in defaults; the flag layer lives in the command wiring, this
// package covers the other three.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the pipeline and its commands need to run.
type Config struct {
	DataDir         string // local directory holding the source files
	OutFile         string // path of the final dataset CSV
	RestaurantTable string // SQL table name to extract from the dump

	S3Bucket          string // when set, sources are read from S3 instead of DataDir
	S3Prefix          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string

	PostgresDSN   string // when set, the merge command also loads the dataset into Postgres
	PostgresTable string

	Addr string // listen address of the report server
}

// Load builds the configuration from the environment. When envFile is given
// it must load; otherwise a .env in the working directory is applied when
// present. Real environment variables win over .env values, since godotenv
// never overrides keys that are already set.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	return &Config{
		DataDir:         getEnvOrDefault("FOODPIPE_DATA_DIR", "."),
		OutFile:         getEnvOrDefault("FOODPIPE_OUT", "final_food_delivery_dataset.csv"),
		RestaurantTable: getEnvOrDefault("FOODPIPE_RESTAURANT_TABLE", "restaurants"),

		S3Bucket:          os.Getenv("FOODPIPE_S3_BUCKET"),
		S3Prefix:          os.Getenv("FOODPIPE_S3_PREFIX"),
		S3Region:          getEnvOrDefault("FOODPIPE_S3_REGION", "us-east-1"),
		S3Endpoint:        os.Getenv("FOODPIPE_S3_ENDPOINT"),
		S3AccessKeyID:     os.Getenv("FOODPIPE_S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("FOODPIPE_S3_SECRET_ACCESS_KEY"),

		PostgresDSN:   os.Getenv("FOODPIPE_PG_DSN"),
		PostgresTable: getEnvOrDefault("FOODPIPE_PG_TABLE", "food_delivery_dataset"),

		Addr: getEnvOrDefault("FOODPIPE_ADDR", ":8080"),
	}, nil
}

// getEnvOrDefault returns the environment value, or the default when the
// variable is unset or empty.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
