// Package source abstracts where the pipeline's input files live. The
// pipeline probes and reads sources through the Store interface; a local
// directory and an S3 bucket are the two implementations, picked from
// configuration.
package source

import (
	"context"
	"errors"
	"fmt"

	"foodpipe/internal/config"
)

// ErrNotFound reports that a source file does not exist in the store.
// Probing helpers and ReadFile wrap it so callers can errors.Is on it.
var ErrNotFound = errors.New("source file not found")

// Store is read-only access to a set of named source files.
type Store interface {
	// Exists reports whether the named file is present.
	Exists(ctx context.Context, name string) (bool, error)

	// ReadFile returns the named file's full contents. A missing file
	// yields an error wrapping ErrNotFound.
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// FromConfig picks the store implementation from configuration: an S3 store
// when a bucket is configured, the local data directory otherwise.
func FromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.S3Bucket != "" {
		return NewS3(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
	}
	return NewLocal(cfg.DataDir), nil
}

// FindFirst probes the candidate names in order and returns the first one
// present. When none exists the error wraps ErrNotFound and names everything
// tried, so the failure message tells the operator what to fix.
func FindFirst(ctx context.Context, s Store, candidates []string) (string, error) {
	for _, name := range candidates {
		ok, err := s.Exists(ctx, name)
		if err != nil {
			return "", fmt.Errorf("probe %s: %w", name, err)
		}
		if ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w (tried %v)", ErrNotFound, candidates)
}
