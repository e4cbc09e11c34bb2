package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Local serves source files from one directory on disk.
type Local struct {
	dir string
}

// NewLocal creates a store over the given directory.
func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

func (l *Local) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(l.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	return true, nil
}

func (l *Local) ReadFile(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
