// Package counterrepo implements a flat-file counter store.
// Each counter lives in its own file under the metadata directory,
// holding the decimal value and nothing else. Missing files read as the
// default value, so a fresh deployment starts counting from scratch
// without any setup.
package counterrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"quickcommerce/internal/core/ports"
)

const fileMode = 0o644

var _ ports.CounterStore = (*Store)(nil)

// Store persists counters as <dir>/<name>.txt files.
type Store struct {
	dir string
}

// NewStore creates a counter store rooted at dir.
// The directory is created lazily on the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the counter named name.
// A missing file yields defaultValue without error. A file that cannot
// be read or parsed yields defaultValue and the error.
func (s *Store) Load(_ context.Context, name string, defaultValue int64) (int64, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultValue, nil
		}
		return defaultValue, fmt.Errorf("read counter %s: %w", name, err)
	}

	value, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("parse counter %s: %w", name, err)
	}

	return value, nil
}

// Save writes the counter named name, creating the directory if needed.
func (s *Store) Save(_ context.Context, name string, value int64) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create counter dir: %w", err)
	}

	if err := os.WriteFile(s.path(name), []byte(strconv.FormatInt(value, 10)), fileMode); err != nil {
		return fmt.Errorf("write counter %s: %w", name, err)
	}

	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".txt")
}
