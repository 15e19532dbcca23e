// Package statefile provides a file-backed progress store. The store is a
// single file holding one non-negative integer, replaced atomically on every
// save so a crash never leaves a torn value.
package statefile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/jetup/internal/domain/runner"
)

// Store persists the progress marker to a file.
type Store struct {
	path string
}

// New creates a Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored progress value. A missing file is initialized to 0,
// which also surfaces an unwritable store location at startup instead of
// after the first completed step.
func (s *Store) Load(ctx context.Context) (int, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if err := s.Save(ctx, 0); err != nil {
			return 0, err
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("corrupt progress file %s: %q is not an integer", s.path, raw)
	}
	if value < 0 {
		return 0, fmt.Errorf("corrupt progress file %s: negative value %d", s.path, value)
	}
	return value, nil
}

// Save writes the progress value via a temp file and rename in the same
// directory, so readers observe either the old or the new value.
func (s *Store) Save(_ context.Context, completed int) error {
	if completed < 0 {
		return fmt.Errorf("progress value must be non-negative, got %d", completed)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(completed) + "\n"); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Ensure Store implements runner.ProgressStore.
var _ runner.ProgressStore = (*Store)(nil)
