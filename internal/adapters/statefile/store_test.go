package statefile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/jetup/internal/adapters/statefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile_InitializesToZero(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "progress")
	store := statefile.New(path)

	value, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, value)

	// The slot now exists on disk.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0\n", string(data))
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress")
	store := statefile.New(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, 7))

	value, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, value)

	// Visible to a fresh store on the same path, as after a restart.
	value, err = statefile.New(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestLoad_ToleratesSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress")
	require.NoError(t, os.WriteFile(path, []byte("  4\n\n"), 0o644))

	value, err := statefile.New(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, value)
}

func TestLoad_EmptyFileReadsAsZero(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	value, err := statefile.New(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, value)
}

func TestLoad_Corrupt(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"non-numeric": "banana",
		"negative":    "-3",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "progress")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := statefile.New(path).Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestSave_RejectsNegative(t *testing.T) {
	t.Parallel()

	store := statefile.New(filepath.Join(t.TempDir(), "progress"))
	assert.Error(t, store.Save(context.Background(), -1))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := statefile.New(filepath.Join(dir, "progress"))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Save(ctx, i))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".progress-"),
			"temp file left behind: %s", e.Name())
	}
}

func TestSave_OverwritesAtomically(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress")
	store := statefile.New(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, 1))
	require.NoError(t, store.Save(ctx, 2))

	value, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, value)
}
