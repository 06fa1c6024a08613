package counterrepo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/adapters/out/file/counterrepo"
)

func TestStore_LoadMissingFileReturnsDefault(t *testing.T) {
	store := counterrepo.NewStore(t.TempDir())

	value, err := store.Load(t.Context(), "order", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), value)
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := counterrepo.NewStore(t.TempDir())

	require.NoError(t, store.Save(t.Context(), "order", 1042))

	value, err := store.Load(t.Context(), "order", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1042), value)
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "metadata")
	store := counterrepo.NewStore(dir)

	require.NoError(t, store.Save(t.Context(), "partner", 7))

	data, err := os.ReadFile(filepath.Join(dir, "partner.txt"))
	require.NoError(t, err)
	assert.Equal(t, "7", string(data))
}

func TestStore_LoadTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "order.txt"), []byte(" 1042\n"), 0o644))

	store := counterrepo.NewStore(dir)
	value, err := store.Load(t.Context(), "order", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1042), value)
}

func TestStore_LoadGarbageReturnsDefaultAndError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "order.txt"), []byte("not a number"), 0o644))

	store := counterrepo.NewStore(dir)
	value, err := store.Load(t.Context(), "order", 1000)
	require.Error(t, err)
	assert.Equal(t, int64(1000), value)
}

func TestStore_CountersAreIndependent(t *testing.T) {
	store := counterrepo.NewStore(t.TempDir())

	require.NoError(t, store.Save(t.Context(), "order", 1042))
	require.NoError(t, store.Save(t.Context(), "partner", 7))

	orderValue, err := store.Load(t.Context(), "order", 0)
	require.NoError(t, err)
	partnerValue, err := store.Load(t.Context(), "partner", 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1042), orderValue)
	assert.Equal(t, int64(7), partnerValue)
}
