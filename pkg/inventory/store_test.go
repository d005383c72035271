package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaycode/stockroom/pkg/errors"
	"github.com/quaycode/stockroom/pkg/inventory"
)

func TestFileStoreBootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockroom.yaml")
	store := inventory.NewFileStore(path)

	snapshot, status, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, inventory.Bootstrapped, status)
	assert.Empty(t, snapshot.Products)
	assert.Empty(t, snapshot.Sales)
	assert.Zero(t, snapshot.LastProductID)
	assert.Zero(t, snapshot.LastSaleID)

	// First-run bootstrap persists the empty snapshot immediately.
	_, err = os.Stat(path)
	require.NoError(t, err)

	// A second load reads the file it just created.
	_, status, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, inventory.LoadedExisting, status)
}

func TestFileStoreRecoversFromCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not yaml"), 0o644))

	store := inventory.NewFileStore(path)
	snapshot, status, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, inventory.RecoveredFromCorruption, status)
	assert.Empty(t, snapshot.Products)

	// The fallback snapshot replaced the corrupt file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var reloaded inventory.Snapshot
	require.NoError(t, yaml.Unmarshal(data, &reloaded))
	assert.Empty(t, reloaded.Products)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockroom.yaml")
	store := inventory.NewFileStore(path)

	original := inventory.Snapshot{
		Products: []inventory.Product{
			{ID: 1, Name: "Widget", Category: "Hardware", Quantity: 5, Price: 100},
			{ID: 3, Name: "Gadget", Quantity: 0, Price: 250, Description: "discontinued"},
		},
		Sales:         []inventory.SaleRecord{},
		LastProductID: 3,
		LastSaleID:    0,
	}
	require.NoError(t, store.Save(original))

	loaded, status, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, inventory.LoadedExisting, status)
	assert.Equal(t, original, loaded)

	// save(load()) twice is byte-identical: serialization is idempotent.
	require.NoError(t, store.Save(loaded))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	reloaded, _, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(reloaded))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestFileStoreNormalizesCounters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockroom.yaml")
	data := []byte("products:\n- id: 7\n  name: Widget\n  quantity: 1\n  price: 10\nsales: []\nlast_product_id: 2\nlast_sale_id: 0\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	snapshot, _, err := inventory.NewFileStore(path).Load()
	require.NoError(t, err)
	// The counter must never trail an existing ID.
	assert.Equal(t, int64(7), snapshot.LastProductID)
}

func TestFileStoreSaveErrorSurfaced(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path makes the final rename fail.
	path := filepath.Join(dir, "stockroom.yaml")
	require.NoError(t, os.Mkdir(path, 0o755))

	store := inventory.NewFileStore(path)
	err := store.Save(inventory.EmptySnapshot())
	require.Error(t, err)
	assert.True(t, errors.IsPersistenceFailure(err))
}
