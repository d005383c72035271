package inventory_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaycode/stockroom/pkg/errors"
	"github.com/quaycode/stockroom/pkg/inventory"
)

func TestInventoryReopenPreservesState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockroom.yaml")

	inv, err := inventory.New(inventory.WithPath(path))
	require.NoError(t, err)
	assert.Equal(t, inventory.Bootstrapped, inv.LoadStatus())

	widget := mustAdd(t, inv.Catalog(), inventory.Draft{Name: "Widget", Category: "Hardware", Quantity: 5, Price: 100})
	cart := inv.NewCart()
	require.NoError(t, cart.AddItem(widget.ID, 3))
	_, err = cart.Commit()
	require.NoError(t, err)

	reopened, err := inventory.New(inventory.WithPath(path))
	require.NoError(t, err)
	assert.Equal(t, inventory.LoadedExisting, reopened.LoadStatus())

	product, err := reopened.Catalog().Get(widget.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, product.Quantity)

	records := reopened.Ledger().All()
	require.Len(t, records, 1)
	assert.Equal(t, widget.ID, records[0].ProductID)
	assert.Equal(t, 3, records[0].Quantity)

	// Counters resume past the persisted IDs.
	next := mustAdd(t, reopened.Catalog(), inventory.Draft{Name: "Gadget", Quantity: 1, Price: 10})
	assert.Greater(t, next.ID, widget.ID)
}

func TestInventoryWriteOff(t *testing.T) {
	inv := newTestInventory(t)
	gadget := mustAdd(t, inv.Catalog(), inventory.Draft{Name: "Gadget", Quantity: 4, Price: 50})

	record, err := inv.WriteOff(gadget.ID, "damaged")
	require.NoError(t, err)
	assert.Equal(t, inventory.SaleKindWriteOff, record.Kind)
	assert.Equal(t, "damaged", record.Reason)
	assert.Equal(t, 4, record.Quantity)
	assert.Equal(t, int64(50), record.Price)

	product, err := inv.Catalog().Get(gadget.ID)
	require.NoError(t, err)
	assert.Zero(t, product.Quantity)

	t.Run("already out of stock", func(t *testing.T) {
		_, err := inv.WriteOff(gadget.ID, "damaged again")
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, 1, inv.Ledger().Len())
	})

	t.Run("missing reason", func(t *testing.T) {
		_, err := inv.WriteOff(gadget.ID, "")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := inv.WriteOff(999, "lost")
		assert.True(t, errors.IsNotFound(err))
	})
}

// failingStore wraps a real store and fails every save after the first
// load, to exercise the retained-mutation persistence contract.
type failingStore struct {
	inner inventory.Store
}

func (s *failingStore) Load() (inventory.Snapshot, inventory.LoadStatus, error) {
	return s.inner.Load()
}

func (s *failingStore) Save(inventory.Snapshot) error {
	return errors.WrapIO("write", "stockroom.yaml", errors.New("disk full"))
}

func TestInventoryPersistenceFailureRetainsMutation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockroom.yaml")
	// Seed the file so Load succeeds before saves start failing.
	seed, err := inventory.New(inventory.WithPath(path))
	require.NoError(t, err)
	widget := mustAdd(t, seed.Catalog(), inventory.Draft{Name: "Widget", Quantity: 5, Price: 100})

	inv, err := inventory.New(inventory.WithStore(&failingStore{inner: inventory.NewFileStore(path)}))
	require.NoError(t, err)

	t.Run("add reports failure but keeps product", func(t *testing.T) {
		product, err := inv.Catalog().Add(inventory.Draft{Name: "Gadget", Quantity: 1, Price: 10})
		require.Error(t, err)
		assert.True(t, errors.IsPersistenceFailure(err))

		kept, getErr := inv.Catalog().Get(product.ID)
		require.NoError(t, getErr)
		assert.Equal(t, "Gadget", kept.Name)
	})

	t.Run("commit reports failure but keeps records and stock change", func(t *testing.T) {
		cart := inv.NewCart()
		require.NoError(t, cart.AddItem(widget.ID, 2))

		records, err := cart.Commit()
		require.Error(t, err)
		assert.True(t, errors.IsPersistenceFailure(err))
		require.Len(t, records, 1)

		product, getErr := inv.Catalog().Get(widget.ID)
		require.NoError(t, getErr)
		assert.Equal(t, 3, product.Quantity)
		assert.Equal(t, 1, inv.Ledger().Len())
	})
}
