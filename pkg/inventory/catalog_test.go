package inventory_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaycode/stockroom/pkg/errors"
	"github.com/quaycode/stockroom/pkg/inventory"
)

func newTestInventory(t *testing.T) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.New(inventory.WithPath(filepath.Join(t.TempDir(), "stockroom.yaml")))
	require.NoError(t, err)
	return inv
}

func mustAdd(t *testing.T, cat *inventory.Catalog, draft inventory.Draft) inventory.Product {
	t.Helper()
	product, err := cat.Add(draft)
	require.NoError(t, err)
	return product
}

func TestCatalogAddAssignsMonotonicIDs(t *testing.T) {
	cat := newTestInventory(t).Catalog()

	var lastID int64
	for _, name := range []string{"Widget", "Gadget", "Sprocket"} {
		product := mustAdd(t, cat, inventory.Draft{Name: name, Quantity: 1, Price: 10})
		assert.Greater(t, product.ID, lastID)
		lastID = product.ID
	}
	assert.Equal(t, 3, cat.Len())
}

func TestCatalogAddValidation(t *testing.T) {
	cat := newTestInventory(t).Catalog()

	tests := []struct {
		name  string
		draft inventory.Draft
	}{
		{"empty name", inventory.Draft{Name: "", Quantity: 1, Price: 10}},
		{"blank name", inventory.Draft{Name: "   ", Quantity: 1, Price: 10}},
		{"negative quantity", inventory.Draft{Name: "Widget", Quantity: -1, Price: 10}},
		{"negative price", inventory.Draft{Name: "Widget", Quantity: 1, Price: -10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cat.Add(tt.draft)
			assert.True(t, errors.IsValidationError(err))
		})
	}
	assert.Zero(t, cat.Len())
}

func TestCatalogUpdate(t *testing.T) {
	cat := newTestInventory(t).Catalog()
	product := mustAdd(t, cat, inventory.Draft{Name: "Widget", Category: "Hardware", Quantity: 5, Price: 100})

	t.Run("merges patch fields", func(t *testing.T) {
		name := "Widget Pro"
		qty := 8
		updated, err := cat.Update(product.ID, inventory.Patch{Name: &name, Quantity: &qty})
		require.NoError(t, err)
		assert.Equal(t, "Widget Pro", updated.Name)
		assert.Equal(t, 8, updated.Quantity)
		// Unpatched fields are untouched.
		assert.Equal(t, "Hardware", updated.Category)
		assert.Equal(t, int64(100), updated.Price)
	})

	t.Run("unknown id leaves catalog unchanged", func(t *testing.T) {
		before := cat.List()
		name := "Ghost"
		_, err := cat.Update(999, inventory.Patch{Name: &name})
		assert.True(t, errors.IsNotFound(err))
		assert.Equal(t, before, cat.List())
	})

	t.Run("invalid patch rejected", func(t *testing.T) {
		qty := -1
		_, err := cat.Update(product.ID, inventory.Patch{Quantity: &qty})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestCatalogDeleteNeverReusesIDs(t *testing.T) {
	cat := newTestInventory(t).Catalog()
	first := mustAdd(t, cat, inventory.Draft{Name: "Widget", Quantity: 1, Price: 10})

	require.NoError(t, cat.Delete(first.ID))
	assert.True(t, errors.IsNotFound(cat.Delete(first.ID)))

	second := mustAdd(t, cat, inventory.Draft{Name: "Gadget", Quantity: 1, Price: 10})
	assert.Greater(t, second.ID, first.ID)
}

func TestCatalogCopy(t *testing.T) {
	cat := newTestInventory(t).Catalog()
	original := mustAdd(t, cat, inventory.Draft{
		Name: "Widget", Category: "Hardware", Quantity: 5, Price: 100, Description: "blue",
	})

	duplicate, err := cat.Copy(original.ID)
	require.NoError(t, err)
	assert.Greater(t, duplicate.ID, original.ID)
	assert.Equal(t, "Widget (copy)", duplicate.Name)
	assert.Equal(t, original.Category, duplicate.Category)
	assert.Equal(t, original.Quantity, duplicate.Quantity)
	assert.Equal(t, original.Price, duplicate.Price)
	assert.Equal(t, original.Description, duplicate.Description)

	_, err = cat.Copy(999)
	assert.True(t, errors.IsNotFound(err))
}

func TestCatalogSearch(t *testing.T) {
	cat := newTestInventory(t).Catalog()
	mustAdd(t, cat, inventory.Draft{Name: "Steel Widget", Category: "Hardware", Quantity: 1, Price: 10})
	mustAdd(t, cat, inventory.Draft{Name: "Gadget", Category: "Electronics", Quantity: 1, Price: 20})
	mustAdd(t, cat, inventory.Draft{Name: "Cable", Category: "Electronics", Quantity: 1, Price: 5, Description: "widget accessory"})

	t.Run("empty text returns full catalog in order", func(t *testing.T) {
		results := cat.Search("")
		require.Len(t, results, 3)
		assert.Equal(t, cat.List(), results)
	})

	t.Run("case-insensitive match on name and description", func(t *testing.T) {
		results := cat.Search("WIDGET")
		require.Len(t, results, 2)
		assert.Equal(t, "Steel Widget", results[0].Name)
		assert.Equal(t, "Cable", results[1].Name)
	})

	t.Run("match on category", func(t *testing.T) {
		results := cat.Search("electron")
		assert.Len(t, results, 2)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, cat.Search("plutonium"))
	})
}

func TestCatalogCategories(t *testing.T) {
	cat := newTestInventory(t).Catalog()
	mustAdd(t, cat, inventory.Draft{Name: "Widget", Category: "Hardware", Quantity: 1, Price: 10})
	mustAdd(t, cat, inventory.Draft{Name: "Gadget", Category: "Electronics", Quantity: 1, Price: 20})
	mustAdd(t, cat, inventory.Draft{Name: "Bolt", Category: "Hardware", Quantity: 1, Price: 1})
	mustAdd(t, cat, inventory.Draft{Name: "Misc", Quantity: 1, Price: 1}) // no category

	assert.Equal(t, []string{"Electronics", "Hardware"}, cat.Categories())

	t.Run("filter is exact and case-sensitive", func(t *testing.T) {
		assert.Len(t, cat.FilterByCategory("Hardware"), 2)
		assert.Empty(t, cat.FilterByCategory("hardware"))
	})
}

func TestProductStockLevel(t *testing.T) {
	tests := []struct {
		quantity int
		want     inventory.StockLevel
	}{
		{0, inventory.StockOut},
		{1, inventory.StockCritical},
		{3, inventory.StockCritical},
		{4, inventory.StockLow},
		{10, inventory.StockLow},
		{11, inventory.StockOK},
	}
	for _, tt := range tests {
		p := inventory.Product{Quantity: tt.quantity}
		assert.Equal(t, tt.want, p.StockLevel(), "quantity %d", tt.quantity)
	}
}
