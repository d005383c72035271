package inventory

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/quaycode/stockroom/pkg/errors"
)

// copyNameSuffix is appended to the name of a duplicated product.
const copyNameSuffix = " (copy)"

// Catalog is the authoritative in-memory collection of products. It owns
// ID assignment and persists the full snapshot after every mutation.
// Persistence failures are surfaced to the caller; the in-memory mutation
// is retained either way.
type Catalog struct {
	mu       sync.Mutex // guards lastID
	lastID   int64
	products *Products
	persist  func() error
}

// newCatalog builds a catalog over the given products. The persist
// callback writes the owning inventory's full snapshot.
func newCatalog(products []Product, lastID int64, persist func() error) *Catalog {
	c := &Catalog{
		lastID:   lastID,
		products: NewProducts(),
		persist:  persist,
	}
	c.products.Reset(products)
	return c
}

// nextID assigns the next product ID. IDs increase monotonically and are
// never reused, even after deletion.
func (c *Catalog) nextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastID++
	return c.lastID
}

// LastID returns the highest product ID assigned so far.
func (c *Catalog) LastID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastID
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return c.products.Len()
}

// Get returns a product by ID.
func (c *Catalog) Get(id int64) (Product, error) {
	product, ok := c.products.Get(id)
	if !ok {
		return Product{}, &errors.NotFoundError{
			Resource: "product",
			ID:       strconv.FormatInt(id, 10),
		}
	}
	return product, nil
}

// List returns all products in catalog order.
func (c *Catalog) List() []Product {
	return c.products.List()
}

// Add validates the draft, assigns the next product ID, appends the
// product, and persists. On a persistence failure the product is returned
// together with the error: it remains in memory but was not saved.
func (c *Catalog) Add(draft Draft) (Product, error) {
	if err := draft.Validate(); err != nil {
		return Product{}, err
	}

	product := draft.product(c.nextID())
	c.products.Append(product)
	return product, c.persist()
}

// Update merges the patch into the product with the given ID and persists.
func (c *Catalog) Update(id int64, patch Patch) (Product, error) {
	if err := patch.Validate(); err != nil {
		return Product{}, err
	}

	product, err := c.Get(id)
	if err != nil {
		return Product{}, err
	}

	product = patch.apply(product)
	c.products.Replace(product)
	return product, c.persist()
}

// Delete removes the product with the given ID and persists. The ID is
// retired permanently and will never be assigned again.
func (c *Catalog) Delete(id int64) error {
	if !c.products.Remove(id) {
		return &errors.NotFoundError{
			Resource: "product",
			ID:       strconv.FormatInt(id, 10),
		}
	}
	return c.persist()
}

// Copy duplicates a product under a new ID with its name marked as a copy.
func (c *Catalog) Copy(id int64) (Product, error) {
	original, err := c.Get(id)
	if err != nil {
		return Product{}, err
	}

	return c.Add(Draft{
		Name:        original.Name + copyNameSuffix,
		Category:    original.Category,
		Quantity:    original.Quantity,
		Price:       original.Price,
		Description: original.Description,
	})
}

// Search returns products whose name, category, or description contains
// the text, case-insensitively, in catalog order. Empty text matches the
// full catalog.
func (c *Catalog) Search(text string) []Product {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return c.List()
	}

	var matches []Product
	c.products.ForEach(func(p Product) bool {
		if p.matches(needle) {
			matches = append(matches, p)
		}
		return true
	})
	return matches
}

// FilterByCategory returns products whose category matches exactly
// (case-sensitive), in catalog order. An empty result is not an error;
// callers decide how to present "nothing to filter".
func (c *Catalog) FilterByCategory(category string) []Product {
	var matches []Product
	c.products.ForEach(func(p Product) bool {
		if p.Category == category {
			matches = append(matches, p)
		}
		return true
	})
	return matches
}

// Categories returns the distinct categories currently present, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	c.products.ForEach(func(p Product) bool {
		if p.Category != "" {
			seen[p.Category] = struct{}{}
		}
		return true
	})

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// adjustQuantity applies a stock delta without persisting. It is used by
// commit and write-off, which validate beforehand and persist once for
// the whole transaction. The quantity invariant is enforced here as a
// last line of defense.
func (c *Catalog) adjustQuantity(id int64, delta int) error {
	product, ok := c.products.Get(id)
	if !ok {
		return &errors.NotFoundError{
			Resource: "product",
			ID:       strconv.FormatInt(id, 10),
		}
	}
	if product.Quantity+delta < 0 {
		return errors.NewInsufficientStockError(id, -delta, product.Quantity)
	}
	product.Quantity += delta
	c.products.Replace(product)
	return nil
}

// snapshot returns the catalog contents for persistence.
func (c *Catalog) snapshot() ([]Product, int64) {
	return c.products.List(), c.LastID()
}
