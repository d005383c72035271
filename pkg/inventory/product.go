// Package inventory provides the core inventory system: the product
// catalog, the append-only sales ledger, the cart-based sale transaction
// state machine, and whole-snapshot persistence to a local file.
//
// The catalog and ledger exclusively own their collections. The cart
// borrows read access to the catalog while staging and mutates stock only
// through commit. Every mutating operation persists the full snapshot
// synchronously before reporting success; a persistence failure is
// surfaced to the caller while the in-memory mutation is retained.
//
// Example usage:
//
//	inv, err := inventory.New(inventory.WithPath("stockroom.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	product, err := inv.Catalog().Add(inventory.Draft{
//	    Name:     "Widget",
//	    Category: "Hardware",
//	    Quantity: 5,
//	    Price:    100,
//	})
package inventory

import (
	"strings"

	"github.com/quaycode/stockroom/pkg/errors"
)

// Product is a catalog entry. Prices are integer minor currency units;
// formatting is a presentation concern.
type Product struct {
	ID          int64  `json:"id" yaml:"id"`                                       // Unique, assigned by the catalog, never reused
	Name        string `json:"name" yaml:"name"`                                   // Display name (must not be empty)
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`       // Grouping/filter key (may be empty)
	Quantity    int    `json:"quantity" yaml:"quantity"`                           // Units in stock, never negative
	Price       int64  `json:"price" yaml:"price"`                                 // Unit price in minor currency units
	Description string `json:"description,omitempty" yaml:"description,omitempty"` // Optional free text
}

// Value returns quantity * price, the stock value of this product.
func (p Product) Value() int64 {
	return int64(p.Quantity) * p.Price
}

// StockLevel classifies the remaining stock of a product. The thresholds
// match the ones the storefront views color-code against.
type StockLevel string

// Stock levels ordered from worst to best.
const (
	StockOut      StockLevel = "out"      // 0 units
	StockCritical StockLevel = "critical" // 1-3 units
	StockLow      StockLevel = "low"      // 4-10 units
	StockOK       StockLevel = "ok"       // more than 10 units
)

// Stock level thresholds.
const (
	criticalStockThreshold = 3
	lowStockThreshold      = 10
)

// StockLevel returns the stock classification for the product.
func (p Product) StockLevel() StockLevel {
	switch {
	case p.Quantity <= 0:
		return StockOut
	case p.Quantity <= criticalStockThreshold:
		return StockCritical
	case p.Quantity <= lowStockThreshold:
		return StockLow
	default:
		return StockOK
	}
}

// matches reports whether the product matches a case-insensitive substring
// search across name, category, and description.
func (p Product) matches(needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// Draft is the caller-supplied portion of a product; the catalog assigns
// the ID on add.
type Draft struct {
	Name        string
	Category    string
	Quantity    int
	Price       int64
	Description string
}

// Validate checks the draft against catalog invariants.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.NewValidationError("name", d.Name, "must not be empty")
	}
	if d.Quantity < 0 {
		return errors.NewValidationError("quantity", d.Quantity, "must not be negative")
	}
	if d.Price < 0 {
		return errors.NewValidationError("price", d.Price, "must not be negative")
	}
	return nil
}

// product builds the Product stored for this draft.
func (d Draft) product(id int64) Product {
	return Product{
		ID:          id,
		Name:        d.Name,
		Category:    d.Category,
		Quantity:    d.Quantity,
		Price:       d.Price,
		Description: d.Description,
	}
}

// Patch describes a partial product update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	Category    *string
	Quantity    *int
	Price       *int64
	Description *string
}

// Validate checks the set fields of the patch against catalog invariants.
func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errors.NewValidationError("name", *p.Name, "must not be empty")
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return errors.NewValidationError("quantity", *p.Quantity, "must not be negative")
	}
	if p.Price != nil && *p.Price < 0 {
		return errors.NewValidationError("price", *p.Price, "must not be negative")
	}
	return nil
}

// apply merges the patch into a product.
func (p Patch) apply(product Product) Product {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Quantity != nil {
		product.Quantity = *p.Quantity
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	return product
}
