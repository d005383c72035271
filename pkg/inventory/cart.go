package inventory

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/quaycode/stockroom/pkg/errors"
)

// CartState is the observable state of a cart. Committed and Abandoned
// are transitions, not resting states: both return the cart to Empty, so
// a cart is reusable across sales.
type CartState string

// Cart states.
const (
	CartEmpty   CartState = "empty"
	CartStaging CartState = "staging"
)

// Line is one staged cart entry. Lines exist only while a cart is open
// and have no independent persistence. Multiple additions of the same
// product merge into a single line.
type Line struct {
	ProductID int64  `json:"product_id" yaml:"product_id"`
	Name      string `json:"name" yaml:"name"`
	UnitPrice int64  `json:"unit_price" yaml:"unit_price"`
	Quantity  int    `json:"quantity" yaml:"quantity"`
}

// Total returns unit price * quantity for this line.
func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart stages line items for one in-progress sale transaction. Stock is
// reserved at commit, not at add: staging only checks availability
// against the catalog's live quantity, and commit re-validates every
// line before mutating anything. Single-user operation makes the
// unreserved window harmless.
type Cart struct {
	inv   *Inventory
	lines []Line
}

// CommitOptions carries optional commit metadata.
type CommitOptions struct {
	customer string
}

// CommitOption configures a commit.
type CommitOption func(*CommitOptions)

// WithCustomer attaches a customer name to the records created by the commit.
func WithCustomer(name string) CommitOption {
	return func(o *CommitOptions) {
		o.customer = name
	}
}

// State returns the current cart state.
func (c *Cart) State() CartState {
	if len(c.lines) == 0 {
		return CartEmpty
	}
	return CartStaging
}

// Lines returns a copy of the staged lines in staging order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total returns the sum of all line totals. It is recomputed on every
// call, never cached across mutation.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Total()
	}
	return total
}

// staged returns the quantity already staged for a product.
func (c *Cart) staged(productID int64) int {
	for _, line := range c.lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

// AddItem stages a quantity of a product. Availability is checked against
// the catalog's live stock minus what this cart has already staged for
// the product; on success an existing line for the product is merged
// rather than duplicated. The cart is unchanged on any failure.
func (c *Cart) AddItem(productID int64, quantity int) error {
	if quantity < 1 {
		return errors.NewValidationError("quantity", quantity, "must be at least 1")
	}

	product, err := c.inv.catalog.Get(productID)
	if err != nil {
		return err
	}

	available := product.Quantity - c.staged(productID)
	if quantity > available {
		return errors.NewInsufficientStockError(productID, quantity, available)
	}

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: productID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
	})
	return nil
}

// RemoveItem removes the staged line at the given index. The cart returns
// to Empty when no lines remain.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.lines) {
		return &errors.NotFoundError{
			Resource: "cart line",
			ID:       strconv.Itoa(index),
		}
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Clear abandons the staged sale and returns the cart to Empty.
func (c *Cart) Clear() {
	c.lines = nil
}

// Commit turns the staged cart into stock decrements plus ledger records,
// atomically. Every line is re-validated first: the product must still
// exist and hold sufficient stock, defending against stock reduced
// through another path since staging. If any line fails, the whole
// commit fails with no stock mutation and no ledger append. On success
// each line decrements catalog stock and appends one sale record; all
// records share a freshly minted receipt ID, the snapshot is persisted
// once, and the cart returns to Empty.
//
// A persistence failure after the in-memory commit is reported alongside
// the created records; the mutation is retained in memory, not rolled
// back.
func (c *Cart) Commit(opts ...CommitOption) ([]SaleRecord, error) {
	if len(c.lines) == 0 {
		return nil, errors.ErrEmptyCart
	}

	options := &CommitOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Validation pass: no mutation until every line clears.
	for _, line := range c.lines {
		product, err := c.inv.catalog.Get(line.ProductID)
		if err != nil {
			return nil, err
		}
		if line.Quantity > product.Quantity {
			return nil, errors.NewInsufficientStockError(line.ProductID, line.Quantity, product.Quantity)
		}
	}

	receiptID := uuid.NewString()
	records := make([]SaleRecord, 0, len(c.lines))
	for _, line := range c.lines {
		// Cannot fail: the validation pass held and nothing runs between
		// validation and mutation in a single logical thread.
		if err := c.inv.catalog.adjustQuantity(line.ProductID, -line.Quantity); err != nil {
			return nil, err
		}

		record, err := c.inv.ledger.record(SaleRecord{
			ReceiptID:   receiptID,
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Price:       line.UnitPrice,
			Kind:        SaleKindSale,
			Customer:    options.customer,
		})
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	err := c.inv.save()
	c.lines = nil
	return records, err
}
