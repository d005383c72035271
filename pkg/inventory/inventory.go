package inventory

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/quaycode/stockroom/pkg/errors"
	"github.com/quaycode/stockroom/pkg/logging"
)

// DefaultPath is the snapshot file used when no path is configured.
const DefaultPath = "stockroom.yaml"

// Inventory is the aggregate root: it owns the store, the catalog, and
// the ledger, and provides the operations that span both collections
// (carts and write-offs). All operations run to completion before the
// next begins; save is synchronous and a mutation is only reported
// successful after the store acknowledges it.
type Inventory struct {
	store      Store
	catalog    *Catalog
	ledger     *Ledger
	logger     *zerolog.Logger
	loadStatus LoadStatus
}

// Option configures an Inventory.
type Option func(*options)

type options struct {
	path   string
	store  Store
	logger *zerolog.Logger
}

// WithPath sets the snapshot file path for the default file store.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithStore sets a custom store implementation, replacing the file store.
func WithStore(store Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the logger used for persistence and recovery events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New opens an inventory, loading the snapshot from the configured store.
// A missing backing file is bootstrapped; a corrupt one is recovered to
// an empty snapshot, observably (check LoadStatus).
func New(opts ...Option) (*Inventory, error) {
	o := &options{
		path:   DefaultPath,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		store = NewFileStore(o.path)
	}

	snapshot, status, err := store.Load()
	if err != nil {
		return nil, err
	}

	inv := &Inventory{
		store:      store,
		logger:     o.logger,
		loadStatus: status,
	}
	inv.catalog = newCatalog(snapshot.Products, snapshot.LastProductID, inv.save)
	inv.ledger = newLedger(snapshot.Sales, snapshot.LastSaleID, inv.save)

	if status == RecoveredFromCorruption {
		inv.logger.Warn().Msg("Inventory opened on a recovered empty snapshot; previous data was unreadable")
	}

	return inv, nil
}

// Catalog returns the product catalog.
func (inv *Inventory) Catalog() *Catalog {
	return inv.catalog
}

// Ledger returns the sales ledger.
func (inv *Inventory) Ledger() *Ledger {
	return inv.ledger
}

// LoadStatus reports how the snapshot was produced at open time.
func (inv *Inventory) LoadStatus() LoadStatus {
	return inv.loadStatus
}

// NewCart opens an empty cart staged against this inventory's catalog.
func (inv *Inventory) NewCart() *Cart {
	return &Cart{inv: inv}
}

// WriteOff records a non-sale stock reduction: the product's entire
// current quantity is written off with the given reason, its stock is set
// to zero, and one write-off record is appended. It bypasses cart
// staging. Writing off a product that is already out of stock is an
// input error and appends nothing.
func (inv *Inventory) WriteOff(productID int64, reason string) (SaleRecord, error) {
	if reason == "" {
		return SaleRecord{}, errors.NewValidationError("reason", reason, "must not be empty")
	}

	product, err := inv.catalog.Get(productID)
	if err != nil {
		return SaleRecord{}, err
	}
	if product.Quantity == 0 {
		return SaleRecord{}, errors.NewValidationError("quantity", product.Quantity,
			"product "+strconv.FormatInt(productID, 10)+" is already out of stock")
	}

	record, err := inv.ledger.record(SaleRecord{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    product.Quantity,
		Price:       product.Price,
		Kind:        SaleKindWriteOff,
		Reason:      reason,
	})
	if err != nil {
		return SaleRecord{}, err
	}

	if err := inv.catalog.adjustQuantity(productID, -product.Quantity); err != nil {
		return SaleRecord{}, err
	}

	return record, inv.save()
}

// save assembles the full snapshot from both collections and writes it
// through the store. It is the single persistence path for every
// mutating operation.
func (inv *Inventory) save() error {
	products, lastProductID := inv.catalog.snapshot()
	sales, lastSaleID := inv.ledger.snapshot()

	err := inv.store.Save(Snapshot{
		Products:      products,
		Sales:         sales,
		LastProductID: lastProductID,
		LastSaleID:    lastSaleID,
	})
	if err != nil {
		inv.logger.Error().Err(err).Msg("Snapshot save failed; in-memory state retained")
	}
	return err
}
