package inventory

import (
	"github.com/agentstation/utc"
)

// SaleKind distinguishes ledger record types.
type SaleKind string

// Ledger record kinds.
const (
	// SaleKindSale is a regular sale committed from a cart or recorded directly.
	SaleKindSale SaleKind = "sale"
	// SaleKindWriteOff is a non-sale stock reduction with a reason.
	SaleKindWriteOff SaleKind = "write_off"
)

// SaleRecord is one immutable entry in the sales ledger. Product fields
// are a snapshot of the product state at transaction time and are never
// recomputed; the product reference is weak and survives product deletion.
type SaleRecord struct {
	ID          int64    `json:"id" yaml:"id"`                                     // Unique, assigned by the ledger, independent of product IDs
	ReceiptID   string   `json:"receipt_id,omitempty" yaml:"receipt_id,omitempty"` // Shared by all records created by one cart commit
	ProductID   int64    `json:"product_id" yaml:"product_id"`
	ProductName string   `json:"product_name" yaml:"product_name"`
	Quantity    int      `json:"quantity" yaml:"quantity"`
	Price       int64    `json:"price" yaml:"price"` // Unit price at transaction time
	Kind        SaleKind `json:"kind" yaml:"kind"`
	Reason      string   `json:"reason,omitempty" yaml:"reason,omitempty"`     // Write-off reason, empty for sales
	Customer    string   `json:"customer,omitempty" yaml:"customer,omitempty"` // Optional customer name from checkout
	Timestamp   utc.Time `json:"timestamp" yaml:"timestamp"`                   // Assigned by the ledger at append time
}

// Total returns quantity * unit price for this record.
func (r SaleRecord) Total() int64 {
	return int64(r.Quantity) * r.Price
}

// IsWriteOff reports whether the record is a write-off.
func (r SaleRecord) IsWriteOff() bool {
	return r.Kind == SaleKindWriteOff
}

// Summary aggregates ledger records for the history views.
type Summary struct {
	Records int   `json:"records" yaml:"records"` // Number of ledger entries
	Units   int   `json:"units" yaml:"units"`     // Total units sold or written off
	Total   int64 `json:"total" yaml:"total"`     // Sum of quantity * price across entries
}
