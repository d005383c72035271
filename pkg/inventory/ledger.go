package inventory

import (
	"sync"

	"github.com/agentstation/utc"

	"github.com/quaycode/stockroom/pkg/errors"
)

// Ledger is the append-only history of sales and write-offs. Records are
// never mutated or deleted once written; the ID sequence is independent
// of product IDs.
type Ledger struct {
	mu      sync.RWMutex // guards lastID and records
	lastID  int64
	records []SaleRecord
	persist func() error
}

// newLedger builds a ledger over the given records. The persist callback
// writes the owning inventory's full snapshot.
func newLedger(records []SaleRecord, lastID int64, persist func() error) *Ledger {
	l := &Ledger{
		lastID:  lastID,
		persist: persist,
	}
	l.records = make([]SaleRecord, len(records))
	copy(l.records, records)
	return l
}

// RecordSale appends a sale record with the next sale ID and the current
// time, then persists.
func (l *Ledger) RecordSale(productID int64, productName string, quantity int, unitPrice int64) (SaleRecord, error) {
	record, err := l.record(SaleRecord{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       unitPrice,
		Kind:        SaleKindSale,
	})
	if err != nil {
		return SaleRecord{}, err
	}
	return record, l.persist()
}

// RecordWriteOff appends a write-off record with the given reason, then
// persists.
func (l *Ledger) RecordWriteOff(productID int64, productName string, quantity int, unitPrice int64, reason string) (SaleRecord, error) {
	if reason == "" {
		return SaleRecord{}, errors.NewValidationError("reason", reason, "must not be empty")
	}
	record, err := l.record(SaleRecord{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       unitPrice,
		Kind:        SaleKindWriteOff,
		Reason:      reason,
	})
	if err != nil {
		return SaleRecord{}, err
	}
	return record, l.persist()
}

// record validates, stamps, and appends without persisting. Commit uses
// it directly so a multi-line sale persists once.
func (l *Ledger) record(rec SaleRecord) (SaleRecord, error) {
	if rec.Quantity < 1 {
		return SaleRecord{}, errors.NewValidationError("quantity", rec.Quantity, "must be at least 1")
	}
	if rec.Price < 0 {
		return SaleRecord{}, errors.NewValidationError("price", rec.Price, "must not be negative")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastID++
	rec.ID = l.lastID
	rec.Timestamp = utc.Now()
	l.records = append(l.records, rec)
	return rec, nil
}

// All returns the records in append order.
func (l *Ledger) All() []SaleRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]SaleRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// LastID returns the highest sale ID assigned so far.
func (l *Ledger) LastID() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastID
}

// TotalValue returns the sum of quantity * price across all records.
// This is a summary statistic, not a running balance.
func (l *Ledger) TotalValue() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total int64
	for _, rec := range l.records {
		total += rec.Total()
	}
	return total
}

// Summarize aggregates the ledger for the history views.
func (l *Ledger) Summarize() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	summary := Summary{Records: len(l.records)}
	for _, rec := range l.records {
		summary.Units += rec.Quantity
		summary.Total += rec.Total()
	}
	return summary
}

// snapshot returns the ledger contents for persistence.
func (l *Ledger) snapshot() ([]SaleRecord, int64) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]SaleRecord, len(l.records))
	copy(out, l.records)
	return out, l.lastID
}
