package inventory

// Snapshot is the full persisted state: the catalog, the ledger, and both
// ID counters. It is written as a whole on every mutation and must
// round-trip through the store without structural change.
type Snapshot struct {
	Products      []Product    `json:"products" yaml:"products"`
	Sales         []SaleRecord `json:"sales" yaml:"sales"`
	LastProductID int64        `json:"last_product_id" yaml:"last_product_id"`
	LastSaleID    int64        `json:"last_sale_id" yaml:"last_sale_id"`
}

// EmptySnapshot returns the snapshot a fresh store bootstraps with.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Products: []Product{},
		Sales:    []SaleRecord{},
	}
}

// Normalize restores the counter invariants after loading external data:
// last_product_id must be at least the highest product ID present, and
// last_sale_id at least the highest sale ID. IDs are never reassigned
// after deletion, so counters only ever move forward.
func (s *Snapshot) Normalize() {
	if s.Products == nil {
		s.Products = []Product{}
	}
	if s.Sales == nil {
		s.Sales = []SaleRecord{}
	}
	for _, p := range s.Products {
		if p.ID > s.LastProductID {
			s.LastProductID = p.ID
		}
	}
	for _, r := range s.Sales {
		if r.ID > s.LastSaleID {
			s.LastSaleID = r.ID
		}
	}
}
