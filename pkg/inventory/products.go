package inventory

import "sync"

// Products is a concurrency safe, insertion-ordered collection of
// products. Catalog order is observable (search and list results preserve
// it), so the collection keeps a slice alongside an ID index.
type Products struct {
	mu    sync.RWMutex
	items []Product
	index map[int64]int
}

// NewProducts creates an empty Products collection.
func NewProducts() *Products {
	return &Products{
		index: make(map[int64]int),
	}
}

// Get returns a product by id and whether it exists.
func (p *Products) Get(id int64) (Product, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	i, ok := p.index[id]
	if !ok {
		return Product{}, false
	}
	return p.items[i], true
}

// Exists checks if a product exists without returning it.
func (p *Products) Exists(id int64) bool {
	p.mu.RLock()
	_, ok := p.index[id]
	p.mu.RUnlock()
	return ok
}

// Len returns the number of products.
func (p *Products) Len() int {
	p.mu.RLock()
	length := len(p.items)
	p.mu.RUnlock()
	return length
}

// List returns a copy of all products in insertion order.
func (p *Products) List() []Product {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Product, len(p.items))
	copy(out, p.items)
	return out
}

// Append adds a product at the end of the collection.
func (p *Products) Append(product Product) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.index[product.ID] = len(p.items)
	p.items = append(p.items, product)
}

// Replace overwrites the product with the same ID in place, preserving
// its position. Returns false if no such product exists.
func (p *Products) Replace(product Product) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, ok := p.index[product.ID]
	if !ok {
		return false
	}
	p.items[i] = product
	return true
}

// Remove deletes a product by id. Returns false if no such product exists.
func (p *Products) Remove(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, ok := p.index[id]
	if !ok {
		return false
	}
	p.items = append(p.items[:i], p.items[i+1:]...)
	delete(p.index, id)
	for j := i; j < len(p.items); j++ {
		p.index[p.items[j].ID] = j
	}
	return true
}

// Reset replaces the collection contents with the given products,
// preserving their order. Used when loading a snapshot.
func (p *Products) Reset(products []Product) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = make([]Product, len(products))
	copy(p.items, products)
	p.index = make(map[int64]int, len(products))
	for i, product := range p.items {
		p.index[product.ID] = i
	}
}

// ForEach applies a function to each product in insertion order. If the
// function returns false, iteration stops early.
func (p *Products) ForEach(fn func(product Product) bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, product := range p.items {
		if !fn(product) {
			break
		}
	}
}
