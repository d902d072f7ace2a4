// Package stock keeps the storefront's read model of per-product
// availability. The backend owns real inventory; this ledger mirrors it for
// display and is decremented locally only after a confirmed checkout.
package stock

import "sync"

// Ledger tracks remaining purchasable quantity per product.
type Ledger struct {
	mu  sync.RWMutex
	qty map[string]int
}

// NewLedger constructs an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{qty: make(map[string]int)}
}

// Replace swaps the whole ledger for a fresh snapshot from the backend.
func (l *Ledger) Replace(quantities map[string]int) {
	next := make(map[string]int, len(quantities))
	for id, q := range quantities {
		next[id] = q
	}
	l.mu.Lock()
	l.qty = next
	l.mu.Unlock()
}

// Available returns remaining quantity for a product. Unknown products
// report zero.
func (l *Ledger) Available(productID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.qty[productID]
}

// DecrementAll applies purchased quantities for a single confirmed order.
// All lines of the order are applied together; quantities floor at zero.
func (l *Ledger) DecrementAll(purchased map[string]int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, q := range purchased {
		remaining := l.qty[id] - q
		if remaining < 0 {
			remaining = 0
		}
		l.qty[id] = remaining
	}
}
