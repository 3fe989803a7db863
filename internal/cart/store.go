// Package cart implements the session-scoped shopping cart: an ordered set of
// product snapshots with quantities, written through to durable storage on
// every mutation.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"estore/internal/domain"
	applog "estore/internal/log"
)

// Entry is one cart line: the product's fields as they were when first added,
// plus a strictly positive quantity. The snapshot is deliberate — later
// catalog price or copy changes must not reprice items already in the cart.
type Entry struct {
	domain.Product
	Quantity int `json:"quantity"`
}

// Persistence is the minimal durable key-value contract the store needs.
// A missing key reports ok=false with a nil error.
type Persistence interface {
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
}

// Store holds one session's cart. Construct it once per session and pass it
// by reference; it is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	key     string
	persist Persistence
	entries []Entry
}

// NewStore rehydrates the cart persisted under key. A missing key or a
// payload that fails to decode yields an empty cart; neither is an error.
func NewStore(p Persistence, key string) *Store {
	return &Store{key: key, persist: p, entries: loadEntries(p, key)}
}

// AddItem merges qty into an existing line for product.ID, or appends a new
// line holding a snapshot of product taken now. Repeat adds do not refresh
// the stored snapshot. A quantity below 1 is clamped to 1.
func (s *Store) AddItem(product domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == product.ID {
			s.entries[i].Quantity += qty
			s.save()
			return
		}
	}
	s.entries = append(s.entries, Entry{Product: product, Quantity: qty})
	s.save()
}

// RemoveItem deletes the line for productID. Absent ids are a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line; an unknown id is a no-op (nothing to update).
func (s *Store) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		s.RemoveItem(productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == productID {
			s.entries[i].Quantity = qty
			s.save()
			return
		}
	}
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return
	}
	s.entries = nil
	s.save()
}

// Total is Σ snapshot price × quantity, unrounded. Rounding for display is
// the presentation layer's job.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, e := range s.entries {
		total = total.Add(e.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total
}

// ItemCount is the sum of all line quantities, not the number of lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		n += e.Quantity
	}
	return n
}

// Entries returns the lines in insertion order. The slice is a copy.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) removeLocked(productID string) {
	for i := range s.entries {
		if s.entries[i].ID == productID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.save()
			return
		}
	}
}

// save writes the whole entry list through to storage. A failed write is
// logged and swallowed: the in-memory cart stays authoritative and the next
// successful write overwrites the stale value.
func (s *Store) save() {
	raw, err := encodeEntries(s.entries)
	if err == nil {
		err = s.persist.Save(s.key, raw)
	}
	if err != nil {
		applog.Error(nil, "cart.persist.save", err, map[string]any{"key": s.key})
	}
}
