package cart_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estore/internal/cart"
	"estore/internal/domain"
)

// memPersist is an in-memory stand-in for the durable kv store.
type memPersist struct {
	data    map[string][]byte
	saveErr error
	saves   int
}

func newMemPersist() *memPersist { return &memPersist{data: map[string][]byte{}} }

func (m *memPersist) Load(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memPersist) Save(key string, value []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	m.saves++
	return nil
}

func product(id, name, priceStr string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(priceStr),
		Category: "Electronics",
		Stock:    10,
	}
}

func TestAddItemMergesQuantityForSameProduct(t *testing.T) {
	s := cart.NewStore(newMemPersist(), "cart:t")
	a := product("a", "Alpha", "79.99")

	s.AddItem(a, 2)
	s.AddItem(a, 3)
	s.RemoveItem("b") // never added: no-op, not an error

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)
	assert.Equal(t, 5, s.ItemCount())
	assert.True(t, s.Total().Equal(decimal.RequireFromString("399.95")),
		"total = 5 × 79.99, got %s", s.Total())
}

func TestItemCountSumsQuantitiesNotLines(t *testing.T) {
	s := cart.NewStore(newMemPersist(), "cart:t")
	s.AddItem(product("a", "Alpha", "10"), 2)
	s.AddItem(product("b", "Beta", "20"), 3)

	assert.Len(t, s.Entries(), 2)
	assert.Equal(t, 5, s.ItemCount())
}

func TestSnapshotIsImmuneToCatalogChanges(t *testing.T) {
	s := cart.NewStore(newMemPersist(), "cart:t")
	p := product("a", "Alpha", "10")
	s.AddItem(p, 1)

	// The canonical record changes after the add...
	p.Price = decimal.RequireFromString("999")
	p.Description = "now with more adjectives"

	// ...and a repeat add must not refresh the stored snapshot either.
	s.AddItem(p, 1)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Price.Equal(decimal.RequireFromString("10")))
	assert.True(t, s.Total().Equal(decimal.RequireFromString("20")))
}

func TestInvalidQuantityIsClampedToOne(t *testing.T) {
	s := cart.NewStore(newMemPersist(), "cart:t")
	s.AddItem(product("a", "Alpha", "10"), 0)
	s.AddItem(product("b", "Beta", "20"), -4)

	assert.Equal(t, 2, s.ItemCount())
}

func TestSetQuantityReplacesAndZeroRemoves(t *testing.T) {
	s := cart.NewStore(newMemPersist(), "cart:t")
	s.AddItem(product("a", "Alpha", "10"), 2)

	s.SetQuantity("a", 7)
	assert.Equal(t, 7, s.ItemCount())

	s.SetQuantity("a", 0)
	assert.Empty(t, s.Entries())
}

func TestSetQuantityZeroMatchesRemoveItem(t *testing.T) {
	a := product("a", "Alpha", "10")
	b := product("b", "Beta", "20")

	viaSet := cart.NewStore(newMemPersist(), "cart:t")
	viaRemove := cart.NewStore(newMemPersist(), "cart:t")
	for _, s := range []*cart.Store{viaSet, viaRemove} {
		s.AddItem(a, 2)
		s.AddItem(b, 1)
	}
	viaSet.SetQuantity("a", 0)
	viaRemove.RemoveItem("a")

	assert.Equal(t, viaRemove.Entries(), viaSet.Entries())
}

func TestSetQuantityUnknownIDIsNoop(t *testing.T) {
	s := cart.NewStore(newMemPersist(), "cart:t")
	s.AddItem(product("a", "Alpha", "10"), 1)

	s.SetQuantity("ghost", 5)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
}

func TestClearEmptiesAndPersists(t *testing.T) {
	p := newMemPersist()
	s := cart.NewStore(p, "cart:t")
	s.AddItem(product("a", "Alpha", "10"), 2)

	s.Clear()

	assert.Empty(t, s.Entries())
	assert.Equal(t, 0, s.ItemCount())
	assert.JSONEq(t, `[]`, string(p.data["cart:t"]))
}

func TestPersistReloadRoundTrip(t *testing.T) {
	p := newMemPersist()
	s := cart.NewStore(p, "cart:t")
	s.AddItem(product("a", "Alpha", "79.99"), 2)
	s.AddItem(product("b", "Beta", "24.99"), 1)
	s.SetQuantity("a", 3)

	reloaded := cart.NewStore(p, "cart:t")
	assert.Equal(t, s.Entries(), reloaded.Entries())
	assert.Equal(t, s.ItemCount(), reloaded.ItemCount())
	assert.True(t, s.Total().Equal(reloaded.Total()))
}

func TestMissingKeyYieldsEmptyCart(t *testing.T) {
	s := cart.NewStore(newMemPersist(), "cart:never-written")
	assert.Empty(t, s.Entries())
}

func TestMalformedPayloadYieldsEmptyCart(t *testing.T) {
	p := newMemPersist()
	p.data["cart:t"] = []byte(`{"this is": "not a cart"`)

	s := cart.NewStore(p, "cart:t")
	assert.Empty(t, s.Entries())

	// The store must still be usable afterwards.
	s.AddItem(product("a", "Alpha", "10"), 1)
	assert.Equal(t, 1, s.ItemCount())
}

func TestLoadDropsInvalidLines(t *testing.T) {
	p := newMemPersist()
	p.data["cart:t"] = []byte(`[
	  {"id":"a","name":"Alpha","price":"10","quantity":2},
	  {"id":"zero","name":"Zero","price":"5","quantity":0},
	  {"id":"a","name":"Alpha dup","price":"10","quantity":9},
	  {"id":"","name":"anon","price":"1","quantity":1}
	]`)

	s := cart.NewStore(p, "cart:t")
	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestWriteThroughOnEveryMutation(t *testing.T) {
	p := newMemPersist()
	s := cart.NewStore(p, "cart:t")

	s.AddItem(product("a", "Alpha", "10"), 1)
	s.SetQuantity("a", 4)
	s.RemoveItem("a")
	assert.Equal(t, 3, p.saves)

	// Persisted and in-memory state agree after the last mutation.
	assert.JSONEq(t, `[]`, string(p.data["cart:t"]))
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	p := newMemPersist()
	s := cart.NewStore(p, "cart:t")

	p.saveErr = errors.New("disk on fire")
	s.AddItem(product("a", "Alpha", "10"), 2)

	// The mutation landed in memory even though the write failed.
	assert.Equal(t, 2, s.ItemCount())
	assert.Empty(t, p.data)

	// The next successful write carries the full current state.
	p.saveErr = nil
	s.AddItem(product("b", "Beta", "20"), 1)
	reloaded := cart.NewStore(p, "cart:t")
	assert.Equal(t, s.Entries(), reloaded.Entries())
}
