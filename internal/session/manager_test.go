package session_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estore/internal/cart"
	"estore/internal/domain"
	"estore/internal/session"
)

type memPersist struct{ data map[string][]byte }

func (m *memPersist) Load(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memPersist) Save(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

var _ cart.Persistence = (*memPersist)(nil)

func TestManagerReturnsOneStorePerSession(t *testing.T) {
	m := session.NewManager(&memPersist{data: map[string][]byte{}})

	s1 := m.Cart("sid-1")
	assert.Same(t, s1, m.Cart("sid-1"))
	assert.NotSame(t, s1, m.Cart("sid-2"))
}

func TestManagerRehydratesFromPersistence(t *testing.T) {
	persist := &memPersist{data: map[string][]byte{}}

	first := session.NewManager(persist)
	first.Cart("sid-1").AddItem(domain.Product{ID: "a", Name: "Alpha", Price: decimal.RequireFromString("10")}, 2)

	// A fresh process sees the persisted cart for the same session.
	second := session.NewManager(persist)
	entries := second.Cart("sid-1").Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, 2, entries[0].Quantity)

	// Other sessions stay empty.
	assert.Empty(t, second.Cart("sid-2").Entries())
}

func TestManagerForgetDropsInMemoryStore(t *testing.T) {
	persist := &memPersist{data: map[string][]byte{}}
	m := session.NewManager(persist)

	s1 := m.Cart("sid-1")
	m.Forget("sid-1")
	assert.NotSame(t, s1, m.Cart("sid-1"))
}
