// Package session hands out the per-session cart store. Each browsing
// session (sid cookie) owns exactly one Store instance and one durable key;
// nothing else reads or writes that key.
package session

import (
	"sync"

	"estore/internal/cart"
)

const cartKeyPrefix = "cart:"

type Manager struct {
	mu      sync.Mutex
	persist cart.Persistence
	carts   map[string]*cart.Store
}

func NewManager(p cart.Persistence) *Manager {
	return &Manager{persist: p, carts: make(map[string]*cart.Store)}
}

// Cart returns the store for sid, rehydrating it from persistence the first
// time the session is seen by this process.
func (m *Manager) Cart(sid string) *cart.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.carts[sid]; ok {
		return s
	}
	s := cart.NewStore(m.persist, cartKeyPrefix+sid)
	m.carts[sid] = s
	return s
}

// Forget drops the in-memory store for sid, e.g. after the session's data
// was deleted. The durable key is the caller's responsibility.
func (m *Manager) Forget(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sid)
}
