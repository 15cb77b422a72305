package cart

import (
	"context"
	"sync"

	"PhotoMarketAPI/internal/model"
)

// MemoryPersistence is a process-local Persistence. It backs tests and
// single-node deployments that run without redis.
type MemoryPersistence struct {
	mu    sync.RWMutex
	carts map[int64]model.Cart
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{carts: make(map[int64]model.Cart)}
}

func (m *MemoryPersistence) Load(_ context.Context, buyerID int64) (*model.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.carts[buyerID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	cp.Items = append([]model.CartItem(nil), c.Items...)
	return &cp, nil
}

func (m *MemoryPersistence) Save(_ context.Context, buyerID int64, cart *model.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *cart
	cp.Items = append([]model.CartItem(nil), cart.Items...)
	m.carts[buyerID] = cp
	return nil
}

func (m *MemoryPersistence) Delete(_ context.Context, buyerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, buyerID)
	return nil
}
