// Package cartstore keeps live carts in process memory. Carts are derived,
// reconstructable state: losing them on restart is acceptable, so nothing
// is persisted. Each cart belongs to one browser session; the lock only
// guards the map against concurrent sessions.
package cartstore

import (
	"context"
	"sync"

	"github.com/cermartin/sr/internal/domain/cart"
	"github.com/cermartin/sr/internal/infra"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]cart.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[uuid.UUID]cart.State)}
}

func (s *MemoryStore) Create(_ context.Context) (uuid.UUID, error) {
	id := uuid.New()

	s.mu.Lock()
	s.carts[id] = cart.State{}
	s.mu.Unlock()

	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (cart.State, error) {
	s.mu.RLock()
	state, ok := s.carts[id]
	s.mu.RUnlock()

	if !ok {
		return cart.State{}, infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
	}
	return state, nil
}

func (s *MemoryStore) Update(_ context.Context, id uuid.UUID, fn func(cart.State) cart.State) (cart.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.carts[id]
	if !ok {
		return cart.State{}, infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
	}

	next := fn(state)
	s.carts[id] = next
	return next, nil
}
