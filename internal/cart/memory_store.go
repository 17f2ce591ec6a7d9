package cart

import (
	"context"
	"sync"

	"glamora/internal/model"
)

// memoryStore implements Store in process memory. Used when Redis is
// disabled and in tests; carts do not survive a restart.
type memoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewMemoryStore creates an in-memory cart store.
func NewMemoryStore() Store {
	return &memoryStore{
		carts: make(map[string]*Cart),
	}
}

// Load retrieves the cart for a session, or a new empty cart when none is
// stored.
func (s *memoryStore) Load(ctx context.Context, sessionID string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[sessionID]
	if !ok {
		return New(sessionID), nil
	}

	// Copy so callers cannot mutate the stored cart without Save.
	c := *stored
	c.Items = append([]model.CartItem(nil), stored.Items...)
	return &c, nil
}

// Save writes the whole cart state for its session.
func (s *memoryStore) Save(ctx context.Context, c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	stored.Items = append(stored.Items[:0:0], c.Items...)
	s.carts[c.SessionID] = &stored
	return nil
}

// Delete removes the stored cart for a session.
func (s *memoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
