package cart

import (
	"context"
)

// Store persists carts between requests. Load on an unknown session returns
// a fresh empty cart; the caller persists every mutation with Save.
type Store interface {
	// Load retrieves the cart for a session, or a new empty cart when
	// none is stored.
	Load(ctx context.Context, sessionID string) (*Cart, error)

	// Save writes the whole cart state for its session.
	Save(ctx context.Context, c *Cart) error

	// Delete removes the stored cart for a session.
	Delete(ctx context.Context, sessionID string) error
}
