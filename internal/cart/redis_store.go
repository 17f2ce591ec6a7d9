package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisStore implements Store on Redis. Each cart is stored whole as JSON
// under one key, last write wins.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed cart store. Carts expire after the
// given TTL of inactivity.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "cart-store").Logger(),
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Load retrieves the cart for a session, or a new empty cart when none is
// stored.
func (s *redisStore) Load(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return New(sessionID), nil
		}
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to decode stored cart")
		return nil, fmt.Errorf("failed to decode stored cart: %w", err)
	}

	return &c, nil
}

// Save writes the whole cart state for its session and refreshes the TTL.
func (s *redisStore) Save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(c.SessionID), data, s.ttl).Err(); err != nil {
		s.logger.Error().Err(err).Str("session_id", c.SessionID).Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Debug().
		Str("session_id", c.SessionID).
		Int("items", len(c.Items)).
		Msg("cart saved")

	return nil
}

// Delete removes the stored cart for a session.
func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to delete cart")
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
