package repository

import (
	"context"
	"fmt"

	"glamora/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// wishlistRepository implements the WishlistRepository interface using PostgreSQL.
type wishlistRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewWishlistRepository creates a new PostgreSQL-backed wishlist repository.
func NewWishlistRepository(pool *pgxpool.Pool, logger zerolog.Logger) WishlistRepository {
	return &wishlistRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "wishlist").Logger(),
	}
}

// ListByUser retrieves a user's wishlist entries, newest first.
func (r *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error) {
	query := `
		SELECT id, user_id, product_id, created_at
		FROM wishlist_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query wishlist")
		return nil, fmt.Errorf("failed to query wishlist: %w", err)
	}
	defer rows.Close()

	var items []model.WishlistItem
	for rows.Next() {
		var item model.WishlistItem
		err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan wishlist row")
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating wishlist rows")
		return nil, fmt.Errorf("error iterating wishlist items: %w", err)
	}

	return items, nil
}

// Exists reports whether the user has already saved the product.
func (r *wishlistRepository) Exists(ctx context.Context, userID uuid.UUID, productID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM wishlist_items WHERE user_id = $1 AND product_id = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, productID).Scan(&exists)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID).
			Msg("failed to check wishlist entry")
		return false, fmt.Errorf("failed to check wishlist entry: %w", err)
	}

	return exists, nil
}

// Add inserts a wishlist entry. The unique constraint on (user_id, product_id)
// makes a concurrent duplicate a no-op.
func (r *wishlistRepository) Add(ctx context.Context, item *model.WishlistItem) error {
	query := `
		INSERT INTO wishlist_items (id, user_id, product_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, item.ID, item.UserID, item.ProductID, item.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", item.UserID.String()).
			Str("product_id", item.ProductID).
			Msg("failed to add wishlist entry")
		return fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	r.logger.Debug().
		Str("user_id", item.UserID.String()).
		Str("product_id", item.ProductID).
		Msg("wishlist entry added")

	return nil
}

// Remove deletes a wishlist entry. Removing an absent entry is not an error.
func (r *wishlistRepository) Remove(ctx context.Context, userID uuid.UUID, productID string) error {
	query := `DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`

	_, err := r.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID).
			Msg("failed to remove wishlist entry")
		return fmt.Errorf("failed to remove wishlist entry: %w", err)
	}

	return nil
}
