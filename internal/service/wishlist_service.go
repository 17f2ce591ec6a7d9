package service

import (
	"context"
	"fmt"
	"time"

	"glamora/internal/model"
	"glamora/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// wishlistService implements WishlistService.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "wishlist").Logger(),
	}
}

// List retrieves the user's saved products with full product details, newest
// first. Entries whose product has left the catalogue are skipped.
func (s *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list wishlist")
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	if len(items) == 0 {
		return []model.WishlistItem{}, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to load wishlist products")
		return nil, fmt.Errorf("failed to load wishlist products: %w", err)
	}

	byID := make(map[string]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	result := make([]model.WishlistItem, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			s.logger.Debug().
				Str("product_id", item.ProductID).
				Msg("wishlist entry references removed product")
			continue
		}
		item.Product = p
		result = append(result, item)
	}

	return result, nil
}

// Add saves a product for the user. Reports whether a new entry was created;
// saving an already-saved product is a no-op.
func (s *wishlistService) Add(ctx context.Context, userID uuid.UUID, productID string) (bool, error) {
	if productID == "" {
		return false, model.NewDomainError(model.ErrCodeMissingField, "product ID is required")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("failed to add wishlist entry: %w", err)
	}
	if product == nil {
		return false, model.ErrProductNotFound
	}

	exists, err := s.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	item := &model.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := s.wishlistRepo.Add(ctx, item); err != nil {
		return false, err
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Str("product_id", productID).
		Msg("product saved to wishlist")

	return true, nil
}

// Remove deletes a saved product. Removing an absent one is a no-op.
func (s *wishlistService) Remove(ctx context.Context, userID uuid.UUID, productID string) error {
	if productID == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "product ID is required")
	}
	return s.wishlistRepo.Remove(ctx, userID, productID)
}
