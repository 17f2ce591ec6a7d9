package service

import (
	"context"
	"fmt"

	"glamora/internal/cart"
	"glamora/internal/model"
	"glamora/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService. Mutations load the stored cart, apply
// the change, and write the result back before returning it, so a response
// always reflects persisted state.
type cartService struct {
	store       cart.Store
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store cart.Store, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		store:       store,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the cart for a session, empty when none exists.
func (s *cartService) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// AddItem adds one unit of a product, capturing its current price. Repeated
// adds of the same product increment the existing line instead.
func (s *cartService) AddItem(ctx context.Context, sessionID, productID string) (*cart.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	if product == nil {
		s.logger.Warn().Str("product_id", productID).Msg("cart add for unknown product")
		return nil, model.ErrProductNotFound
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	c.AddItem(model.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     image,
		Category:  product.Category,
	})

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("product_id", productID).
		Int("items", c.TotalItems()).
		Msg("cart item added")

	return c, nil
}

// UpdateQuantity sets the quantity of a cart line. Zero or negative removes
// the line.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*cart.Cart, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(productID, quantity)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem removes a cart line regardless of quantity.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, productID string) (*cart.Cart, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(productID)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the cart and drops its stored state.
func (s *cartService) Clear(ctx context.Context, sessionID string) (*cart.Cart, error) {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	return cart.New(sessionID), nil
}
