package service

import (
	"context"
	"fmt"

	"glamora/internal/catalog"
	"glamora/internal/model"
	"glamora/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Browse retrieves the products matching the given filters, in the requested
// order. A single-category filter is pushed down to the query; the remaining
// predicates and the ordering are applied by the catalogue engine, which
// matches search text against category names as well.
func (s *productService) Browse(ctx context.Context, f catalog.Filters) ([]model.Product, error) {
	category := ""
	if len(f.Categories) == 1 {
		category = f.Categories[0]
	}

	products, err := s.productRepo.GetAll(ctx, category, 0)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products")
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	matched := catalog.Filter(products, f)

	s.logger.Debug().
		Int("loaded", len(products)).
		Int("matched", len(matched)).
		Str("sort_by", f.SortBy).
		Msg("catalogue browsed")

	return matched, nil
}

// GetByID retrieves a single product by ID. Returns nil when not found.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// GetByIDs retrieves multiple products by their IDs.
func (s *productService) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}
