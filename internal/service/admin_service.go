package service

import (
	"context"
	"fmt"

	"glamora/internal/model"
	"glamora/internal/repository"

	"github.com/rs/zerolog"
)

// How many rows the dashboard summary lists.
const (
	recentOrdersLimit = 5
	topProductsLimit  = 5
)

// adminService implements AdminService.
type adminService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("service", "admin").Logger(),
	}
}

// Stats assembles the dashboard summary. Revenue counts paid orders only.
func (s *adminService) Stats(ctx context.Context) (*model.AdminStats, error) {
	revenue, err := s.orderRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble stats: %w", err)
	}

	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble stats: %w", err)
	}

	customerCount, err := s.userRepo.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble stats: %w", err)
	}

	orderCount, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble stats: %w", err)
	}

	recent, err := s.orderRepo.Recent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble stats: %w", err)
	}

	top, err := s.orderRepo.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble stats: %w", err)
	}

	if recent == nil {
		recent = []model.RecentOrder{}
	}
	if top == nil {
		top = []model.TopProduct{}
	}

	return &model.AdminStats{
		TotalRevenue:  revenue,
		ProductCount:  productCount,
		CustomerCount: customerCount,
		OrderCount:    orderCount,
		RecentOrders:  recent,
		TopProducts:   top,
	}, nil
}
