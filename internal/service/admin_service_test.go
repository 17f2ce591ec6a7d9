package service

import (
	"context"
	"errors"
	"testing"

	"glamora/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Stats(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	recent := []model.RecentOrder{
		{OrderNumber: "ORD-0042", Customer: "Ava Laurent", Amount: 64.80, Status: model.OrderStatusShipped},
	}
	top := []model.TopProduct{
		{ProductID: "p1", ProductName: "Radiance Serum", UnitsSold: 12},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockUserRepo := new(MockUserRepository)

	service := NewAdminService(mockOrderRepo, mockProductRepo, mockUserRepo, logger)

	mockOrderRepo.On("TotalRevenue", ctx).Return(1234.56, nil)
	mockProductRepo.On("Count", ctx).Return(24, nil)
	mockUserRepo.On("CountCustomers", ctx).Return(9, nil)
	mockOrderRepo.On("Count", ctx).Return(17, nil)
	mockOrderRepo.On("Recent", ctx, recentOrdersLimit).Return(recent, nil)
	mockOrderRepo.On("TopProducts", ctx, topProductsLimit).Return(top, nil)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1234.56, stats.TotalRevenue)
	assert.Equal(t, 24, stats.ProductCount)
	assert.Equal(t, 9, stats.CustomerCount)
	assert.Equal(t, 17, stats.OrderCount)
	assert.Equal(t, recent, stats.RecentOrders)
	assert.Equal(t, top, stats.TopProducts)

	mockOrderRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestAdminService_Stats_EmptyStore(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockUserRepo := new(MockUserRepository)

	service := NewAdminService(mockOrderRepo, mockProductRepo, mockUserRepo, logger)

	mockOrderRepo.On("TotalRevenue", ctx).Return(0.0, nil)
	mockProductRepo.On("Count", ctx).Return(0, nil)
	mockUserRepo.On("CountCustomers", ctx).Return(0, nil)
	mockOrderRepo.On("Count", ctx).Return(0, nil)
	mockOrderRepo.On("Recent", ctx, recentOrdersLimit).Return(nil, nil)
	mockOrderRepo.On("TopProducts", ctx, topProductsLimit).Return(nil, nil)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	// Empty slices, not nulls, so the JSON payload is stable.
	assert.NotNil(t, stats.RecentOrders)
	assert.NotNil(t, stats.TopProducts)
	assert.Empty(t, stats.RecentOrders)
	assert.Empty(t, stats.TopProducts)
}

func TestAdminService_Stats_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockUserRepo := new(MockUserRepository)

	service := NewAdminService(mockOrderRepo, mockProductRepo, mockUserRepo, logger)

	mockOrderRepo.On("TotalRevenue", ctx).Return(0.0, errors.New("database error"))

	stats, err := service.Stats(ctx)

	require.Error(t, err)
	assert.Nil(t, stats)
}
