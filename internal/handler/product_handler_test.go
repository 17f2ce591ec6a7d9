package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"glamora/internal/catalog"
	"glamora/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Browse(ctx context.Context, f catalog.Filters) ([]model.Product, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: "p1", Name: "Radiance Serum", Price: 28.00, Category: "Skincare"},
		{ID: "p2", Name: "Velvet Lipstick", Price: 18.00, Category: "Makeup"},
	}

	tests := []struct {
		name           string
		queryParams    string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
		checkFilters   func(t *testing.T, f catalog.Filters)
	}{
		{
			name:           "Success with default filters",
			queryParams:    "",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
			checkFilters: func(t *testing.T, f catalog.Filters) {
				assert.Equal(t, catalog.DefaultFilters().PriceMax, f.PriceMax)
				assert.Empty(t, f.Categories)
			},
		},
		{
			name:           "Query parameters populate filters",
			queryParams:    "?search=serum&category=Skincare&minPrice=10&maxPrice=60&inStock=true&onSale=true&sortBy=price-low",
			mockReturn:     testProducts[:1],
			expectedStatus: http.StatusOK,
			expectService:  true,
			checkFilters: func(t *testing.T, f catalog.Filters) {
				assert.Equal(t, "serum", f.SearchQuery)
				assert.Equal(t, []string{"Skincare"}, f.Categories)
				assert.Equal(t, 10.0, f.PriceMin)
				assert.Equal(t, 60.0, f.PriceMax)
				assert.True(t, f.InStockOnly)
				assert.True(t, f.OnSaleOnly)
				assert.Equal(t, catalog.SortPriceLow, f.SortBy)
			},
		},
		{
			name:           "Category all is ignored",
			queryParams:    "?category=all",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
			checkFilters: func(t *testing.T, f catalog.Filters) {
				assert.Empty(t, f.Categories)
			},
		},
		{
			name:           "Invalid minPrice",
			queryParams:    "?minPrice=cheap",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Invalid maxPrice",
			queryParams:    "?maxPrice=expensive",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Service error",
			queryParams:    "",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			h := NewProductHandler(mockService, logger)

			if tt.expectService {
				call := mockService.On("Browse", mock.Anything, mock.AnythingOfType("catalog.Filters"))
				if tt.mockError != nil {
					call.Return(nil, tt.mockError)
				} else {
					call.Return(tt.mockReturn, nil)
				}
			}

			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			h.GetAll(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectService && tt.checkFilters != nil {
				f := mockService.Calls[0].Arguments.Get(1).(catalog.Filters)
				tt.checkFilters(t, f)
			}
			if !tt.expectService {
				mockService.AssertNotCalled(t, "Browse")
			}
		})
	}
}

func TestProductHandler_GetAll_EmptyResultIsArray(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	h := NewProductHandler(mockService, logger)

	mockService.On("Browse", mock.Anything, mock.AnythingOfType("catalog.Filters")).Return([]model.Product{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.GetAll(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		mockProduct    *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Found",
			path:           "/api/products/p1",
			mockProduct:    &model.Product{ID: "p1", Name: "Radiance Serum"},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			path:           "/api/products/p999",
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Service error",
			path:           "/api/products/p1",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			h := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, mock.AnythingOfType("string")).Return(tt.mockProduct, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			h.GetByID(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var p model.Product
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
				assert.Equal(t, tt.mockProduct.ID, p.ID)
			}
		})
	}
}
