package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"glamora/internal/cart"
	"glamora/internal/config"
	"glamora/internal/handler"
	"glamora/internal/model"
	"glamora/internal/repository"
	"glamora/internal/router"
	"glamora/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	// Initialize repositories
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	wishlistRepo := repository.NewWishlistRepository(testDB.Pool, logger)
	userRepo := repository.NewUserRepository(testDB.Pool, logger)

	authConfig := config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   60,
		AdminEmail: "admin@glamora.com",
	}
	checkoutConfig := config.CheckoutConfig{
		TaxRate:         0.08,
		ShippingFee:     5.99,
		FreeShippingMin: 50.00,
	}

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cart.NewMemoryStore(), productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, checkoutConfig, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo, logger)
	authService := service.NewAuthService(userRepo, authConfig, logger)
	adminService := service.NewAdminService(orderRepo, productRepo, userRepo, logger)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	wishlistHandler := handler.NewWishlistHandler(wishlistService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	// Create router
	return router.New(
		productHandler,
		cartHandler,
		orderHandler,
		wishlistHandler,
		authHandler,
		adminHandler,
		authService,
		logger,
	)
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, server http.Handler, name, email string) string {
	t.Helper()

	body, err := json.Marshal(model.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "hunter22",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp model.AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func placeOrder(t *testing.T, server http.Handler, token string) model.OrderResponse {
	t.Helper()

	orderReq := &model.OrderRequest{
		Items: []model.OrderItemRequest{
			{ProductID: "P001", Name: "Radiance Serum", Image: "/images/p001.jpg", Price: 28.00, Quantity: 2},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "card",
	}

	body, err := json.Marshal(orderReq)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp model.OrderResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	return resp
}

func TestProductAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("GET /api/products returns all products without a token", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		err := json.NewDecoder(w.Body).Decode(&products)
		require.NoError(t, err)
		assert.Len(t, products, 5)
	})

	t.Run("GET /api/products filters by category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products?category=Skincare", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		err := json.NewDecoder(w.Body).Decode(&products)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("GET /api/products/{id} returns specific product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products/P001", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var product model.Product
		err := json.NewDecoder(w.Body).Decode(&product)
		require.NoError(t, err)
		assert.Equal(t, "P001", product.ID)
		assert.Equal(t, "Radiance Serum", product.Name)
	})

	t.Run("GET /api/products/{id} returns 404 for non-existent product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/products/P999", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET /health returns 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("register, login and fetch profile", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		registerUser(t, server, "Ava Laurent", "ava@example.com")

		body, err := json.Marshal(model.LoginRequest{Email: "ava@example.com", Password: "hunter22"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var login model.AuthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&login))
		require.NotEmpty(t, login.Token)

		req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var me model.User
		require.NoError(t, json.NewDecoder(w.Body).Decode(&me))
		assert.Equal(t, "ava@example.com", me.Email)
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		registerUser(t, server, "Ava Laurent", "ava@example.com")

		body, err := json.Marshal(model.RegisterRequest{Name: "Impostor", Email: "AVA@example.com", Password: "other"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		registerUser(t, server, "Ava Laurent", "ava@example.com")

		body, err := json.Marshal(model.LoginRequest{Email: "ava@example.com", Password: "wrong"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("protected route without token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCartAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("guest cart lifecycle", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		sessionID := "guest-session-1"

		// Add an item twice to bump the quantity.
		for i := 0; i < 2; i++ {
			body := bytes.NewBufferString(`{"productId":"P001"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/cart/items", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Session-Id", sessionID)
			w := httptest.NewRecorder()

			server.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("X-Session-Id", sessionID)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var c cart.Cart
		require.NoError(t, json.NewDecoder(w.Body).Decode(&c))
		require.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
		assert.Equal(t, 28.00, c.Items[0].Price)

		// Set the quantity explicitly.
		req = httptest.NewRequest(http.MethodPut, "/api/cart/items/P001", bytes.NewBufferString(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-Id", sessionID)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, json.NewDecoder(w.Body).Decode(&c))
		require.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Quantity)

		// Clear leaves an empty cart.
		req = httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
		req.Header.Set("X-Session-Id", sessionID)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, json.NewDecoder(w.Body).Decode(&c))
		assert.Empty(t, c.Items)
	})

	t.Run("adding unknown product returns 404", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBufferString(`{"productId":"P999"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-Id", "guest-session-2")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing session header returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("POST /api/orders creates order with computed totals", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		token := registerUser(t, server, "Ava Laurent", "ava@example.com")
		resp := placeOrder(t, server, token)

		assert.Contains(t, resp.OrderNumber, "ORD-")
		assert.Equal(t, model.OrderStatusPending, resp.Status)
		assert.Equal(t, model.PaymentStatusPending, resp.PaymentStatus)
		assert.Equal(t, 56.00, resp.Subtotal)
		// Subtotal clears the free shipping threshold.
		assert.Equal(t, 0.00, resp.Shipping)
		assert.Equal(t, 4.48, resp.Tax)
		assert.Equal(t, 60.48, resp.Total)
		require.Len(t, resp.OrderItems, 1)
	})

	t.Run("GET /api/orders lists own orders only", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		avaToken := registerUser(t, server, "Ava Laurent", "ava@example.com")
		miaToken := registerUser(t, server, "Mia Chen", "mia@example.com")

		placeOrder(t, server, avaToken)
		placeOrder(t, server, avaToken)
		placeOrder(t, server, miaToken)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+avaToken)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var orders []model.OrderResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
		assert.Len(t, orders, 2)
	})

	t.Run("GET /api/orders/{id} hides other users' orders", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		avaToken := registerUser(t, server, "Ava Laurent", "ava@example.com")
		miaToken := registerUser(t, server, "Mia Chen", "mia@example.com")

		order := placeOrder(t, server, avaToken)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+order.ID.String(), nil)
		req.Header.Set("Authorization", "Bearer "+miaToken)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("admin advances status and captures payment", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		avaToken := registerUser(t, server, "Ava Laurent", "ava@example.com")
		adminToken := registerUser(t, server, "Store Admin", "admin@glamora.com")

		order := placeOrder(t, server, avaToken)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+order.ID.String()+"/status",
			bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var updated model.OrderResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
		assert.Equal(t, model.OrderStatusConfirmed, updated.Status)
		assert.Equal(t, model.PaymentStatusPaid, updated.PaymentStatus)

		// Skipping a fulfilment step conflicts.
		req = httptest.NewRequest(http.MethodPatch, "/api/orders/"+order.ID.String()+"/status",
			bytes.NewBufferString(`{"status":"delivered"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("non-admin cannot change status", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		avaToken := registerUser(t, server, "Ava Laurent", "ava@example.com")
		order := placeOrder(t, server, avaToken)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+order.ID.String()+"/status",
			bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+avaToken)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestWishlistAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("save, list and remove", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		token := registerUser(t, server, "Ava Laurent", "ava@example.com")

		req := httptest.NewRequest(http.MethodPost, "/api/wishlist", bytes.NewBufferString(`{"productId":"P002"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		// Saving the same product again is acknowledged, not duplicated.
		req = httptest.NewRequest(http.MethodPost, "/api/wishlist", bytes.NewBufferString(`{"productId":"P002"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "already in wishlist")

		req = httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var items []model.WishlistItem
		require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
		require.Len(t, items, 1)
		assert.Equal(t, "P002", items[0].ProductID)
		require.NotNil(t, items[0].Product)
		assert.Equal(t, "Velvet Matte Lipstick", items[0].Product.Name)

		req = httptest.NewRequest(http.MethodDelete, "/api/wishlist?productId=P002", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
		assert.Empty(t, items)
	})
}

func TestAdminAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("admin sees store stats", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		avaToken := registerUser(t, server, "Ava Laurent", "ava@example.com")
		adminToken := registerUser(t, server, "Store Admin", "admin@glamora.com")

		order := placeOrder(t, server, avaToken)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+order.ID.String()+"/status",
			bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w = httptest.NewRecorder()

		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var stats model.AdminStats
		require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
		assert.Equal(t, 60.48, stats.TotalRevenue)
		assert.Equal(t, 5, stats.ProductCount)
		assert.Equal(t, 1, stats.CustomerCount)
		assert.Equal(t, 1, stats.OrderCount)
		require.Len(t, stats.RecentOrders, 1)
		assert.Equal(t, "Ava Laurent", stats.RecentOrders[0].Customer)
		require.Len(t, stats.TopProducts, 1)
		assert.Equal(t, "P001", stats.TopProducts[0].ProductID)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		token := registerUser(t, server, "Ava Laurent", "ava@example.com")

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCORS_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("OPTIONS request returns CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
	})
}
