package repository

import (
	"context"

	"glamora/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves products with optional category narrowing, newest
	// first, including variants and reviews. A limit of zero means no
	// limit.
	GetAll(ctx context.Context, category string, limit int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID, including variants
	// and reviews. Returns nil when not found.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// ValidateProductsExist checks if all provided product IDs exist in the database.
	// Returns error if any product ID does not exist.
	ValidateProductsExist(ctx context.Context, ids []string) error

	// Upsert inserts or updates catalogue products from seed data.
	Upsert(ctx context.Context, products []model.Product) error

	// Count returns the number of products in the catalogue.
	Count(ctx context.Context) (int, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// NextOrderNumber reserves the next order sequence value within the
	// provided transaction.
	NextOrderNumber(ctx context.Context, tx pgx.Tx) (int64, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByUser retrieves a user's orders with their items, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.OrderResponse, error)

	// UpdateStatus persists a status/paymentStatus transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, paymentStatus model.PaymentStatus) error

	// TotalRevenue sums the total of paid orders.
	TotalRevenue(ctx context.Context) (float64, error)

	// Count returns the number of orders.
	Count(ctx context.Context) (int, error)

	// Recent returns summaries of the most recently placed orders.
	Recent(ctx context.Context, limit int) ([]model.RecentOrder, error)

	// TopProducts returns the best-selling products by units sold.
	TopProducts(ctx context.Context, limit int) ([]model.TopProduct, error)
}

// WishlistRepository defines the interface for wishlist data access operations.
type WishlistRepository interface {
	// ListByUser retrieves a user's wishlist entries, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error)

	// Exists reports whether the user has already saved the product.
	Exists(ctx context.Context, userID uuid.UUID, productID string) (bool, error)

	// Add inserts a wishlist entry.
	Add(ctx context.Context, item *model.WishlistItem) error

	// Remove deletes a wishlist entry. Removing an absent entry is not an
	// error.
	Remove(ctx context.Context, userID uuid.UUID, productID string) error
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email. Returns nil when not found.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// CountCustomers returns the number of users with at least one order.
	CountCustomers(ctx context.Context) (int, error)
}
