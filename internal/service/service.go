package service

import (
	"context"

	"glamora/internal/cart"
	"glamora/internal/catalog"
	"glamora/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for browsing the catalogue.
type ProductService interface {
	// Browse retrieves the products matching the given filters, in the
	// requested order.
	Browse(ctx context.Context, f catalog.Filters) ([]model.Product, error)

	// GetByID retrieves a single product by ID. Returns nil when not found.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}

// CartService defines operations on a session's shopping cart. Every mutation
// returns the resulting cart state.
type CartService interface {
	// Get retrieves the cart for a session, empty when none exists.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)

	// AddItem adds one unit of a product, capturing its current price.
	AddItem(ctx context.Context, sessionID, productID string) (*cart.Cart, error)

	// UpdateQuantity sets the quantity of a cart line. Zero or negative
	// removes the line.
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*cart.Cart, error)

	// RemoveItem removes a cart line regardless of quantity.
	RemoveItem(ctx context.Context, sessionID, productID string) (*cart.Cart, error)

	// Clear empties the cart.
	Clear(ctx context.Context, sessionID string) (*cart.Cart, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create places a new order for the user, recomputing all totals
	// server-side.
	Create(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (*model.OrderResponse, error)

	// GetByID retrieves an order visible to the given user. Admins see all
	// orders. Returns nil when not found or not owned by the user.
	GetByID(ctx context.Context, id, userID uuid.UUID, isAdmin bool) (*model.OrderResponse, error)

	// ListByUser retrieves the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.OrderResponse, error)

	// UpdateStatus applies a fulfilment status transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.OrderResponse, error)
}

// WishlistService defines operations for the per-user wishlist.
type WishlistService interface {
	// List retrieves the user's saved products, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error)

	// Add saves a product for the user. Reports whether a new entry was
	// created; saving an already-saved product is a no-op.
	Add(ctx context.Context, userID uuid.UUID, productID string) (bool, error)

	// Remove deletes a saved product. Removing an absent one is a no-op.
	Remove(ctx context.Context, userID uuid.UUID, productID string) error
}

// AuthService defines account and session operations.
type AuthService interface {
	// Register creates an account and returns a signed session token.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// VerifyToken validates a session token and returns the user ID it was
	// issued for.
	VerifyToken(token string) (uuid.UUID, error)

	// GetUser retrieves the account behind a session. Returns nil when the
	// account no longer exists.
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)

	// IsAdmin reports whether the user is the configured administrator.
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AdminService defines back-office operations.
type AdminService interface {
	// Stats assembles the dashboard summary.
	Stats(ctx context.Context) (*model.AdminStats, error)
}
