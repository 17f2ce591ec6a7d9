package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem saves a product for a user. A user can save a given product at
// most once.
type WishlistItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// WishlistRequest is the payload for adding a product to the wishlist.
type WishlistRequest struct {
	ProductID string `json:"productId"`
}

// MessageResponse is a plain informational response.
type MessageResponse struct {
	Message string `json:"message"`
}
