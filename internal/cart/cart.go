// Package cart implements the session-scoped shopping cart aggregate and its
// persistence stores.
package cart

import (
	"time"

	"glamora/internal/model"
)

// Cart is a quantity-keyed collection of selected products for one session.
// Mutations keep the invariant that every stored quantity is a positive
// integer.
type Cart struct {
	SessionID string           `json:"sessionId"`
	Items     []model.CartItem `json:"items"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// New creates an empty cart for the given session.
func New(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []model.CartItem{},
		UpdatedAt: time.Now(),
	}
}

// AddItem adds a product projection to the cart. A repeat add for the same
// product increments its quantity by one instead of creating a second line.
// The item's price is whatever was captured by the caller at add time.
func (c *Cart) AddItem(item model.CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity++
			c.touch()
			return
		}
	}

	item.Quantity = 1
	c.Items = append(c.Items, item)
	c.touch()
}

// RemoveItem removes the line for the given product. Removing an absent
// product is a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// UpdateQuantity sets the line quantity exactly. A quantity of zero or less
// removes the line, so no non-positive quantity is ever stored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.touch()
			return
		}
	}
}

// Clear removes every line from the cart.
func (c *Cart) Clear() {
	c.Items = []model.CartItem{}
	c.touch()
}

// TotalPrice sums unit price times quantity over all lines, using the price
// captured when each item was added.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems sums quantities over all lines. This differs from the line
// count when any quantity exceeds one.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// IsInCart reports whether a line exists for the given product.
func (c *Cart) IsInCart(productID string) bool {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Snapshot returns a defensive copy of the cart lines for order assembly.
func (c *Cart) Snapshot() []model.CartItem {
	snapshot := make([]model.CartItem, len(c.Items))
	copy(snapshot, c.Items)
	return snapshot
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
