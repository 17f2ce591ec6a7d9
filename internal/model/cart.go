package model

// CartItem is a projection of a product held in a cart. Price is captured
// when the item is first added and is not re-fetched afterwards.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
}

// CartItemRequest is the payload for adding a product to the cart.
type CartItemRequest struct {
	ProductID string `json:"productId"`
}

// CartQuantityRequest is the payload for setting a cart line quantity.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}
