package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether no further fulfilment transitions are allowed.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// nextStatus is the single-step fulfilment progression. Skipping steps is not
// allowed.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:    OrderStatusConfirmed,
	OrderStatusConfirmed:  OrderStatusProcessing,
	OrderStatusProcessing: OrderStatusShipped,
	OrderStatusShipped:    OrderStatusDelivered,
}

// ShippingAddress is the address snapshot stored with an order.
type ShippingAddress struct {
	FullName string `json:"fullName" db:"shipping_full_name"`
	Address  string `json:"address" db:"shipping_address"`
	City     string `json:"city" db:"shipping_city"`
	State    string `json:"state" db:"shipping_state"`
	ZipCode  string `json:"zipCode" db:"shipping_zip_code"`
	Country  string `json:"country" db:"shipping_country"`
}

// Validate checks that every address field is present.
func (a *ShippingAddress) Validate() error {
	fields := map[string]string{
		"fullName": a.FullName,
		"address":  a.Address,
		"city":     a.City,
		"state":    a.State,
		"zipCode":  a.ZipCode,
		"country":  a.Country,
	}
	for name, value := range fields {
		if value == "" {
			return NewDomainError(ErrCodeMissingField, "shipping address field "+name+" is required")
		}
	}
	return nil
}

// Order represents a customer order. Item data and the shipping address are
// snapshots taken at creation time; only status and paymentStatus change
// afterwards.
type Order struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	OrderNumber     string          `json:"orderNumber" db:"order_number"`
	UserID          uuid.UUID       `json:"userId" db:"user_id"`
	Status          OrderStatus     `json:"status" db:"status"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus" db:"payment_status"`
	PaymentMethod   string          `json:"paymentMethod" db:"payment_method"`
	Subtotal        float64         `json:"subtotal" db:"subtotal"`
	Shipping        float64         `json:"shipping" db:"shipping"`
	Tax             float64         `json:"tax" db:"tax"`
	Total           float64         `json:"total" db:"total"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// CanTransition reports whether the order may move to the given status.
// Cancellation is allowed from any non-terminal state; a refund requires the
// order to have been paid. Everything else follows the single-step
// progression pending -> confirmed -> processing -> shipped -> delivered.
func (o *Order) CanTransition(next OrderStatus) bool {
	switch next {
	case OrderStatusCancelled:
		return !o.Status.Terminal()
	case OrderStatusRefunded:
		return o.PaymentStatus == PaymentStatusPaid && o.Status != OrderStatusRefunded
	default:
		return nextStatus[o.Status] == next
	}
}

// OrderItem is a line item snapshot. It deliberately copies product name,
// image and unit price so later catalogue edits cannot alter historical
// orders.
type OrderItem struct {
	ID           uuid.UUID `json:"-" db:"id"`
	OrderID      uuid.UUID `json:"-" db:"order_id"`
	ProductID    string    `json:"productId" db:"product_id"`
	ProductName  string    `json:"productName" db:"product_name"`
	ProductImage string    `json:"productImage" db:"product_image"`
	ProductPrice float64   `json:"productPrice" db:"product_price"`
	Quantity     int       `json:"quantity" db:"quantity"`
}

// OrderItemRequest is a single cart line submitted at checkout. Price is the
// unit price captured when the item was added to the cart.
type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderRequest is the payload for creating an order. Totals are always
// recomputed server-side.
type OrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress ShippingAddress    `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// OrderResponse is an order with its line items, as returned by the API.
type OrderResponse struct {
	Order
	OrderItems []OrderItem `json:"orderItems"`
}

// OrderStatusRequest is the payload for an order status transition.
type OrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
