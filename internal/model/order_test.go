package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_CanTransition(t *testing.T) {
	tests := []struct {
		name          string
		status        OrderStatus
		paymentStatus PaymentStatus
		next          OrderStatus
		allowed       bool
	}{
		{"Pending to confirmed", OrderStatusPending, PaymentStatusPending, OrderStatusConfirmed, true},
		{"Confirmed to processing", OrderStatusConfirmed, PaymentStatusPaid, OrderStatusProcessing, true},
		{"Processing to shipped", OrderStatusProcessing, PaymentStatusPaid, OrderStatusShipped, true},
		{"Shipped to delivered", OrderStatusShipped, PaymentStatusPaid, OrderStatusDelivered, true},
		{"No skipping pending to processing", OrderStatusPending, PaymentStatusPending, OrderStatusProcessing, false},
		{"No skipping confirmed to shipped", OrderStatusConfirmed, PaymentStatusPaid, OrderStatusShipped, false},
		{"No going backwards", OrderStatusShipped, PaymentStatusPaid, OrderStatusProcessing, false},
		{"Cancel from pending", OrderStatusPending, PaymentStatusPending, OrderStatusCancelled, true},
		{"Cancel from shipped", OrderStatusShipped, PaymentStatusPaid, OrderStatusCancelled, true},
		{"Cancel from delivered rejected", OrderStatusDelivered, PaymentStatusPaid, OrderStatusCancelled, false},
		{"Cancel from cancelled rejected", OrderStatusCancelled, PaymentStatusPending, OrderStatusCancelled, false},
		{"Refund requires payment", OrderStatusDelivered, PaymentStatusPending, OrderStatusRefunded, false},
		{"Refund after payment", OrderStatusDelivered, PaymentStatusPaid, OrderStatusRefunded, true},
		{"Refund from refunded rejected", OrderStatusRefunded, PaymentStatusPaid, OrderStatusRefunded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{Status: tt.status, PaymentStatus: tt.paymentStatus}
			assert.Equal(t, tt.allowed, order.CanTransition(tt.next))
		})
	}
}

func TestShippingAddress_Validate(t *testing.T) {
	addr := ShippingAddress{
		FullName: "Jane Doe",
		Address:  "1 Main St",
		City:     "Springfield",
		State:    "CA",
		ZipCode:  "90001",
		Country:  "US",
	}
	require.NoError(t, addr.Validate())

	incomplete := addr
	incomplete.City = ""
	err := incomplete.Validate()
	require.Error(t, err)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, ErrCodeMissingField, domainErr.Code)
}

func TestProduct_ComparisonPrice(t *testing.T) {
	original := 30.0
	onSale := &Product{ID: "p1", Price: 24.0, OriginalPrice: &original}
	regular := &Product{ID: "p2", Price: 24.0}

	assert.Equal(t, 30.0, onSale.ComparisonPrice())
	assert.True(t, onSale.OnSale())
	assert.Equal(t, 24.0, regular.ComparisonPrice())
	assert.False(t, regular.OnSale())
}

func TestProduct_Validate(t *testing.T) {
	lower := 10.0
	tests := []struct {
		name        string
		product     Product
		expectError bool
	}{
		{"Valid product", Product{ID: "p1", Name: "Serum", Price: 20, Rating: 4.5}, false},
		{"Missing id", Product{Name: "Serum", Price: 20}, true},
		{"Missing name", Product{ID: "p1", Price: 20}, true},
		{"Negative price", Product{ID: "p1", Name: "Serum", Price: -1}, true},
		{"Original price below price", Product{ID: "p1", Name: "Serum", Price: 20, OriginalPrice: &lower}, true},
		{"Rating out of range", Product{ID: "p1", Name: "Serum", Price: 20, Rating: 5.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
