package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"glamora/internal/config"
	"glamora/internal/model"
	"glamora/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	checkout    config.CheckoutConfig
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	checkout config.CheckoutConfig,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		checkout:    checkout,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Create places a new order for the user. Totals are always recomputed from
// the submitted unit prices; shipping is waived at or above the free-shipping
// threshold.
func (s *orderService) Create(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (*model.OrderResponse, error) {
	// Validate request
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	// Extract product IDs and validate they exist
	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}

	if err := s.productRepo.ValidateProductsExist(ctx, productIDs); err != nil {
		s.logger.Warn().
			Int("product_count", len(productIDs)).
			Err(err).
			Msg("product validation failed")
		return nil, err
	}

	subtotal := 0.0
	for _, item := range req.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	subtotal = round2(subtotal)

	shipping := s.checkout.ShippingFee
	if subtotal >= s.checkout.FreeShippingMin {
		shipping = 0
	}
	tax := round2(subtotal * s.checkout.TaxRate)
	total := round2(subtotal + shipping + tax)

	// Start transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	seq, err := s.orderRepo.NextOrderNumber(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New(),
		OrderNumber:     fmt.Sprintf("ORD-%04d", seq),
		UserID:          userID,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           total,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Create order item snapshots
	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = model.OrderItem{
			ID:           uuid.New(),
			OrderID:      order.ID,
			ProductID:    item.ProductID,
			ProductName:  item.Name,
			ProductImage: item.Image,
			ProductPrice: item.Price,
			Quantity:     item.Quantity,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Int("item_count", len(orderItems)).
		Float64("total", total).
		Msg("order created successfully")

	return &model.OrderResponse{
		Order:      *order,
		OrderItems: orderItems,
	}, nil
}

// GetByID retrieves an order visible to the given user. Admins see all
// orders. Returns nil when not found; another user's order is reported as not
// found rather than forbidden, so order IDs cannot be probed.
func (s *orderService) GetByID(ctx context.Context, id, userID uuid.UUID, isAdmin bool) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, nil
	}

	if !isAdmin && order.UserID != userID {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("user_id", userID.String()).
			Msg("order access denied")
		return nil, nil
	}

	return &model.OrderResponse{
		Order:      *order,
		OrderItems: items,
	}, nil
}

// ListByUser retrieves the user's orders, newest first.
func (s *orderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.OrderResponse, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus applies a fulfilment status transition. Payment is captured
// when the order is confirmed and released when it is refunded.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.OrderResponse, error) {
	if !status.Valid() {
		return nil, model.NewDomainError(model.ErrCodeInvalidTransition, "unknown order status: "+string(status))
	}

	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !order.CanTransition(status) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Str("to", string(status)).
			Msg("invalid status transition")
		return nil, model.ErrInvalidTransition
	}

	paymentStatus := order.PaymentStatus
	switch status {
	case model.OrderStatusConfirmed:
		paymentStatus = model.PaymentStatusPaid
	case model.OrderStatusRefunded:
		paymentStatus = model.PaymentStatusRefunded
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status, paymentStatus); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("from", string(order.Status)).
		Str("to", string(status)).
		Msg("order status updated")

	order.Status = status
	order.PaymentStatus = paymentStatus
	order.UpdatedAt = time.Now()

	return &model.OrderResponse{
		Order:      *order,
		OrderItems: items,
	}, nil
}

// validateOrderRequest validates the order request.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "order request is required")
	}

	if len(req.Items) == 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "order must contain at least one item")
	}

	// Validate each item
	for i, item := range req.Items {
		if item.ProductID == "" {
			return model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("item %d: product ID is required", i))
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}

		if item.Price < 0 {
			return model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("item %d: price must not be negative", i))
		}
	}

	if err := req.ShippingAddress.Validate(); err != nil {
		return err
	}

	if req.PaymentMethod == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "payment method is required")
	}

	return nil
}
