package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	customerRepo repository.CustomerRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder creates an order from the cart's current lines. The total is
// recomputed from product prices; a client total that differs is rejected.
// Lines are copied with their unit price and the cart is emptied, all in one
// transaction.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.OrderRequest) (order *model.Order, err error) {
	// Validate request
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid order request")
		return nil, err
	}

	customerID, err := parseID("customer_id", req.CustomerID)
	if err != nil {
		return nil, err
	}
	cartID, err := parseID("cart_id", req.CartID)
	if err != nil {
		return nil, err
	}
	if req.TotalAmount != nil {
		if err := checkMoney("total_amount", *req.TotalAmount); err != nil {
			return nil, err
		}
	}

	status := model.DefaultOrderStatus
	if req.Status != nil {
		status = *req.Status
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if customer == nil {
		s.logger.Warn().Str("customer_id", customerID.String()).Msg("order for unknown customer")
		return nil, model.ReferenceNotFound("customer", "customer_id", customerID)
	}

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

	cart, err := s.cartRepo.LockForCheckout(ctx, tx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart == nil {
		return nil, model.ReferenceNotFound("cart", "cart_id", cartID)
	}
	if cart.CustomerID != customerID {
		s.logger.Warn().
			Str("cart_id", cartID.String()).
			Str("customer_id", customerID.String()).
			Msg("cart belongs to another customer")
		return nil, model.ErrCartOwnership
	}
	if len(cart.Items) == 0 {
		return nil, model.ErrEmptyCart
	}
	if req.TotalAmount != nil && !req.TotalAmount.Equal(cart.TotalAmount) {
		s.logger.Warn().
			Str("cart_id", cartID.String()).
			Str("supplied", req.TotalAmount.String()).
			Str("computed", cart.TotalAmount.String()).
			Msg("order total mismatch")
		return nil, model.NewValidationError(model.ErrCodeTotalMismatch, "total_amount does not match cart total",
			model.FieldError{Field: "total_amount", Reason: "expected " + cart.TotalAmount.StringFixed(2)})
	}
	if err = checkMoney("total_amount", cart.TotalAmount); err != nil {
		s.logger.Warn().
			Str("cart_id", cartID.String()).
			Str("computed", cart.TotalAmount.String()).
			Msg("cart total out of range")
		return nil, err
	}

	now := time.Now().UTC()
	order = &model.Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		TotalAmount: cart.TotalAmount,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Copy cart lines, keeping their order
	orderItems := make([]model.OrderItem, len(cart.Items))
	for i, item := range cart.Items {
		orderItems[i] = model.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.LineTotal,
			CreatedAt:  now.Add(time.Duration(i) * time.Microsecond),
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

	if err = s.cartRepo.ClearItems(ctx, tx, cartID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("cart_id", cartID.String()).
		Int("item_count", len(orderItems)).
		Str("total", order.TotalAmount.String()).
		Msg("order placed successfully")

	order.Items = orderItems
	return order, nil
}

// GetByID retrieves an order by its ID with all items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.EntityNotFound("order", id)
	}

	return order, nil
}

func (s *orderService) List(ctx context.Context, customerID *uuid.UUID) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, req *model.OrderUpdateRequest) (*model.Order, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, req.Status, time.Now().UTC())
	if err != nil {
		return nil, notFound(err, "order", id)
	}

	s.logger.Info().Str("order_id", id.String()).Str("status", req.Status).Msg("order status updated")
	return order, nil
}

// Delete removes the order with its lines, payments and shipments.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return notFound(err, "order", id)
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")
	return nil
}
