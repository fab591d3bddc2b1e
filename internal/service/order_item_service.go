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

type orderItemService struct {
	itemRepo    repository.OrderItemRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderItemService creates a new order item service.
func NewOrderItemService(
	itemRepo repository.OrderItemRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderItemService {
	return &orderItemService{
		itemRepo:    itemRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order_item").Logger(),
	}
}

// Create adds a line to an existing order. Both references must exist; the
// unit price defaults to the product's current price.
func (s *orderItemService) Create(ctx context.Context, req *model.OrderItemRequest) (*model.OrderItem, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid order item request")
		return nil, err
	}

	orderID, err := parseID("order_id", req.OrderID)
	if err != nil {
		return nil, err
	}
	productID, err := parseID("product_id", req.ProductID)
	if err != nil {
		return nil, err
	}
	if req.UnitPrice != nil {
		if err := checkMoney("unit_price", *req.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := orderExists(ctx, s.orderRepo, orderID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return nil, model.ReferenceNotFound("product", "product_id", productID)
	}

	unitPrice := product.Price
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	item := &model.OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  req.Quantity,
		UnitPrice: unitPrice,
		CreatedAt: time.Now().UTC(),
	}
	item.TotalPrice = item.LineTotal()
	if err := checkMoney("total_price", item.TotalPrice); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("item_id", item.ID.String()).
		Msg("order item created")
	return item, nil
}

func (s *orderItemService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order item: %w", err)
	}
	if item == nil {
		return nil, model.EntityNotFound("order item", id)
	}
	return item, nil
}

func (s *orderItemService) List(ctx context.Context, orderID *uuid.UUID) ([]model.OrderItem, error) {
	items, err := s.itemRepo.List(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return items, nil
}

// Update changes a line's quantity. The order's total_amount is the amount
// settled at checkout and is not re-derived.
func (s *orderItemService) Update(ctx context.Context, id uuid.UUID, req *model.OrderItemUpdateRequest) (*model.OrderItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.UpdateQuantity(ctx, id, req.Quantity)
	if err != nil {
		return nil, notFound(err, "order item", id)
	}
	return item, nil
}

func (s *orderItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return notFound(err, "order item", id)
	}
	return nil
}
