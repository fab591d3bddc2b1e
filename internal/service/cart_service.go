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

type cartService struct {
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:     cartRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) resolveCustomer(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := parseID("customer_id", raw)
	if err != nil {
		return uuid.Nil, err
	}
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if c == nil {
		return uuid.Nil, model.ReferenceNotFound("customer", "customer_id", id)
	}
	return id, nil
}

func (s *cartService) resolveProduct(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := parseID("product_id", raw)
	if err != nil {
		return uuid.Nil, err
	}
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if p == nil {
		return uuid.Nil, model.ReferenceNotFound("product", "product_id", id)
	}
	return id, nil
}

func (s *cartService) Create(ctx context.Context, req *model.CartRequest) (*model.Cart, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid cart request")
		return nil, err
	}
	if req.Quantity != nil && req.ProductID == nil {
		return nil, model.NewValidationError(model.ErrCodeValidationFailed, "request validation failed",
			model.FieldError{Field: "product_id", Reason: "is required when quantity is set"})
	}

	customerID, err := s.resolveCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cart := &model.Cart{ID: uuid.New(), CustomerID: customerID, CreatedAt: now, UpdatedAt: now}

	var item *model.CartItem
	if req.ProductID != nil {
		productID, err := s.resolveProduct(ctx, *req.ProductID)
		if err != nil {
			return nil, err
		}
		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		item = &model.CartItem{ID: uuid.New(), CartID: cart.ID, ProductID: productID, Quantity: quantity, CreatedAt: now}
	}

	if err := s.cartRepo.Create(ctx, cart, item); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("cart_id", cart.ID.String()).
		Str("customer_id", customerID.String()).
		Bool("with_item", item != nil).
		Msg("cart created")
	return s.GetByID(ctx, cart.ID)
}

func (s *cartService) GetByID(ctx context.Context, id uuid.UUID) (*model.Cart, error) {
	cart, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return nil, model.EntityNotFound("cart", id)
	}
	return cart, nil
}

func (s *cartService) List(ctx context.Context) ([]model.Cart, error) {
	carts, err := s.cartRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list carts: %w", err)
	}
	return carts, nil
}

func (s *cartService) Update(ctx context.Context, id uuid.UUID, req *model.CartUpdateRequest) (*model.Cart, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Str("cart_id", id.String()).Msg("invalid cart request")
		return nil, err
	}

	customerID, err := s.resolveCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	cart := &model.Cart{ID: id, CustomerID: customerID, UpdatedAt: time.Now().UTC()}
	if err := s.cartRepo.Update(ctx, cart); err != nil {
		return nil, notFound(err, "cart", id)
	}

	s.logger.Info().Str("cart_id", id.String()).Str("customer_id", customerID.String()).Msg("cart reassigned")
	return s.GetByID(ctx, id)
}

func (s *cartService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.cartRepo.Delete(ctx, id); err != nil {
		return notFound(err, "cart", id)
	}

	s.logger.Info().Str("cart_id", id.String()).Msg("cart deleted")
	return nil
}

// AddItem puts a product in the cart, adding to the quantity of an existing line.
func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, req *model.CartItemRequest) (*model.Cart, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Str("cart_id", cartID.String()).Msg("invalid cart item request")
		return nil, err
	}

	productID, err := parseID("product_id", req.ProductID)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, cartID); err != nil {
		return nil, err
	}
	if _, err := s.resolveProduct(ctx, req.ProductID); err != nil {
		return nil, err
	}

	item := &model.CartItem{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  req.Quantity,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.cartRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("cart_id", cartID.String()).
		Str("product_id", productID.String()).
		Int("quantity", item.Quantity).
		Msg("cart item added")
	return s.GetByID(ctx, cartID)
}

func (s *cartService) UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, req *model.CartItemUpdateRequest) (*model.Cart, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Str("cart_id", cartID.String()).Msg("invalid cart item request")
		return nil, err
	}

	if err := s.cartRepo.UpdateItem(ctx, cartID, itemID, req.Quantity); err != nil {
		return nil, notFound(err, "cart item", itemID)
	}
	return s.GetByID(ctx, cartID)
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) (*model.Cart, error) {
	if err := s.cartRepo.RemoveItem(ctx, cartID, itemID); err != nil {
		return nil, notFound(err, "cart item", itemID)
	}

	s.logger.Info().Str("cart_id", cartID.String()).Str("item_id", itemID.String()).Msg("cart item removed")
	return s.GetByID(ctx, cartID)
}
