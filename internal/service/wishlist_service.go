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

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "wishlist").Logger(),
	}
}

// build validates req and resolves the owner and every product it names.
func (s *wishlistService) build(ctx context.Context, id uuid.UUID, req *model.WishlistRequest) (*model.Wishlist, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid wishlist request")
		return nil, err
	}

	customerID, err := parseID("customer_id", req.CustomerID)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, 0, len(req.ProductIDs))
	fields := make(map[uuid.UUID]string, len(req.ProductIDs))
	for i, raw := range req.ProductIDs {
		field := fmt.Sprintf("product_ids[%d]", i)
		pid, err := parseID(field, raw)
		if err != nil {
			return nil, err
		}
		if _, dup := fields[pid]; dup {
			continue
		}
		fields[pid] = field
		productIDs = append(productIDs, pid)
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if customer == nil {
		return nil, model.ReferenceNotFound("customer", "customer_id", customerID)
	}

	if len(productIDs) > 0 {
		products, err := s.productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve products: %w", err)
		}
		found := make(map[uuid.UUID]bool, len(products))
		for _, p := range products {
			found[p.ID] = true
		}
		for _, pid := range productIDs {
			if !found[pid] {
				return nil, model.ReferenceNotFound("product", fields[pid], pid)
			}
		}
	}

	now := time.Now().UTC()
	return &model.Wishlist{
		ID:         id,
		CustomerID: customerID,
		ProductIDs: productIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (s *wishlistService) Create(ctx context.Context, req *model.WishlistRequest) (*model.Wishlist, error) {
	w, err := s.build(ctx, uuid.New(), req)
	if err != nil {
		return nil, err
	}
	if err := s.wishlistRepo.Create(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info().Str("wishlist_id", w.ID.String()).Int("products", len(w.ProductIDs)).Msg("wishlist created")
	return w, nil
}

func (s *wishlistService) GetByID(ctx context.Context, id uuid.UUID) (*model.Wishlist, error) {
	w, err := s.wishlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	if w == nil {
		return nil, model.EntityNotFound("wishlist", id)
	}
	return w, nil
}

func (s *wishlistService) List(ctx context.Context) ([]model.Wishlist, error) {
	wishlists, err := s.wishlistRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}
	return wishlists, nil
}

// Update replaces the owner and the full product set.
func (s *wishlistService) Update(ctx context.Context, id uuid.UUID, req *model.WishlistRequest) (*model.Wishlist, error) {
	w, err := s.build(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if err := s.wishlistRepo.Update(ctx, w); err != nil {
		return nil, notFound(err, "wishlist", id)
	}

	s.logger.Info().Str("wishlist_id", id.String()).Msg("wishlist updated")
	return s.GetByID(ctx, id)
}

func (s *wishlistService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.wishlistRepo.Delete(ctx, id); err != nil {
		return notFound(err, "wishlist", id)
	}

	s.logger.Info().Str("wishlist_id", id.String()).Msg("wishlist deleted")
	return nil
}

// AddProduct saves a product to the wishlist. Adding a saved product is a no-op.
func (s *wishlistService) AddProduct(ctx context.Context, wishlistID uuid.UUID, req *model.WishlistProductRequest) (*model.Wishlist, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	productID, err := parseID("product_id", req.ProductID)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, wishlistID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return nil, model.ReferenceNotFound("product", "product_id", productID)
	}

	if err := s.wishlistRepo.AddProduct(ctx, wishlistID, productID); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, wishlistID)
}

func (s *wishlistService) RemoveProduct(ctx context.Context, wishlistID, productID uuid.UUID) (*model.Wishlist, error) {
	if err := s.wishlistRepo.RemoveProduct(ctx, wishlistID, productID); err != nil {
		return nil, notFound(err, "wishlist product", productID)
	}
	return s.GetByID(ctx, wishlistID)
}
