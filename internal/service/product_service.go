package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "product").Logger(),
	}
}

// build validates req, resolves its category and returns the product to persist.
func (s *productService) build(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid product request")
		return nil, err
	}
	if err := checkMoney("price", *req.Price); err != nil {
		return nil, err
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil && *req.CategoryID != "" {
		cid, err := parseID("category_id", *req.CategoryID)
		if err != nil {
			return nil, err
		}
		category, err := s.categoryRepo.GetByID(ctx, cid)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		if category == nil {
			return nil, model.ReferenceNotFound("category", "category_id", cid)
		}
		categoryID = &cid
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now().UTC()
	return &model.Product{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       *req.Price,
		Stock:       stock,
		CategoryID:  categoryID,
		SKU:         strings.TrimSpace(req.SKU),
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	p, err := s.build(ctx, uuid.New(), req)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", p.ID.String()).Str("sku", p.SKU).Msg("product created")
	return p, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return nil, model.EntityNotFound("product", id)
	}

	return product, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	p, err := s.build(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(ctx, p); err != nil {
		return nil, notFound(err, "product", id)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")
	return p, nil
}

// Delete removes the product. Products that appear on orders cannot be deleted.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return notFound(err, "product", id)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")
	return nil
}
