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

type categoryService struct {
	repo   repository.CategoryRepository
	logger zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		logger: logger.With().Str("service", "category").Logger(),
	}
}

// build validates req and derives the slug from the name when it is omitted.
func (s *categoryService) build(id uuid.UUID, req *model.CategoryRequest) (*model.Category, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid category request")
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Name)
	}
	if slug == "" || len(slug) > 60 {
		return nil, model.NewValidationError(model.ErrCodeValidationFailed, "invalid slug",
			model.FieldError{Field: "slug", Reason: "cannot be derived from name; provide one explicitly"})
	}

	now := time.Now().UTC()
	return &model.Category{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *categoryService) Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	c, err := s.build(uuid.New(), req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", c.ID.String()).Str("slug", c.Slug).Msg("category created")
	return c, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if c == nil {
		return nil, model.EntityNotFound("category", id)
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *model.CategoryRequest) (*model.Category, error) {
	c, err := s.build(id, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, notFound(err, "category", id)
	}

	s.logger.Info().Str("category_id", id.String()).Msg("category updated")
	return c, nil
}

// Delete removes the category. Products in it become uncategorised.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "category", id)
	}

	s.logger.Info().Str("category_id", id.String()).Msg("category deleted")
	return nil
}
