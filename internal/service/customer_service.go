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

type customerService struct {
	repo   repository.CustomerRepository
	logger zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		repo:   repo,
		logger: logger.With().Str("service", "customer").Logger(),
	}
}

func (s *customerService) build(id uuid.UUID, req *model.CustomerRequest, now time.Time) *model.Customer {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &model.Customer{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     req.Phone,
		Address:   req.Address,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *customerService) Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid customer request")
		return nil, err
	}

	c := s.build(uuid.New(), req, time.Now().UTC())
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info().Str("customer_id", c.ID.String()).Msg("customer created")
	return c, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if c == nil {
		return nil, model.EntityNotFound("customer", id)
	}
	return c, nil
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req *model.CustomerRequest) (*model.Customer, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Str("customer_id", id.String()).Msg("invalid customer request")
		return nil, err
	}

	c := s.build(id, req, time.Now().UTC())
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, notFound(err, "customer", id)
	}

	s.logger.Info().Str("customer_id", id.String()).Msg("customer updated")
	return c, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "customer", id)
	}

	s.logger.Info().Str("customer_id", id.String()).Msg("customer deleted")
	return nil
}
