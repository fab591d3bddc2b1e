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

// requireOrder parses an order reference and checks that the order exists.
func requireOrder(ctx context.Context, repo repository.OrderRepository, raw string) (uuid.UUID, error) {
	id, err := parseID("order_id", raw)
	if err != nil {
		return uuid.Nil, err
	}
	if err := orderExists(ctx, repo, id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func orderExists(ctx context.Context, repo repository.OrderRepository, id uuid.UUID) error {
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to resolve order: %w", err)
	}
	if !exists {
		return model.ReferenceNotFound("order", "order_id", id)
	}
	return nil
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	logger      zerolog.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository, logger zerolog.Logger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		logger:      logger.With().Str("service", "payment").Logger(),
	}
}

func (s *paymentService) Create(ctx context.Context, req *model.PaymentRequest) (*model.Payment, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid payment request")
		return nil, err
	}
	if err := checkMoney("amount", *req.Amount); err != nil {
		return nil, err
	}

	orderID, err := requireOrder(ctx, s.orderRepo, req.OrderID)
	if err != nil {
		return nil, err
	}

	status := model.DefaultPaymentStatus
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now().UTC()
	p := &model.Payment{
		ID:            uuid.New(),
		OrderID:       orderID,
		Amount:        *req.Amount,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Status:        status,
		TransactionID: req.TransactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Str("payment_id", p.ID.String()).Str("order_id", orderID.String()).Msg("payment recorded")
	return p, nil
}

func (s *paymentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if p == nil {
		return nil, model.EntityNotFound("payment", id)
	}
	return p, nil
}

func (s *paymentService) List(ctx context.Context) ([]model.Payment, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) Update(ctx context.Context, id uuid.UUID, req *model.PaymentUpdateRequest) (*model.Payment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	p := &model.Payment{ID: id, Status: req.Status, TransactionID: req.TransactionID, UpdatedAt: time.Now().UTC()}
	if err := s.paymentRepo.Update(ctx, p); err != nil {
		return nil, notFound(err, "payment", id)
	}

	s.logger.Info().Str("payment_id", id.String()).Str("status", p.Status).Msg("payment updated")
	return p, nil
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return notFound(err, "payment", id)
	}
	return nil
}

type shipmentService struct {
	shipmentRepo repository.ShipmentRepository
	orderRepo    repository.OrderRepository
	logger       zerolog.Logger
}

// NewShipmentService creates a new shipment service.
func NewShipmentService(shipmentRepo repository.ShipmentRepository, orderRepo repository.OrderRepository, logger zerolog.Logger) ShipmentService {
	return &shipmentService{
		shipmentRepo: shipmentRepo,
		orderRepo:    orderRepo,
		logger:       logger.With().Str("service", "shipment").Logger(),
	}
}

func (s *shipmentService) Create(ctx context.Context, req *model.ShipmentRequest) (*model.Shipment, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid shipment request")
		return nil, err
	}

	orderID, err := requireOrder(ctx, s.orderRepo, req.OrderID)
	if err != nil {
		return nil, err
	}

	status := model.ShipmentStatusPending
	if req.Status != nil {
		status = model.ShipmentStatus(*req.Status)
	}

	now := time.Now().UTC()
	sh := &model.Shipment{
		ID:             uuid.New(),
		OrderID:        orderID,
		TrackingNumber: strings.TrimSpace(req.TrackingNumber),
		Carrier:        strings.TrimSpace(req.Carrier),
		Status:         status,
		DeliveryDate:   req.DeliveryDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.shipmentRepo.Create(ctx, sh); err != nil {
		return nil, err
	}

	s.logger.Info().Str("shipment_id", sh.ID.String()).Str("order_id", orderID.String()).Msg("shipment created")
	return sh, nil
}

func (s *shipmentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Shipment, error) {
	sh, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	if sh == nil {
		return nil, model.EntityNotFound("shipment", id)
	}
	return sh, nil
}

func (s *shipmentService) List(ctx context.Context) ([]model.Shipment, error) {
	shipments, err := s.shipmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	return shipments, nil
}

func (s *shipmentService) Update(ctx context.Context, id uuid.UUID, req *model.ShipmentUpdateRequest) (*model.Shipment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	sh := &model.Shipment{
		ID:           id,
		Status:       model.ShipmentStatus(req.Status),
		DeliveryDate: req.DeliveryDate,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.shipmentRepo.Update(ctx, sh); err != nil {
		return nil, notFound(err, "shipment", id)
	}

	s.logger.Info().Str("shipment_id", id.String()).Str("status", string(sh.Status)).Msg("shipment updated")
	return sh, nil
}

func (s *shipmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.shipmentRepo.Delete(ctx, id); err != nil {
		return notFound(err, "shipment", id)
	}
	return nil
}
