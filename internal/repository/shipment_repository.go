package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const shipmentColumns = `id, order_id, tracking_number, carrier, status, delivery_date, created_at, updated_at`

type shipmentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewShipmentRepository creates a new PostgreSQL-backed shipment repository.
func NewShipmentRepository(pool *pgxpool.Pool, logger zerolog.Logger) ShipmentRepository {
	return &shipmentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "shipment").Logger(),
	}
}

func scanShipment(row pgx.Row) (model.Shipment, error) {
	var s model.Shipment
	var status string
	err := row.Scan(&s.ID, &s.OrderID, &s.TrackingNumber, &s.Carrier, &status, &s.DeliveryDate, &s.CreatedAt, &s.UpdatedAt)
	s.Status = model.ShipmentStatus(status)
	return s, err
}

func (r *shipmentRepository) Create(ctx context.Context, s *model.Shipment) error {
	query := `
		INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query, s.ID, s.OrderID, s.TrackingNumber, s.Carrier, string(s.Status),
		s.DeliveryDate, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", s.OrderID.String()).Msg("failed to create shipment")
		return fmt.Errorf("failed to create shipment: %w", translateError(err))
	}
	return nil
}

func (r *shipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Shipment, error) {
	s, err := scanShipment(r.pool.QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("shipment_id", id.String()).Msg("shipment not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("shipment_id", id.String()).Msg("failed to query shipment")
		return nil, fmt.Errorf("failed to query shipment: %w", err)
	}
	return &s, nil
}

func (r *shipmentRepository) List(ctx context.Context) ([]model.Shipment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+shipmentColumns+` FROM shipments ORDER BY created_at, id`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query shipments")
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}

	shipments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Shipment, error) {
		return scanShipment(row)
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan shipment rows")
		return nil, fmt.Errorf("failed to scan shipments: %w", err)
	}
	return orEmpty(shipments), nil
}

// Update changes the shipment's status and delivery date.
func (r *shipmentRepository) Update(ctx context.Context, s *model.Shipment) error {
	query := `
		UPDATE shipments SET status = $2, delivery_date = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + shipmentColumns

	updated, err := scanShipment(r.pool.QueryRow(ctx, query, s.ID, string(s.Status), s.DeliveryDate, s.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		r.logger.Error().Err(err).Str("shipment_id", s.ID.String()).Msg("failed to update shipment")
		return fmt.Errorf("failed to update shipment: %w", translateError(err))
	}
	*s = updated
	return nil
}

func (r *shipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.pool, r.logger, "shipments", id)
}
