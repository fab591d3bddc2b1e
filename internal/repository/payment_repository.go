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

const paymentColumns = `id, order_id, amount, payment_method, status, transaction_id, created_at, updated_at`

type paymentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPaymentRepository creates a new PostgreSQL-backed payment repository.
func NewPaymentRepository(pool *pgxpool.Pool, logger zerolog.Logger) PaymentRepository {
	return &paymentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "payment").Logger(),
	}
}

func scanPayment(row pgx.Row) (model.Payment, error) {
	var p model.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.PaymentMethod, &p.Status, &p.TransactionID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *paymentRepository) Create(ctx context.Context, p *model.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query, p.ID, p.OrderID, p.Amount, p.PaymentMethod, p.Status, p.TransactionID,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", p.OrderID.String()).Msg("failed to create payment")
		return fmt.Errorf("failed to create payment: %w", translateError(err))
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	p, err := scanPayment(r.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("payment_id", id.String()).Msg("payment not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("payment_id", id.String()).Msg("failed to query payment")
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}
	return &p, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY created_at, id`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query payments")
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}

	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan payment rows")
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}
	return orEmpty(payments), nil
}

// Update changes the payment's status and transaction reference.
func (r *paymentRepository) Update(ctx context.Context, p *model.Payment) error {
	query := `
		UPDATE payments SET status = $2, transaction_id = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + paymentColumns

	updated, err := scanPayment(r.pool.QueryRow(ctx, query, p.ID, p.Status, p.TransactionID, p.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		r.logger.Error().Err(err).Str("payment_id", p.ID.String()).Msg("failed to update payment")
		return fmt.Errorf("failed to update payment: %w", translateError(err))
	}
	*p = updated
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.pool, r.logger, "payments", id)
}
