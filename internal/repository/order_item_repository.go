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

type orderItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderItemRepository creates a new PostgreSQL-backed order item repository.
func NewOrderItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderItemRepository {
	return &orderItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order_item").Logger(),
	}
}

func (r *orderItemRepository) Create(ctx context.Context, item *model.OrderItem) error {
	query := `
		INSERT INTO order_items (` + orderItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", item.OrderID.String()).
			Str("product_id", item.ProductID.String()).
			Msg("failed to create order item")
		return fmt.Errorf("failed to create order item: %w", translateError(err))
	}
	item.TotalPrice = item.LineTotal()
	return nil
}

func (r *orderItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE id = $1`

	item, err := scanOrderItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_item_id", id.String()).Msg("order item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_item_id", id.String()).Msg("failed to query order item")
		return nil, fmt.Errorf("failed to query order item: %w", err)
	}
	return &item, nil
}

func (r *orderItemRepository) List(ctx context.Context, orderID *uuid.UUID) ([]model.OrderItem, error) {
	query := `
		SELECT ` + orderItemColumns + `
		FROM order_items
		WHERE $1::uuid IS NULL OR order_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}

	items, err := collectOrderItems(rows)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan order item rows")
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*model.OrderItem, error) {
	query := `
		UPDATE order_items SET quantity = $2
		WHERE id = $1
		RETURNING ` + orderItemColumns

	item, err := scanOrderItem(r.pool.QueryRow(ctx, query, id, quantity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error().Err(err).Str("order_item_id", id.String()).Msg("failed to update order item")
		return nil, fmt.Errorf("failed to update order item: %w", translateError(err))
	}
	return &item, nil
}

func (r *orderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.pool, r.logger, "order_items", id)
}
