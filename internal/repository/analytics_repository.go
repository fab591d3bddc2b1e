package repository

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type analyticsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAnalyticsRepository creates a new PostgreSQL-backed analytics repository.
func NewAnalyticsRepository(pool *pgxpool.Pool, logger zerolog.Logger) AnalyticsRepository {
	return &analyticsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "analytics").Logger(),
	}
}

func (r *analyticsRepository) OrderTotals(ctx context.Context, since time.Time) (model.OrderTotals, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE created_at >= $1), 0)
		FROM orders
	`

	var totals model.OrderTotals
	if err := r.pool.QueryRow(ctx, query, since).Scan(&totals.Count, &totals.Sales, &totals.WindowSales); err != nil {
		r.logger.Error().Err(err).Time("since", since).Msg("failed to query order totals")
		return model.OrderTotals{}, fmt.Errorf("failed to query order totals: %w", err)
	}
	return totals, nil
}

// TopProducts orders equal quantities by fewer order lines, then name, then id.
func (r *analyticsRepository) TopProducts(ctx context.Context, limit int) ([]model.ProductSales, error) {
	query := `
		SELECT p.id, p.name, SUM(oi.quantity) AS quantity
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		GROUP BY p.id, p.name
		ORDER BY quantity DESC, COUNT(oi.id) ASC, p.name ASC, p.id ASC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query top products")
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ProductSales, error) {
		var ps model.ProductSales
		err := row.Scan(&ps.ProductID, &ps.Name, &ps.Quantity)
		return ps, err
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan top product rows")
		return nil, fmt.Errorf("failed to scan top products: %w", err)
	}
	return orEmpty(products), nil
}

// TopCustomers only considers customers with orders. Equal spend is ordered by
// earlier registration, then id.
func (r *analyticsRepository) TopCustomers(ctx context.Context, limit int) ([]model.CustomerSpend, error) {
	query := `
		SELECT c.id, c.name, c.email, SUM(o.total_amount) AS spent
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		GROUP BY c.id
		ORDER BY spent DESC, c.created_at ASC, c.id ASC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query top customers")
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}

	customers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.CustomerSpend, error) {
		var cs model.CustomerSpend
		err := row.Scan(&cs.CustomerID, &cs.Name, &cs.Email, &cs.Spent)
		return cs, err
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan top customer rows")
		return nil, fmt.Errorf("failed to scan top customers: %w", err)
	}
	return orEmpty(customers), nil
}
