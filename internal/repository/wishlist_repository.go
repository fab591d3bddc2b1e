package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type wishlistRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewWishlistRepository creates a new PostgreSQL-backed wishlist repository.
func NewWishlistRepository(pool *pgxpool.Pool, logger zerolog.Logger) WishlistRepository {
	return &wishlistRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "wishlist").Logger(),
	}
}

// inTx runs fn inside a transaction and commits when it succeeds.
func (r *wishlistRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *wishlistRepository) insertProducts(ctx context.Context, tx pgx.Tx, w *model.Wishlist) error {
	if len(w.ProductIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, pid := range w.ProductIDs {
		batch.Queue(`
			INSERT INTO wishlist_products (wishlist_id, product_id, added_at)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING
		`, w.ID, pid, w.UpdatedAt)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for _, pid := range w.ProductIDs {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("wishlist_id", w.ID.String()).
				Str("product_id", pid.String()).
				Msg("failed to add wishlist product")
			return fmt.Errorf("failed to add wishlist product: %w", translateError(err))
		}
	}
	return nil
}

func (r *wishlistRepository) Create(ctx context.Context, w *model.Wishlist) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO wishlists (id, customer_id, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
			w.ID, w.CustomerID, w.CreatedAt, w.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Str("wishlist_id", w.ID.String()).Msg("failed to create wishlist")
			return fmt.Errorf("failed to create wishlist: %w", translateError(err))
		}
		return r.insertProducts(ctx, tx, w)
	})
}

func (r *wishlistRepository) Update(ctx context.Context, w *model.Wishlist) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`UPDATE wishlists SET customer_id = $2, updated_at = $3 WHERE id = $1 RETURNING created_at`,
			w.ID, w.CustomerID, w.UpdatedAt).Scan(&w.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			r.logger.Error().Err(err).Str("wishlist_id", w.ID.String()).Msg("failed to update wishlist")
			return fmt.Errorf("failed to update wishlist: %w", translateError(err))
		}

		if _, err := tx.Exec(ctx, `DELETE FROM wishlist_products WHERE wishlist_id = $1`, w.ID); err != nil {
			r.logger.Error().Err(err).Str("wishlist_id", w.ID.String()).Msg("failed to reset wishlist products")
			return fmt.Errorf("failed to reset wishlist products: %w", err)
		}
		return r.insertProducts(ctx, tx, w)
	})
}

func (r *wishlistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Wishlist, error) {
	var w model.Wishlist
	err := r.pool.QueryRow(ctx,
		`SELECT id, customer_id, created_at, updated_at FROM wishlists WHERE id = $1`, id).
		Scan(&w.ID, &w.CustomerID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("wishlist_id", id.String()).Msg("wishlist not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("wishlist_id", id.String()).Msg("failed to query wishlist")
		return nil, fmt.Errorf("failed to query wishlist: %w", err)
	}

	products, err := r.productIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	w.ProductIDs = products[id]
	if w.ProductIDs == nil {
		w.ProductIDs = []uuid.UUID{}
	}
	return &w, nil
}

func (r *wishlistRepository) List(ctx context.Context) ([]model.Wishlist, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, customer_id, created_at, updated_at FROM wishlists ORDER BY created_at, id`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query wishlists")
		return nil, fmt.Errorf("failed to query wishlists: %w", err)
	}

	wishlists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Wishlist, error) {
		var w model.Wishlist
		err := row.Scan(&w.ID, &w.CustomerID, &w.CreatedAt, &w.UpdatedAt)
		return w, err
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan wishlist rows")
		return nil, fmt.Errorf("failed to scan wishlists: %w", err)
	}

	ids := make([]uuid.UUID, len(wishlists))
	for i, w := range wishlists {
		ids[i] = w.ID
	}
	products, err := r.productIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range wishlists {
		wishlists[i].ProductIDs = products[wishlists[i].ID]
		if wishlists[i].ProductIDs == nil {
			wishlists[i].ProductIDs = []uuid.UUID{}
		}
	}
	if wishlists == nil {
		wishlists = []model.Wishlist{}
	}
	return wishlists, nil
}

// productIDs returns the product set of each wishlist in ids, oldest addition first.
func (r *wishlistRepository) productIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	result := make(map[uuid.UUID][]uuid.UUID, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT wishlist_id, product_id
		FROM wishlist_products
		WHERE wishlist_id = ANY($1)
		ORDER BY added_at, product_id
	`, ids)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query wishlist products")
		return nil, fmt.Errorf("failed to query wishlist products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var wid, pid uuid.UUID
		if err := rows.Scan(&wid, &pid); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan wishlist product row")
			return nil, fmt.Errorf("failed to scan wishlist product: %w", err)
		}
		result[wid] = append(result[wid], pid)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating wishlist product rows")
		return nil, fmt.Errorf("error iterating wishlist products: %w", err)
	}
	return result, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.pool, r.logger, "wishlists", id)
}

func (r *wishlistRepository) AddProduct(ctx context.Context, wishlistID, productID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO wishlist_products (wishlist_id, product_id, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`, wishlistID, productID, time.Now().UTC())
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("wishlist_id", wishlistID.String()).
			Str("product_id", productID.String()).
			Msg("failed to add wishlist product")
		return fmt.Errorf("failed to add wishlist product: %w", translateError(err))
	}
	return nil
}

func (r *wishlistRepository) RemoveProduct(ctx context.Context, wishlistID, productID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM wishlist_products WHERE wishlist_id = $1 AND product_id = $2`, wishlistID, productID)
	if err != nil {
		r.logger.Error().Err(err).Str("wishlist_id", wishlistID.String()).Msg("failed to remove wishlist product")
		return fmt.Errorf("failed to remove wishlist product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
