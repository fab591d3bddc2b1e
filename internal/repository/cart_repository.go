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

// cartItemsQuery selects cart lines joined to their product's current name and price.
const cartItemsQuery = `
	SELECT ci.id, ci.cart_id, ci.product_id, p.name, ci.quantity, p.price, ci.created_at
	FROM cart_items ci
	JOIN products p ON p.id = ci.product_id
`

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

func (r *cartRepository) Create(ctx context.Context, cart *model.Cart, item *model.CartItem) (err error) {
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

	_, err = tx.Exec(ctx,
		`INSERT INTO carts (id, customer_id, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		cart.ID, cart.CustomerID, cart.CreatedAt, cart.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cart.ID.String()).Msg("failed to create cart")
		return fmt.Errorf("failed to create cart: %w", translateError(err))
	}

	if item != nil {
		if err = r.insertItem(ctx, tx, item); err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("cart_id", cart.ID.String()).Msg("failed to commit cart")
		return fmt.Errorf("failed to commit cart: %w", err)
	}
	return nil
}

func (r *cartRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Cart, error) {
	return r.getCart(ctx, r.pool, id, false)
}

func (r *cartRepository) LockForCheckout(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Cart, error) {
	return r.getCart(ctx, tx, id, true)
}

// getCart loads a cart and its lines. When lock is set the cart row and its
// lines are locked for update and the referenced products for share, so the
// priced snapshot cannot change before the transaction ends.
func (r *cartRepository) getCart(ctx context.Context, db DBTX, id uuid.UUID, lock bool) (*model.Cart, error) {
	cartQuery := `SELECT id, customer_id, created_at, updated_at FROM carts WHERE id = $1`
	itemsQuery := cartItemsQuery + ` WHERE ci.cart_id = $1 ORDER BY ci.created_at, ci.id`
	if lock {
		cartQuery += ` FOR UPDATE`
		itemsQuery += ` FOR UPDATE OF ci FOR SHARE OF p`
	}

	var cart model.Cart
	err := db.QueryRow(ctx, cartQuery, id).Scan(&cart.ID, &cart.CustomerID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("cart_id", id.String()).Msg("cart not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("cart_id", id.String()).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	rows, err := db.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", id.String()).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	items, err := r.collectItems(rows)
	if err != nil {
		return nil, err
	}

	cart.Items = items
	cart.Recalculate()
	return &cart, nil
}

func (r *cartRepository) collectItems(rows pgx.Rows) ([]model.CartItem, error) {
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}
	return items, nil
}

func (r *cartRepository) List(ctx context.Context) ([]model.Cart, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, customer_id, created_at, updated_at FROM carts ORDER BY created_at, id`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query carts")
		return nil, fmt.Errorf("failed to query carts: %w", err)
	}

	carts := []model.Cart{}
	index := map[uuid.UUID]int{}
	ids := []uuid.UUID{}
	for rows.Next() {
		var c model.Cart
		if err := rows.Scan(&c.ID, &c.CustomerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			rows.Close()
			r.logger.Error().Err(err).Msg("failed to scan cart row")
			return nil, fmt.Errorf("failed to scan cart: %w", err)
		}
		index[c.ID] = len(carts)
		ids = append(ids, c.ID)
		carts = append(carts, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart rows")
		return nil, fmt.Errorf("error iterating carts: %w", err)
	}

	if len(ids) > 0 {
		itemRows, err := r.pool.Query(ctx, cartItemsQuery+` WHERE ci.cart_id = ANY($1) ORDER BY ci.created_at, ci.id`, ids)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to query cart items")
			return nil, fmt.Errorf("failed to query cart items: %w", err)
		}
		items, err := r.collectItems(itemRows)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			c := &carts[index[it.CartID]]
			c.Items = append(c.Items, it)
		}
	}

	for i := range carts {
		carts[i].Recalculate()
	}
	return carts, nil
}

// Update reassigns the cart's owner.
func (r *cartRepository) Update(ctx context.Context, cart *model.Cart) error {
	query := `UPDATE carts SET customer_id = $2, updated_at = $3 WHERE id = $1 RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, cart.ID, cart.CustomerID, cart.UpdatedAt).Scan(&cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		r.logger.Error().Err(err).Str("cart_id", cart.ID.String()).Msg("failed to update cart")
		return fmt.Errorf("failed to update cart: %w", translateError(err))
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.pool, r.logger, "carts", id)
}

func (r *cartRepository) AddItem(ctx context.Context, item *model.CartItem) error {
	return r.insertItem(ctx, r.pool, item)
}

// insertItem merges item into its cart. On return item holds the persisted
// line id, quantity and creation time.
func (r *cartRepository) insertItem(ctx context.Context, db DBTX, item *model.CartItem) error {
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cart_id, product_id)
			DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity, created_at
	`

	err := db.QueryRow(ctx, query, item.ID, item.CartID, item.ProductID, item.Quantity, item.CreatedAt).
		Scan(&item.ID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("cart_id", item.CartID.String()).
			Str("product_id", item.ProductID.String()).
			Msg("failed to add cart item")
		return fmt.Errorf("failed to add cart item: %w", translateError(err))
	}

	r.logger.Debug().
		Str("cart_id", item.CartID.String()).
		Str("product_id", item.ProductID.String()).
		Int("quantity", item.Quantity).
		Msg("cart item stored")
	return nil
}

func (r *cartRepository) UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE cart_items SET quantity = $3 WHERE cart_id = $1 AND id = $2`, cartID, itemID, quantity)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Str("item_id", itemID.String()).
			Msg("failed to update cart item")
		return fmt.Errorf("failed to update cart item: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`, cartID, itemID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Str("item_id", itemID.String()).
			Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *cartRepository) ClearItems(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", id.String()).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	r.logger.Debug().Str("cart_id", id.String()).Int64("removed", tag.RowsAffected()).Msg("cart cleared")
	return nil
}
