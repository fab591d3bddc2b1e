package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned by update and delete operations that matched no row.
var ErrNotFound = errors.New("record not found")

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx so queries can run inside
// or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PostgreSQL error codes translated into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// constraintFields maps named constraints to the request field they guard.
var constraintFields = map[string]string{
	"customers_email_key":               "email",
	"categories_name_key":               "name",
	"categories_slug_key":               "slug",
	"products_sku_key":                  "sku",
	"products_price_check":              "price",
	"products_stock_check":              "stock",
	"products_category_id_fkey":         "category_id",
	"cart_items_cart_product_key":       "product_id",
	"cart_items_quantity_check":         "quantity",
	"cart_items_product_id_fkey":        "product_id",
	"carts_customer_id_fkey":            "customer_id",
	"wishlists_customer_id_fkey":        "customer_id",
	"wishlist_products_pkey":            "product_id",
	"wishlist_products_product_id_fkey": "product_id",
	"orders_customer_id_fkey":           "customer_id",
	"order_items_order_id_fkey":         "order_id",
	"order_items_product_id_fkey":       "product_id",
	"order_items_quantity_check":        "quantity",
	"order_items_unit_price_check":      "unit_price",
	"payments_order_id_fkey":            "order_id",
	"payments_transaction_id_key":       "transaction_id",
	"shipments_order_id_fkey":           "order_id",
	"shipments_status_check":            "status",
}

// constraintField returns the field guarded by constraint, falling back to the
// column reported by the server.
func constraintField(pgErr *pgconn.PgError) string {
	if field, ok := constraintFields[pgErr.ConstraintName]; ok {
		return field
	}
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	if pgErr.TableName != "" {
		return strings.TrimSuffix(pgErr.TableName, "s")
	}
	return "value"
}

// translateError converts constraint violations reported by PostgreSQL into
// domain errors. Any other error is returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	field := constraintField(pgErr)
	switch pgErr.Code {
	case pgUniqueViolation:
		return model.NewValidationError(
			model.ErrCodeDuplicateValue,
			fmt.Sprintf("%s already exists", field),
			model.FieldError{Field: field, Reason: "must be unique"},
		)
	case pgForeignKeyViolation:
		reason := "references a record that does not exist"
		if strings.Contains(pgErr.Detail, "still referenced") {
			reason = "is still referenced by other records"
		}
		return model.NewIntegrityError(
			fmt.Sprintf("%s on %s", reason, pgErr.TableName),
			model.FieldError{Field: field, Reason: reason},
		)
	case pgCheckViolation:
		return model.NewValidationError(
			model.ErrCodeValidationFailed,
			fmt.Sprintf("invalid value for %s", field),
			model.FieldError{Field: field, Reason: "violates constraint " + pgErr.ConstraintName},
		)
	case pgNumericOutOfRange:
		return model.NewValidationError(
			model.ErrCodeValidationFailed,
			fmt.Sprintf("%s is out of range", field),
			model.FieldError{Field: field, Reason: "is out of range"},
		)
	}
	return err
}
