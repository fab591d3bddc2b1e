package repository

import (
	"context"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Get methods return (nil, nil) when no row matches. Update and Delete return
// ErrNotFound. Constraint violations surface as *model.DomainError.

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	// List returns customers newest first.
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs. Missing ids are skipped.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// UpsertBySKU inserts products or updates the existing row with the same SKU.
	// It returns the number of rows written.
	UpsertBySKU(ctx context.Context, products []model.Product) (int, error)
}

// CartRepository defines the interface for cart and cart item data access.
// Returned carts carry their items priced at the current product price.
type CartRepository interface {
	// Create inserts a cart and, when item is non-nil, its first line in one transaction.
	Create(ctx context.Context, cart *model.Cart, item *model.CartItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Cart, error)
	List(ctx context.Context) ([]model.Cart, error)
	Update(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddItem inserts a line or, if the product is already in the cart, adds to its quantity.
	AddItem(ctx context.Context, item *model.CartItem) error
	UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// LockForCheckout reads the cart and its lines FOR UPDATE within tx.
	LockForCheckout(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Cart, error)

	// ClearItems removes every line from the cart within tx.
	ClearItems(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// WishlistRepository defines the interface for wishlist data access operations.
type WishlistRepository interface {
	// Create inserts the wishlist and its product set in one transaction.
	Create(ctx context.Context, w *model.Wishlist) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Wishlist, error)
	List(ctx context.Context) ([]model.Wishlist, error)

	// Update replaces the owner and the whole product set.
	Update(ctx context.Context, w *model.Wishlist) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddProduct(ctx context.Context, wishlistID, productID uuid.UUID) error
	RemoveProduct(ctx context.Context, wishlistID, productID uuid.UUID) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// Exists reports whether the order exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// List returns orders, restricted to one customer when customerID is non-nil.
	List(ctx context.Context, customerID *uuid.UUID) ([]model.Order, error)

	// UpdateStatus sets the status of an order and returns the updated order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) (*model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderItemRepository defines the interface for standalone order line access.
type OrderItemRepository interface {
	Create(ctx context.Context, item *model.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderItem, error)

	// List returns order lines, restricted to one order when orderID is non-nil.
	List(ctx context.Context, orderID *uuid.UUID) ([]model.OrderItem, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*model.OrderItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the interface for payment data access operations.
type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	Update(ctx context.Context, p *model.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShipmentRepository defines the interface for shipment data access operations.
type ShipmentRepository interface {
	Create(ctx context.Context, s *model.Shipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shipment, error)
	List(ctx context.Context) ([]model.Shipment, error)
	Update(ctx context.Context, s *model.Shipment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnalyticsRepository exposes the read-only aggregate queries behind the sales report.
type AnalyticsRepository interface {
	// OrderTotals counts all orders and sums their totals, overall and for
	// orders created at or after since.
	OrderTotals(ctx context.Context, since time.Time) (model.OrderTotals, error)

	// TopProducts ranks products by cumulative ordered quantity.
	TopProducts(ctx context.Context, limit int) ([]model.ProductSales, error)

	// TopCustomers ranks customers with at least one order by cumulative spend.
	TopCustomers(ctx context.Context, limit int) ([]model.CustomerSpend, error)
}
