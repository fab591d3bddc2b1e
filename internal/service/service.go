package service

import (
	"context"

	"storefront/internal/model"

	"github.com/google/uuid"
)

// Every service returns *model.DomainError for client-correctable failures
// (validation, unknown identifiers, integrity) and wrapped errors otherwise.

// CustomerService defines operations for customer management.
type CustomerService interface {
	Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	// List returns customers newest first.
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, id uuid.UUID, req *model.CustomerRequest) (*model.Customer, error)
	// Delete removes the customer with their carts, wishlists and orders.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryService defines operations for category management.
type CategoryService interface {
	Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id uuid.UUID, req *model.CategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductService defines operations for product management.
type ProductService interface {
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartService defines operations on carts and their lines. Every cart it
// returns carries a total recomputed from its lines.
type CartService interface {
	Create(ctx context.Context, req *model.CartRequest) (*model.Cart, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Cart, error)
	List(ctx context.Context) ([]model.Cart, error)
	Update(ctx context.Context, id uuid.UUID, req *model.CartUpdateRequest) (*model.Cart, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddItem(ctx context.Context, cartID uuid.UUID, req *model.CartItemRequest) (*model.Cart, error)
	UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, req *model.CartItemUpdateRequest) (*model.Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) (*model.Cart, error)
}

// WishlistService defines operations for wishlist management.
type WishlistService interface {
	Create(ctx context.Context, req *model.WishlistRequest) (*model.Wishlist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Wishlist, error)
	List(ctx context.Context) ([]model.Wishlist, error)
	Update(ctx context.Context, id uuid.UUID, req *model.WishlistRequest) (*model.Wishlist, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddProduct(ctx context.Context, wishlistID uuid.UUID, req *model.WishlistProductRequest) (*model.Wishlist, error)
	RemoveProduct(ctx context.Context, wishlistID, productID uuid.UUID) (*model.Wishlist, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// PlaceOrder turns the customer's cart into an order in one transaction.
	PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetByID retrieves an order by its ID with all items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List returns orders, restricted to one customer when customerID is non-nil.
	List(ctx context.Context, customerID *uuid.UUID) ([]model.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, req *model.OrderUpdateRequest) (*model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderItemService defines operations on individual order lines.
type OrderItemService interface {
	Create(ctx context.Context, req *model.OrderItemRequest) (*model.OrderItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderItem, error)
	List(ctx context.Context, orderID *uuid.UUID) ([]model.OrderItem, error)
	Update(ctx context.Context, id uuid.UUID, req *model.OrderItemUpdateRequest) (*model.OrderItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentService defines operations for payment records.
type PaymentService interface {
	Create(ctx context.Context, req *model.PaymentRequest) (*model.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	Update(ctx context.Context, id uuid.UUID, req *model.PaymentUpdateRequest) (*model.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShipmentService defines operations for shipment records.
type ShipmentService interface {
	Create(ctx context.Context, req *model.ShipmentRequest) (*model.Shipment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shipment, error)
	List(ctx context.Context) ([]model.Shipment, error)
	Update(ctx context.Context, id uuid.UUID, req *model.ShipmentUpdateRequest) (*model.Shipment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnalyticsService builds read-only sales reports.
type AnalyticsService interface {
	SalesReport(ctx context.Context) (*model.SalesReport, error)
}
