package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultOrderStatus is assigned to orders placed without an explicit status.
const DefaultOrderStatus = "Pending"

// Order represents a customer order.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	Items       []OrderItem     `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderItem represents a line item in an order. UnitPrice is the product
// price captured when the line was created.
type OrderItem struct {
	ID         uuid.UUID       `json:"id"`
	OrderID    uuid.UUID       `json:"order_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LineTotal returns quantity x unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderRequest represents the request payload for placing an order from a cart.
// TotalAmount is optional; when present it must equal the cart total.
type OrderRequest struct {
	CustomerID  string           `json:"customer_id" validate:"required"`
	CartID      string           `json:"cart_id" validate:"required"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,min=1,max=50"`
}

// OrderUpdateRequest changes the status of an order.
type OrderUpdateRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

// OrderItemRequest creates a standalone order line. UnitPrice defaults to the
// product's current price.
type OrderItemRequest struct {
	OrderID   string           `json:"order_id" validate:"required"`
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,min=1,max=10000"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// OrderItemUpdateRequest changes the quantity of an order line.
type OrderItemUpdateRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=10000"`
}
