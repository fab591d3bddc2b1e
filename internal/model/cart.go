package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a customer's in-progress selection of products.
// TotalAmount is never stored; it is recalculated from Items on every read.
type Cart struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	Items       []CartItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CartItem is one product line in a cart, priced at the product's current price.
type CartItem struct {
	ID          uuid.UUID       `json:"id"`
	CartID      uuid.UUID       `json:"cart_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Recalculate refreshes every line total and the cart total from the items.
func (c *Cart) Recalculate() {
	total := decimal.Zero
	for i := range c.Items {
		item := &c.Items[i]
		item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(item.LineTotal)
	}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	c.TotalAmount = total
}

// CartRequest creates a cart for a customer, optionally with a first item.
type CartRequest struct {
	CustomerID string  `json:"customer_id" validate:"required"`
	ProductID  *string `json:"product_id,omitempty"`
	Quantity   *int    `json:"quantity,omitempty" validate:"omitempty,min=1,max=10000"`
}

// CartUpdateRequest reassigns a cart to another customer.
type CartUpdateRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
}

// CartItemRequest adds a product to a cart. Adding a product already in the
// cart increases the existing line's quantity.
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=10000"`
}

// CartItemUpdateRequest sets the quantity of an existing cart line.
type CartItemUpdateRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=10000"`
}

// Wishlist is a customer's saved set of products.
type Wishlist struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID uuid.UUID   `json:"customer_id"`
	ProductIDs []uuid.UUID `json:"product_ids"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// WishlistRequest creates or replaces a wishlist and its product set.
type WishlistRequest struct {
	CustomerID string   `json:"customer_id" validate:"required"`
	ProductIDs []string `json:"product_ids"`
}

// WishlistProductRequest adds a single product to a wishlist.
type WishlistProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}
