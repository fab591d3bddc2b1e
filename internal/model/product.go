package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products. Deleting a category leaves its products uncategorised.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryRequest is the payload for creating or replacing a category.
// Slug is derived from Name when omitted.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=50"`
	Slug string `json:"slug,omitempty" validate:"omitempty,max=60,slug"`
}

// Product represents an item in the catalogue.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	SKU         string          `json:"sku"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductRequest is the payload for creating or replacing a product.
type ProductRequest struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,min=0,max=2147483647"`
	CategoryID  *string          `json:"category_id,omitempty"`
	SKU         string           `json:"sku" validate:"required,max=30"`
	IsActive    *bool            `json:"is_active,omitempty"`
}
