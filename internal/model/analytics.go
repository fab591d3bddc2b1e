package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// TopRankingSize is the number of entries in each sales ranking.
	TopRankingSize = 5
	// MonthlyWindow is the trailing window used for monthly sales.
	MonthlyWindow = 30 * 24 * time.Hour
)

// SalesReport is a point-in-time summary of all orders.
type SalesReport struct {
	TotalOrders  int64           `json:"total_orders"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	MonthlySales decimal.Decimal `json:"monthly_sales"`
	TopProducts  []ProductSales  `json:"top_products"`
	TopCustomers []CustomerSpend `json:"top_customers"`
}

// ProductSales is a product's cumulative ordered quantity.
type ProductSales struct {
	ProductID uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
}

// CustomerSpend is a customer's cumulative order total.
type CustomerSpend struct {
	CustomerID uuid.UUID       `json:"-"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Spent      decimal.Decimal `json:"spent"`
}

// OrderTotals are the order count and sums the report is built from.
type OrderTotals struct {
	Count       int64
	Sales       decimal.Decimal
	WindowSales decimal.Decimal
}
