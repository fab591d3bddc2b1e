package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_SalesReport(t *testing.T) {
	ctx := context.Background()
	evaluatedAt := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return evaluatedAt }

	t.Run("Report assembled from repository", func(t *testing.T) {
		repo := new(MockAnalyticsRepository)
		svc := NewAnalyticsService(repo, clock, zerolog.Nop())

		products := []model.ProductSales{{ProductID: uuid.New(), Name: "Lamp", Quantity: 7}}
		customers := []model.CustomerSpend{{CustomerID: uuid.New(), Name: "Ada", Email: "ada@example.com", Spent: decimal.RequireFromString("70.00")}}

		repo.On("OrderTotals", ctx, evaluatedAt.Add(-30*24*time.Hour)).Return(model.OrderTotals{
			Count:       3,
			Sales:       decimal.RequireFromString("90.00"),
			WindowSales: decimal.RequireFromString("70.00"),
		}, nil)
		repo.On("TopProducts", ctx, 5).Return(products, nil)
		repo.On("TopCustomers", ctx, 5).Return(customers, nil)

		report, err := svc.SalesReport(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), report.TotalOrders)
		assert.True(t, decimal.RequireFromString("90").Equal(report.TotalSales))
		assert.True(t, decimal.RequireFromString("70").Equal(report.MonthlySales))
		assert.Equal(t, products, report.TopProducts)
		assert.Equal(t, customers, report.TopCustomers)
		repo.AssertExpectations(t)
	})

	t.Run("Empty store yields empty rankings", func(t *testing.T) {
		repo := new(MockAnalyticsRepository)
		svc := NewAnalyticsService(repo, clock, zerolog.Nop())

		repo.On("OrderTotals", ctx, mock.AnythingOfType("time.Time")).Return(model.OrderTotals{}, nil)
		repo.On("TopProducts", ctx, 5).Return(nil, nil)
		repo.On("TopCustomers", ctx, 5).Return(nil, nil)

		report, err := svc.SalesReport(ctx)

		require.NoError(t, err)
		assert.Zero(t, report.TotalOrders)
		assert.True(t, report.TotalSales.IsZero())
		assert.NotNil(t, report.TopProducts)
		assert.Empty(t, report.TopProducts)
		assert.NotNil(t, report.TopCustomers)
		assert.Empty(t, report.TopCustomers)
	})

	t.Run("Repository failure", func(t *testing.T) {
		repo := new(MockAnalyticsRepository)
		svc := NewAnalyticsService(repo, clock, zerolog.Nop())

		repo.On("OrderTotals", ctx, mock.Anything).Return(model.OrderTotals{}, nil)
		repo.On("TopProducts", ctx, 5).Return(nil, errors.New("timeout"))

		report, err := svc.SalesReport(ctx)

		assert.Nil(t, report)
		assert.ErrorContains(t, err, "failed to rank products")
		repo.AssertNotCalled(t, "TopCustomers", mock.Anything, mock.Anything)
	})
}
