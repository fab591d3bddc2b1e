package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

type analyticsService struct {
	repo   repository.AnalyticsRepository
	now    func() time.Time
	logger zerolog.Logger
}

// NewAnalyticsService creates a sales report service. now supplies the
// evaluation time for the monthly window.
func NewAnalyticsService(repo repository.AnalyticsRepository, now func() time.Time, logger zerolog.Logger) AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &analyticsService{
		repo:   repo,
		now:    now,
		logger: logger.With().Str("service", "analytics").Logger(),
	}
}

// SalesReport summarises all orders as of now. It never writes.
func (s *analyticsService) SalesReport(ctx context.Context) (*model.SalesReport, error) {
	evaluatedAt := s.now()
	since := evaluatedAt.Add(-model.MonthlyWindow)

	totals, err := s.repo.OrderTotals(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute order totals: %w", err)
	}

	products, err := s.repo.TopProducts(ctx, model.TopRankingSize)
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}

	customers, err := s.repo.TopCustomers(ctx, model.TopRankingSize)
	if err != nil {
		return nil, fmt.Errorf("failed to rank customers: %w", err)
	}

	if products == nil {
		products = []model.ProductSales{}
	}
	if customers == nil {
		customers = []model.CustomerSpend{}
	}

	s.logger.Debug().
		Int64("total_orders", totals.Count).
		Time("since", since).
		Msg("sales report computed")

	return &model.SalesReport{
		TotalOrders:  totals.Count,
		TotalSales:   totals.Sales,
		MonthlySales: totals.WindowSales,
		TopProducts:  products,
		TopCustomers: customers,
	}, nil
}
