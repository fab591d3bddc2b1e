package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_Sales(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Report shape", func(t *testing.T) {
		mockService := new(MockAnalyticsService)
		mockService.On("SalesReport", mock.Anything).Return(&model.SalesReport{
			TotalOrders:  3,
			TotalSales:   decimal.RequireFromString("60.00"),
			MonthlySales: decimal.RequireFromString("40.00"),
			TopProducts:  []model.ProductSales{{ProductID: uuid.New(), Name: "Lamp", Quantity: 5}},
			TopCustomers: []model.CustomerSpend{{CustomerID: uuid.New(), Name: "Ada", Email: "ada@example.com", Spent: decimal.RequireFromString("60.00")}},
		}, nil)

		w := httptest.NewRecorder()
		NewAnalyticsHandler(mockService, logger).Sales(w, httptest.NewRequest(http.MethodGet, "/api/analytics/sales", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.ElementsMatch(t,
			[]string{"total_orders", "total_sales", "monthly_sales", "top_products", "top_customers"},
			keys(body))
		assert.JSONEq(t, `[{"name":"Lamp","quantity":5}]`, string(body["top_products"]))
		assert.JSONEq(t, `[{"name":"Ada","email":"ada@example.com","spent":"60"}]`, string(body["top_customers"]))
		assert.JSONEq(t, `3`, string(body["total_orders"]))
	})

	t.Run("Empty store", func(t *testing.T) {
		mockService := new(MockAnalyticsService)
		mockService.On("SalesReport", mock.Anything).Return(&model.SalesReport{
			TopProducts:  []model.ProductSales{},
			TopCustomers: []model.CustomerSpend{},
		}, nil)

		w := httptest.NewRecorder()
		NewAnalyticsHandler(mockService, logger).Sales(w, httptest.NewRequest(http.MethodGet, "/api/analytics/sales", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"total_orders":0,"total_sales":"0","monthly_sales":"0","top_products":[],"top_customers":[]}`,
			w.Body.String())
	})

	t.Run("Service failure", func(t *testing.T) {
		mockService := new(MockAnalyticsService)
		mockService.On("SalesReport", mock.Anything).Return(nil, errors.New("timeout"))

		w := httptest.NewRecorder()
		NewAnalyticsHandler(mockService, logger).Sales(w, httptest.NewRequest(http.MethodGet, "/api/analytics/sales", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
