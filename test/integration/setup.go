// Package integration drives the HTTP API end to end against a PostgreSQL
// test container.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/database/dbtest"
	"storefront/internal/handler"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// setupTestServer wires every repository, service and handler onto the
// test database, the same way cmd/api does.
func setupTestServer(t *testing.T, db *dbtest.TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	pool := db.Pool

	customerRepo := repository.NewCustomerRepository(pool, logger)
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	return router.New(router.Handlers{
		Customer: handler.NewCustomerHandler(service.NewCustomerService(customerRepo, logger), logger),
		Category: handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, logger), logger),
		Product:  handler.NewProductHandler(service.NewProductService(productRepo, categoryRepo, logger), logger),
		Cart:     handler.NewCartHandler(service.NewCartService(cartRepo, customerRepo, productRepo, logger), logger),
		Wishlist: handler.NewWishlistHandler(
			service.NewWishlistService(repository.NewWishlistRepository(pool, logger), customerRepo, productRepo, logger), logger),
		Order: handler.NewOrderHandler(service.NewOrderService(orderRepo, cartRepo, customerRepo, logger), logger),
		OrderItem: handler.NewOrderItemHandler(
			service.NewOrderItemService(repository.NewOrderItemRepository(pool, logger), orderRepo, productRepo, logger), logger),
		Payment: handler.NewPaymentHandler(
			service.NewPaymentService(repository.NewPaymentRepository(pool, logger), orderRepo, logger), logger),
		Shipment: handler.NewShipmentHandler(
			service.NewShipmentService(repository.NewShipmentRepository(pool, logger), orderRepo, logger), logger),
		Analytics: handler.NewAnalyticsHandler(
			service.NewAnalyticsService(repository.NewAnalyticsRepository(pool, logger), time.Now, logger), logger),
		Health: handler.NewHealthHandler(pool, time.Second, logger),
	}, logger)
}

// do sends body as JSON and returns the recorded response.
func do(t *testing.T, server http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into a value of type T.
func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out), w.Body.String())
	return out
}
