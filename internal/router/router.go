package router

import (
	"net/http"

	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers the router exposes.
type Handlers struct {
	Customer  *handler.CustomerHandler
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Wishlist  *handler.WishlistHandler
	Order     *handler.OrderHandler
	OrderItem *handler.OrderItemHandler
	Payment   *handler.PaymentHandler
	Shipment  *handler.ShipmentHandler
	Analytics *handler.AnalyticsHandler
	Health    *handler.HealthHandler
}

// Route binds one method and path pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// crud is the operation set exposed by a plain entity resource.
type crud interface {
	Create(http.ResponseWriter, *http.Request)
	List(http.ResponseWriter, *http.Request)
	GetByID(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// resource expands a collection path into its collection and detail routes.
func resource(base string, h crud) []Route {
	detail := base + "/{id}"
	return []Route{
		{http.MethodGet, base, h.List},
		{http.MethodPost, base, h.Create},
		{http.MethodGet, detail, h.GetByID},
		{http.MethodPut, detail, h.Update},
		{http.MethodDelete, detail, h.Delete},
	}
}

// Routes returns the full route table.
func Routes(h Handlers) []Route {
	var routes []Route

	routes = append(routes, resource("/api/customers", h.Customer)...)
	routes = append(routes, resource("/api/categories", h.Category)...)
	routes = append(routes, resource("/api/products", h.Product)...)

	routes = append(routes, resource("/api/carts", h.Cart)...)
	routes = append(routes,
		Route{http.MethodPost, "/api/carts/{id}/items", h.Cart.AddItem},
		Route{http.MethodPut, "/api/carts/{id}/items/{item_id}", h.Cart.UpdateItem},
		Route{http.MethodDelete, "/api/carts/{id}/items/{item_id}", h.Cart.RemoveItem},
	)

	routes = append(routes, resource("/api/wishlists", h.Wishlist)...)
	routes = append(routes,
		Route{http.MethodPost, "/api/wishlists/{id}/products", h.Wishlist.AddProduct},
		Route{http.MethodDelete, "/api/wishlists/{id}/products/{product_id}", h.Wishlist.RemoveProduct},
	)

	routes = append(routes, resource("/api/orders", h.Order)...)
	routes = append(routes, resource("/api/order-items", h.OrderItem)...)
	routes = append(routes, resource("/api/payments", h.Payment)...)
	routes = append(routes, resource("/api/shipments", h.Shipment)...)

	routes = append(routes,
		Route{http.MethodGet, "/api/analytics/sales", h.Analytics.Sales},
		Route{http.MethodGet, "/health", h.Health.Check},
	)

	return routes
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	for _, rt := range Routes(h) {
		mux.HandleFunc(rt.Method+" "+rt.Pattern, rt.Handler)
	}

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
