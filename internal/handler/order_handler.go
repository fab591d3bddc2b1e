package handler

import (
	"net/http"

	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests by checking out the named cart.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.logger, h.service.PlaceOrder)
}

// List handles GET /api/orders requests, optionally filtered by ?customer=.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := queryID(r, "customer")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	orders, err := h.service.List(r.Context(), customerID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orEmpty(orders))
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.logger, h.service.GetByID)
}

// Update handles PUT /api/orders/{id} requests. Only the status changes.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.logger, h.service.UpdateStatus)
}

// Delete handles DELETE /api/orders/{id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.logger, h.service.Delete)
}

// OrderItemHandler handles order line HTTP requests.
type OrderItemHandler struct {
	service service.OrderItemService
	logger  zerolog.Logger
}

// NewOrderItemHandler creates a new order item handler.
func NewOrderItemHandler(service service.OrderItemService, logger zerolog.Logger) *OrderItemHandler {
	return &OrderItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "order_item").Logger(),
	}
}

func (h *OrderItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.logger, h.service.Create)
}

// List handles GET /api/order-items requests, optionally filtered by ?order=.
func (h *OrderItemHandler) List(w http.ResponseWriter, r *http.Request) {
	orderID, err := queryID(r, "order")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	items, err := h.service.List(r.Context(), orderID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orEmpty(items))
}

func (h *OrderItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.logger, h.service.GetByID)
}

func (h *OrderItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.logger, h.service.Update)
}

func (h *OrderItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.logger, h.service.Delete)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
