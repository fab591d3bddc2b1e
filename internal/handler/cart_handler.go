package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart and cart line HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Create handles POST /api/carts requests. The body may carry a first line.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.logger, h.service.Create)
}

func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.List)
}

func (h *CartHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.logger, h.service.GetByID)
}

// Update handles PUT /api/carts/{id} requests, which reassign the owner.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.logger, h.service.Update)
}

func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.logger, h.service.Delete)
}

// AddItem handles POST /api/carts/{id}/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var req model.CartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	cart, err := h.service.AddItem(r.Context(), cartID, &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, cart)
}

// UpdateItem handles PUT /api/carts/{id}/items/{item_id} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	itemID, err := pathID(r, "item_id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var req model.CartItemUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	cart, err := h.service.UpdateItem(r.Context(), cartID, itemID, &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/carts/{id}/items/{item_id} requests and
// returns the remaining cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	itemID, err := pathID(r, "item_id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), cartID, itemID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}
