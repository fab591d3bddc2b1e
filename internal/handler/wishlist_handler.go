package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist HTTP requests.
type WishlistHandler struct {
	service service.WishlistService
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(service service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

func (h *WishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.logger, h.service.Create)
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.List)
}

func (h *WishlistHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.logger, h.service.GetByID)
}

// Update handles PUT /api/wishlists/{id}; the product set is replaced.
func (h *WishlistHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.logger, h.service.Update)
}

func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.logger, h.service.Delete)
}

// AddProduct handles POST /api/wishlists/{id}/products requests.
func (h *WishlistHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	wishlistID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var req model.WishlistProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	wl, err := h.service.AddProduct(r.Context(), wishlistID, &req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, wl)
}

// RemoveProduct handles DELETE /api/wishlists/{id}/products/{product_id} requests.
func (h *WishlistHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	wishlistID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	wl, err := h.service.RemoveProduct(r.Context(), wishlistID, productID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, wl)
}
