package handler

import (
	"net/http"

	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.logger, h.service.Create)
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.List)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.logger, h.service.GetByID)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.logger, h.service.Update)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.logger, h.service.Delete)
}

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.logger, h.service.Create)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.List)
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.logger, h.service.GetByID)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.logger, h.service.Update)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.logger, h.service.Delete)
}
