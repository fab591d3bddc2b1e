package handler

import (
	"net/http"

	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// PaymentHandler handles payment HTTP requests.
type PaymentHandler struct {
	service service.PaymentService
	logger  zerolog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(service service.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger.With().Str("handler", "payment").Logger(),
	}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.logger, h.service.Create)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.List)
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.logger, h.service.GetByID)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.logger, h.service.Update)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.logger, h.service.Delete)
}

// ShipmentHandler handles shipment HTTP requests.
type ShipmentHandler struct {
	service service.ShipmentService
	logger  zerolog.Logger
}

// NewShipmentHandler creates a new shipment handler.
func NewShipmentHandler(service service.ShipmentService, logger zerolog.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		service: service,
		logger:  logger.With().Str("handler", "shipment").Logger(),
	}
}

func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, h.logger, h.service.Create)
}

func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, h.logger, h.service.List)
}

func (h *ShipmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, h.logger, h.service.GetByID)
}

func (h *ShipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, h.logger, h.service.Update)
}

func (h *ShipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, h.logger, h.service.Delete)
}
