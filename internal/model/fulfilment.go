package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPaymentStatus is assigned to payments recorded without a status.
const DefaultPaymentStatus = "Completed"

// Payment records money received against an order.
type Payment struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	TransactionID *string         `json:"transaction_id"`
	CreatedAt     time.Time       `json:"payment_date"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PaymentRequest records a payment.
type PaymentRequest struct {
	OrderID       string           `json:"order_id" validate:"required"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string           `json:"payment_method" validate:"required,max=50"`
	Status        *string          `json:"status,omitempty" validate:"omitempty,min=1,max=50"`
	TransactionID *string          `json:"transaction_id,omitempty" validate:"omitempty,min=1,max=100"`
}

// PaymentUpdateRequest changes a payment's status and transaction reference.
type PaymentUpdateRequest struct {
	Status        string  `json:"status" validate:"required,max=50"`
	TransactionID *string `json:"transaction_id,omitempty" validate:"omitempty,min=1,max=100"`
}

// ShipmentStatus is the delivery state of a shipment.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "Pending"
	ShipmentStatusShipped   ShipmentStatus = "Shipped"
	ShipmentStatusInTransit ShipmentStatus = "In Transit"
	ShipmentStatusDelivered ShipmentStatus = "Delivered"
	ShipmentStatusReturned  ShipmentStatus = "Returned"
)

// Valid reports whether s is one of the known shipment states.
func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusShipped, ShipmentStatusInTransit,
		ShipmentStatusDelivered, ShipmentStatusReturned:
		return true
	}
	return false
}

// Shipment tracks delivery of an order.
type Shipment struct {
	ID             uuid.UUID      `json:"id"`
	OrderID        uuid.UUID      `json:"order_id"`
	TrackingNumber string         `json:"tracking_number"`
	Carrier        string         `json:"carrier"`
	Status         ShipmentStatus `json:"status"`
	DeliveryDate   *time.Time     `json:"delivery_date"`
	CreatedAt      time.Time      `json:"shipment_date"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ShipmentRequest creates a shipment.
type ShipmentRequest struct {
	OrderID        string     `json:"order_id" validate:"required"`
	TrackingNumber string     `json:"tracking_number" validate:"required,max=50"`
	Carrier        string     `json:"carrier" validate:"required,max=50"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,shipment_status"`
	DeliveryDate   *time.Time `json:"delivery_date,omitempty"`
}

// ShipmentUpdateRequest changes a shipment's status and delivery date.
type ShipmentUpdateRequest struct {
	Status       string     `json:"status" validate:"required,shipment_status"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}
