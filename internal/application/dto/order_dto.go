package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido; el precio lo fija el servidor.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=100"`
}

// CreateOrderRequest entrada de POST /api/orders y POST /api/checkout.
type CreateOrderRequest struct {
	AddressID string             `json:"addressId" validate:"required,uuid"`
	Notes     string             `json:"notes" validate:"max=500"`
	Items     []OrderItemRequest `json:"items" validate:"required,min=1,max=50,dive"`
}

// UpdateOrderRequest PATCH. Un cliente solo puede enviar status=CANCELLED.
type UpdateOrderRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
	Notes         *string `json:"notes" validate:"omitempty,max=500"`
}

// OrderListQuery filtros de GET /api/orders (userId solo aplica para ADMIN).
type OrderListQuery struct {
	PageQuery
	Status string `query:"status" validate:"omitempty,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
	UserID string `query:"userId" validate:"omitempty,uuid"`
}

// OrderItemResponse línea con precio congelado al momento de la compra.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de pedido.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	AddressID       string              `json:"addressId"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"paymentStatus"`
	PaymentIntentID string              `json:"paymentIntentId,omitempty"`
	Total           decimal.Decimal     `json:"total"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// PaymentIntentResponse referencia devuelta por la pasarela.
type PaymentIntentResponse struct {
	ID           string          `json:"id"`
	ClientSecret string          `json:"clientSecret"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
}

// CheckoutResponse pedido creado más el intento de pago.
type CheckoutResponse struct {
	Order   OrderResponse         `json:"order"`
	Payment PaymentIntentResponse `json:"payment"`
}

// CreateConsultationRequest reserva de consulta. Date se normaliza al día (UTC).
type CreateConsultationRequest struct {
	Date  time.Time `json:"date" validate:"required"`
	Time  string    `json:"time" validate:"required,hhmm"`
	Type  string    `json:"type" validate:"required,oneof=VIRTUAL IN_PERSON"`
	Notes string    `json:"notes" validate:"max=1000"`
	Phone string    `json:"phone" validate:"max=30"`
}

// UpdateConsultationRequest PATCH. Status distinto de CANCELLED solo para ADMIN.
type UpdateConsultationRequest struct {
	Date   *time.Time `json:"date"`
	Time   *string    `json:"time" validate:"omitempty,hhmm"`
	Type   *string    `json:"type" validate:"omitempty,oneof=VIRTUAL IN_PERSON"`
	Status *string    `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	Notes  *string    `json:"notes" validate:"omitempty,max=1000"`
	Phone  *string    `json:"phone" validate:"omitempty,max=30"`
}

// ConsultationListQuery filtros de GET /api/consultations.
type ConsultationListQuery struct {
	PageQuery
	Status string `query:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	Type   string `query:"type" validate:"omitempty,oneof=VIRTUAL IN_PERSON"`
}

// AvailabilityQuery GET /api/consultations/availability?date=2030-01-01&type=VIRTUAL.
type AvailabilityQuery struct {
	Date string `query:"date" validate:"required,datetime=2006-01-02"`
	Type string `query:"type" validate:"required,oneof=VIRTUAL IN_PERSON"`
}

// ConsultationResponse salida de consulta.
type ConsultationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotAvailability cupo de un horario.
type SlotAvailability struct {
	Time      string `json:"time"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
	Available bool   `json:"available"`
}

// AvailabilityResponse horarios del día con cupo restante.
type AvailabilityResponse struct {
	Date     string             `json:"date"`
	Type     string             `json:"type"`
	Capacity int                `json:"capacity"`
	Slots    []SlotAvailability `json:"slots"`
}
