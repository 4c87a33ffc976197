package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado logístico del pedido.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Terminal indica si el pedido ya no admite cambios (entregado o cancelado).
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// orderStep posición de cada estado en el flujo logístico.
var orderStep = map[OrderStatus]int{
	OrderPending:    0,
	OrderProcessing: 1,
	OrderShipped:    2,
	OrderDelivered:  3,
}

// CanTransition indica si el pedido puede pasar de s a next. El flujo solo avanza
// (PENDING → PROCESSING → SHIPPED → DELIVERED, se permite saltar pasos) y cualquier
// estado no terminal puede cancelarse.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == OrderCancelled {
		return true
	}
	return orderStep[next] > orderStep[s]
}

// Valid indica si es un estado conocido.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// PaymentStatus estado del cobro.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Valid indica si es un estado de pago conocido.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Order pedido de un cliente. Total se calcula con los precios capturados en Items.
type Order struct {
	ID              string
	UserID          string
	AddressID       string
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	PaymentIntentID string
	Total           decimal.Decimal
	Notes           string
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem línea del pedido. Price es una foto del precio al crear el pedido
// y no cambia aunque luego cambie el producto.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// Subtotal precio × cantidad de la línea.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
