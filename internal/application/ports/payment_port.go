package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentIntent referencia devuelta por la pasarela de pagos.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       decimal.Decimal
	Currency     string
}

// PaymentGateway puerto de salida hacia la pasarela de pagos.
// El contexto debe llevar un timeout: es una llamada de red externa.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*PaymentIntent, error)
}
