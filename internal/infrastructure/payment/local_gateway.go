package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Interiores-api/internal/application/ports"
)

// LocalGateway pasarela de desarrollo: no cobra, devuelve una referencia pi_local_*.
type LocalGateway struct{}

var _ ports.PaymentGateway = LocalGateway{}

// CreatePaymentIntent devuelve una referencia estable para el pedido de metadata["order_id"].
func (LocalGateway) CreatePaymentIntent(_ context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*ports.PaymentIntent, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment: monto inválido %s", amount.String())
	}
	ref := metadata["order_id"]
	if ref == "" {
		ref = uuid.NewString()
	}
	id := "pi_local_" + strings.ReplaceAll(ref, "-", "")
	return &ports.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret_local",
		Amount:       amount,
		Currency:     strings.ToLower(currency),
	}, nil
}
