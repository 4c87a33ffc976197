package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Interiores-api/internal/application/auth"
	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

// paymentTimeout límite de la llamada a la pasarela.
const paymentTimeout = 15 * time.Second

// CheckoutUseCase crea el pedido y el intento de pago asociado.
type CheckoutUseCase struct {
	orders   *OrderUseCase
	repo     repository.OrderRepository
	gateway  ports.PaymentGateway
	currency string
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(orders *OrderUseCase, repo repository.OrderRepository, gateway ports.PaymentGateway, currency string) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, repo: repo, gateway: gateway, currency: currency}
}

// Checkout registra el pedido y pide a la pasarela un intento de pago por el total.
// Si la pasarela falla, el pedido queda con paymentStatus=FAILED.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, p auth.Principal, in dto.CreateOrderRequest) (*dto.CheckoutResponse, error) {
	order, err := uc.orders.create(ctx, p, in)
	if err != nil {
		return nil, err
	}

	pctx, cancel := context.WithTimeout(ctx, paymentTimeout)
	defer cancel()
	intent, err := uc.gateway.CreatePaymentIntent(pctx, order.Total, uc.currency, map[string]string{
		"order_id": order.ID,
		"user_id":  order.UserID,
	})
	if err != nil {
		order.PaymentStatus = entity.PaymentFailed
		order.UpdatedAt = time.Now().UTC()
		if uerr := uc.repo.Update(ctx, order); uerr != nil {
			log.Error().Err(uerr).Str("order_id", order.ID).Msg("no se pudo marcar el pago como fallido")
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	order.PaymentIntentID = intent.ID
	order.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return &dto.CheckoutResponse{
		Order: toOrderResponse(order),
		Payment: dto.PaymentIntentResponse{
			ID:           intent.ID,
			ClientSecret: intent.ClientSecret,
			Amount:       intent.Amount,
			Currency:     intent.Currency,
		},
	}, nil
}
