// Package analytics contiene el tablero del administrador: conteos y recaudo del negocio.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

const dashboardRecentOrders = 5 // pedidos en el widget de actividad reciente

// DashboardUseCase genera el resumen para GET /api/admin/dashboard.
// Todas las lecturas son independientes y se lanzan en paralelo.
type DashboardUseCase struct {
	users         repository.UserRepository
	products      repository.ProductRepository
	orders        repository.OrderRepository
	consultations repository.ConsultationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	consultations repository.ConsultationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{users: users, products: products, orders: orders, consultations: consultations}
}

// GetStats ejecuta seis consultas en paralelo; el primer error cancela el resto.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	var (
		out     dto.DashboardStatsResponse
		revenue decimal.Decimal
		recent  []*entity.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalUsers, err = uc.users.Count(gctx)
		return wrap("usuarios", err)
	})
	g.Go(func() (err error) {
		out.TotalProducts, err = uc.products.Count(gctx)
		return wrap("productos", err)
	})
	g.Go(func() (err error) {
		out.TotalOrders, err = uc.orders.Count(gctx)
		return wrap("pedidos", err)
	})
	g.Go(func() (err error) {
		revenue, err = uc.orders.Revenue(gctx)
		return wrap("recaudo", err)
	})
	g.Go(func() (err error) {
		out.PendingConsultations, err = uc.consultations.CountByStatus(gctx, entity.ConsultationPending)
		return wrap("asesorías pendientes", err)
	})
	g.Go(func() (err error) {
		recent, err = uc.orders.Recent(gctx, dashboardRecentOrders)
		return wrap("pedidos recientes", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Revenue = revenue
	out.RecentOrders = make([]dto.OrderResponse, 0, len(recent))
	for _, o := range recent {
		out.RecentOrders = append(out.RecentOrders, dto.OrderResponse{
			ID:              o.ID,
			UserID:          o.UserID,
			AddressID:       o.AddressID,
			Status:          string(o.Status),
			PaymentStatus:   string(o.PaymentStatus),
			PaymentIntentID: o.PaymentIntentID,
			Total:           o.Total,
			Notes:           o.Notes,
			Items:           []dto.OrderItemResponse{},
			CreatedAt:       o.CreatedAt,
			UpdatedAt:       o.UpdatedAt,
		})
	}
	return &out, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard %s: %w", what, err)
	}
	return nil
}
