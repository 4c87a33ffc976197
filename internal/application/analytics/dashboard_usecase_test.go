package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/application/analytics"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

// Los fakes embeben la interfaz: solo implementan lo que lee el tablero.

type countUsers struct {
	repository.UserRepository
	n int
}

func (c countUsers) Count(context.Context) (int, error) { return c.n, nil }

type countProducts struct {
	repository.ProductRepository
	n int
}

func (c countProducts) Count(context.Context) (int, error) { return c.n, nil }

type statsOrders struct {
	repository.OrderRepository
	orders  []*entity.Order
	revenue decimal.Decimal
	err     error
}

func (s statsOrders) Count(context.Context) (int, error) { return len(s.orders), nil }

func (s statsOrders) Revenue(context.Context) (decimal.Decimal, error) { return s.revenue, s.err }

func (s statsOrders) Recent(_ context.Context, limit int) ([]*entity.Order, error) {
	if len(s.orders) < limit {
		return s.orders, nil
	}
	return s.orders[:limit], nil
}

type pendingConsultations struct {
	repository.ConsultationRepository
	n int
}

func (p pendingConsultations) CountByStatus(_ context.Context, s entity.ConsultationStatus) (int, error) {
	if s != entity.ConsultationPending {
		return 0, nil
	}
	return p.n, nil
}

func sampleOrders(n int) []*entity.Order {
	out := make([]*entity.Order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &entity.Order{
			ID:            string(rune('a' + i)),
			Status:        entity.OrderPending,
			PaymentStatus: entity.PaymentCompleted,
			Total:         decimal.NewFromInt(100),
			CreatedAt:     time.Date(2026, 3, 1, i, 0, 0, 0, time.UTC),
		})
	}
	return out
}

func TestDashboard_GetStats(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		countUsers{n: 12},
		countProducts{n: 40},
		statsOrders{orders: sampleOrders(7), revenue: decimal.RequireFromString("1520.50")},
		pendingConsultations{n: 3},
	)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalUsers)
	assert.Equal(t, 40, stats.TotalProducts)
	assert.Equal(t, 7, stats.TotalOrders)
	assert.Equal(t, 3, stats.PendingConsultations)
	assert.True(t, stats.Revenue.Equal(decimal.RequireFromString("1520.50")))
	assert.Len(t, stats.RecentOrders, 5)
	assert.Equal(t, "COMPLETED", stats.RecentOrders[0].PaymentStatus)
}

func TestDashboard_PropagatesErrors(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := analytics.NewDashboardUseCase(
		countUsers{},
		countProducts{},
		statsOrders{err: boom},
		pendingConsultations{},
	)
	_, err := uc.GetStats(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "recaudo")
}
