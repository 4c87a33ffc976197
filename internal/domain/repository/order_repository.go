package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// OrderFilter filtros del listado de pedidos. UserID vacío = todos (solo admin).
type OrderFilter struct {
	UserID string
	Status *entity.OrderStatus
	Page   Page
}

// OrderRepository puerto de persistencia para pedidos y sus líneas.
type OrderRepository interface {
	// Create inserta el pedido y todas sus líneas.
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, o *entity.Order) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f OrderFilter) ([]*entity.Order, int, error)
	// Recent últimos pedidos creados (dashboard).
	Recent(ctx context.Context, limit int) ([]*entity.Order, error)
	Count(ctx context.Context) (int, error)
	// Revenue suma de pedidos cobrados y no cancelados.
	Revenue(ctx context.Context) (decimal.Decimal, error)
}
