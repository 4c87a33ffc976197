package repository

import (
	"context"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// AddressRepository puerto de persistencia para direcciones de envío.
type AddressRepository interface {
	Create(ctx context.Context, a *entity.Address) error
	GetByID(ctx context.Context, id string) (*entity.Address, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Address, error)
	Delete(ctx context.Context, id string) error
	ClearDefault(ctx context.Context, userID string) error
}
