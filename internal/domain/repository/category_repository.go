package repository

import (
	"context"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// CategoryFilter filtros del listado de categorías.
// ParentID: nil = todas; puntero a "" = solo raíces; otro valor = hijas de ese padre.
type CategoryFilter struct {
	ParentID *string
	Search   string
	Page     Page
}

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f CategoryFilter) ([]*entity.Category, int, error)
	ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error)
	CountChildren(ctx context.Context, id string) (int, error)
}
