package repository

import (
	"context"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// UserFilter filtros del listado de usuarios.
type UserFilter struct {
	Role   *entity.Role
	Search string // nombre o email
	Page   Page
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f UserFilter) ([]*entity.User, int, error)
	Count(ctx context.Context) (int, error)
}
