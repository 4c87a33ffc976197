package repository

import (
	"context"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// ReviewRepository puerto de persistencia para reseñas.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Review, error)
	Update(ctx context.Context, r *entity.Review) error
	Delete(ctx context.Context, id string) error
	ListByProduct(ctx context.Context, productID string, p Page) ([]*entity.Review, int, error)
	// AverageRating promedio y cantidad de reseñas del producto.
	AverageRating(ctx context.Context, productID string) (float64, int, error)
}
