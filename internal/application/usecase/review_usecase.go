package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Interiores-api/internal/application/auth"
	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

// ReviewUseCase reseñas de productos: una por usuario y producto.
type ReviewUseCase struct {
	repo     repository.ReviewRepository
	products repository.ProductRepository
	cache    ports.ListCache
}

// NewReviewUseCase construye el caso de uso. cache puede ser nil.
func NewReviewUseCase(repo repository.ReviewRepository, products repository.ProductRepository, cache ports.ListCache) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, products: products, cache: cache}
}

// Create publica una reseña. Una segunda reseña del mismo usuario para el producto es un conflicto.
func (uc *ReviewUseCase) Create(ctx context.Context, p auth.Principal, productID string, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := uc.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUserAndProduct(ctx, p.UserID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyReviewed
	}
	now := time.Now().UTC()
	review := &entity.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserID:    p.UserID,
		UserName:  p.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, review); err != nil {
		// carrera entre dos envíos simultáneos: la restricción única decide
		if isDuplicate(err) {
			return nil, domain.ErrAlreadyReviewed
		}
		return nil, err
	}
	invalidateCache(ctx, uc.cache)
	out := toReviewResponse(review)
	return &out, nil
}

// List reseñas del producto con promedio y total.
func (uc *ReviewUseCase) List(ctx context.Context, productID string, q dto.PageQuery) (*dto.ReviewListResponse, error) {
	q.Normalize()
	if err := uc.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.ListByProduct(ctx, productID, q.ToPage())
	if err != nil {
		return nil, err
	}
	avg, count, err := uc.repo.AverageRating(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toReviewResponse(r))
	}
	return &dto.ReviewListResponse{
		Items:         items,
		Pagination:    dto.NewPagination(q, total),
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}

// GetByID obtiene una reseña del producto.
func (uc *ReviewUseCase) GetByID(ctx context.Context, productID, reviewID string) (*dto.ReviewResponse, error) {
	review, err := uc.get(ctx, productID, reviewID)
	if err != nil {
		return nil, err
	}
	out := toReviewResponse(review)
	return &out, nil
}

// Update modifica una reseña propia (o cualquiera si es ADMIN).
func (uc *ReviewUseCase) Update(ctx context.Context, p auth.Principal, productID, reviewID string, in dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := uc.get(ctx, productID, reviewID)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(review.UserID) {
		return nil, domain.ErrForbidden
	}
	if in.Rating != nil {
		review.Rating = *in.Rating
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	review.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	invalidateCache(ctx, uc.cache)
	out := toReviewResponse(review)
	return &out, nil
}

// Delete elimina una reseña propia (o cualquiera si es ADMIN).
func (uc *ReviewUseCase) Delete(ctx context.Context, p auth.Principal, productID, reviewID string) error {
	review, err := uc.get(ctx, productID, reviewID)
	if err != nil {
		return err
	}
	if !p.CanAccess(review.UserID) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, reviewID); err != nil {
		return err
	}
	invalidateCache(ctx, uc.cache)
	return nil
}

func (uc *ReviewUseCase) get(ctx context.Context, productID, reviewID string) (*entity.Review, error) {
	review, err := uc.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil || review.ProductID != productID {
		return nil, domain.ErrNotFound
	}
	return review, nil
}

func (uc *ReviewUseCase) ensureProduct(ctx context.Context, productID string) error {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return nil
}
