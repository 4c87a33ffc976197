package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// el nombre del autor viene de users para no duplicarlo en la reseña
const reviewSelect = `
	SELECT r.id, r.product_id, r.user_id, COALESCE(u.name, ''), r.rating, r.comment, r.created_at, r.updated_at
	FROM reviews r LEFT JOIN users u ON u.id = r.user_id`

// ReviewRepo reseñas sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create inserta la reseña. UNIQUE (user_id, product_id) devuelve ErrDuplicate.
func (r *ReviewRepo) Create(ctx context.Context, rv *entity.Review) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO reviews (id, product_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rv.ID, rv.ProductID, rv.UserID, rv.Rating, rv.Comment, rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	return r.getOne(ctx, reviewSelect+` WHERE r.id = $1`, id)
}

func (r *ReviewRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Review, error) {
	return r.getOne(ctx, reviewSelect+` WHERE r.user_id = $1 AND r.product_id = $2`, userID, productID)
}

func (r *ReviewRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Review, error) {
	rv, err := scanReview(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return rv, nil
}

func (r *ReviewRepo) Update(ctx context.Context, rv *entity.Review) error {
	_, err := r.q.Exec(ctx, `UPDATE reviews SET rating = $2, comment = $3, updated_at = $4 WHERE id = $1`,
		rv.ID, rv.Rating, rv.Comment, rv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// ListByProduct más recientes primero.
func (r *ReviewRepo) ListByProduct(ctx context.Context, productID string, p repository.Page) ([]*entity.Review, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE product_id = $1`, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}
	w := where{args: []any{productID}}
	rows, err := r.q.Query(ctx, reviewSelect+` WHERE r.product_id = $1 ORDER BY r.created_at DESC`+w.page(p), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, rv)
	}
	return list, total, rows.Err()
}

func (r *ReviewRepo) AverageRating(ctx context.Context, productID string) (float64, int, error) {
	var (
		avg float64
		n   int
	)
	err := r.q.QueryRow(ctx, `SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*) FROM reviews WHERE product_id = $1`, productID).Scan(&avg, &n)
	if err != nil {
		return 0, 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, n, nil
}

func scanReview(row pgx.Row) (*entity.Review, error) {
	var rv entity.Review
	if err := row.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}
