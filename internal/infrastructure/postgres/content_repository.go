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

var (
	_ repository.DesignIdeaRepository = (*DesignIdeaRepo)(nil)
	_ repository.PortfolioRepository  = (*PortfolioRepo)(nil)
)

// contentWhere filtros comunes. Las columnas se llaman igual en ambas tablas.
func contentWhere(f repository.ContentFilter, searchCols ...string) *where {
	w := &where{}
	if f.Category != "" {
		w.add("lower(category) = lower(" + w.arg(f.Category) + ")")
	}
	if f.Tag != "" {
		w.add(w.arg(f.Tag) + " = ANY(tags)")
	}
	if f.Search != "" {
		s := w.arg(likePattern(f.Search))
		cond := "("
		for i, col := range searchCols {
			if i > 0 {
				cond += " OR "
			}
			cond += col + " ILIKE " + s
		}
		w.add(cond + ")")
	}
	if f.Published != nil {
		w.add("published = " + w.arg(*f.Published))
	}
	if f.Featured != nil {
		w.add("featured = " + w.arg(*f.Featured))
	}
	return w
}

const designIdeaColumns = `id, title, slug, summary, content, cover_image, images, category, tags,
	COALESCE(author_id::text, ''), published, created_at, updated_at`

// DesignIdeaRepo ideas de diseño sobre PostgreSQL.
type DesignIdeaRepo struct {
	q Querier
}

// NewDesignIdeaRepository construye el adaptador.
func NewDesignIdeaRepository(q Querier) *DesignIdeaRepo {
	return &DesignIdeaRepo{q: q}
}

func (r *DesignIdeaRepo) Create(ctx context.Context, d *entity.DesignIdea) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO design_ideas (id, title, slug, summary, content, cover_image, images, category, tags, author_id, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		d.ID, d.Title, d.Slug, d.Summary, d.Content, d.CoverImage, textArray(d.Images), d.Category, textArray(d.Tags),
		nullIfEmpty(d.AuthorID), d.Published, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert design idea: %w", err)
	}
	return nil
}

func (r *DesignIdeaRepo) GetByID(ctx context.Context, id string) (*entity.DesignIdea, error) {
	d, err := scanDesignIdea(r.q.QueryRow(ctx, `SELECT `+designIdeaColumns+` FROM design_ideas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get design idea: %w", err)
	}
	return d, nil
}

func (r *DesignIdeaRepo) Update(ctx context.Context, d *entity.DesignIdea) error {
	_, err := r.q.Exec(ctx, `
		UPDATE design_ideas SET title = $2, slug = $3, summary = $4, content = $5, cover_image = $6, images = $7,
			category = $8, tags = $9, published = $10, updated_at = $11
		WHERE id = $1`,
		d.ID, d.Title, d.Slug, d.Summary, d.Content, d.CoverImage, textArray(d.Images), d.Category, textArray(d.Tags),
		d.Published, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update design idea: %w", err)
	}
	return nil
}

func (r *DesignIdeaRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM design_ideas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete design idea: %w", err)
	}
	return nil
}

func (r *DesignIdeaRepo) List(ctx context.Context, f repository.ContentFilter) ([]*entity.DesignIdea, int, error) {
	f.Featured = nil // las ideas no tienen destacado
	w := contentWhere(f, "title", "summary")
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM design_ideas`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count design ideas: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+designIdeaColumns+` FROM design_ideas`+w.sql()+` ORDER BY created_at DESC`+w.page(f.Page), w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list design ideas: %w", err)
	}
	defer rows.Close()
	var list []*entity.DesignIdea
	for rows.Next() {
		d, err := scanDesignIdea(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan design idea: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

func scanDesignIdea(row pgx.Row) (*entity.DesignIdea, error) {
	var d entity.DesignIdea
	err := row.Scan(&d.ID, &d.Title, &d.Slug, &d.Summary, &d.Content, &d.CoverImage, &d.Images, &d.Category, &d.Tags,
		&d.AuthorID, &d.Published, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

const portfolioColumns = `id, title, slug, description, client, location, category, tags, images, featured,
	completed_at, created_at, updated_at`

// PortfolioRepo proyectos del portafolio sobre PostgreSQL.
type PortfolioRepo struct {
	q Querier
}

// NewPortfolioRepository construye el adaptador.
func NewPortfolioRepository(q Querier) *PortfolioRepo {
	return &PortfolioRepo{q: q}
}

func (r *PortfolioRepo) Create(ctx context.Context, p *entity.PortfolioProject) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO portfolio_projects (`+portfolioColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Title, p.Slug, p.Description, p.Client, p.Location, p.Category, textArray(p.Tags), textArray(p.Images),
		p.Featured, p.CompletedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert portfolio project: %w", err)
	}
	return nil
}

func (r *PortfolioRepo) GetByID(ctx context.Context, id string) (*entity.PortfolioProject, error) {
	p, err := scanPortfolio(r.q.QueryRow(ctx, `SELECT `+portfolioColumns+` FROM portfolio_projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get portfolio project: %w", err)
	}
	return p, nil
}

func (r *PortfolioRepo) Update(ctx context.Context, p *entity.PortfolioProject) error {
	_, err := r.q.Exec(ctx, `
		UPDATE portfolio_projects SET title = $2, slug = $3, description = $4, client = $5, location = $6,
			category = $7, tags = $8, images = $9, featured = $10, completed_at = $11, updated_at = $12
		WHERE id = $1`,
		p.ID, p.Title, p.Slug, p.Description, p.Client, p.Location, p.Category, textArray(p.Tags), textArray(p.Images),
		p.Featured, p.CompletedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update portfolio project: %w", err)
	}
	return nil
}

func (r *PortfolioRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM portfolio_projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete portfolio project: %w", err)
	}
	return nil
}

// List destacados primero, luego por fecha de finalización.
func (r *PortfolioRepo) List(ctx context.Context, f repository.ContentFilter) ([]*entity.PortfolioProject, int, error) {
	f.Published = nil
	w := contentWhere(f, "title", "description", "client")
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM portfolio_projects`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count portfolio projects: %w", err)
	}
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_projects` + w.sql() +
		` ORDER BY featured DESC, completed_at DESC NULLS LAST, created_at DESC` + w.page(f.Page)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list portfolio projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.PortfolioProject
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan portfolio project: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

func scanPortfolio(row pgx.Row) (*entity.PortfolioProject, error) {
	var p entity.PortfolioProject
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Client, &p.Location, &p.Category, &p.Tags, &p.Images,
		&p.Featured, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
