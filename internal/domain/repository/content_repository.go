package repository

import (
	"context"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// ContentFilter filtros comunes a ideas de diseño y portafolio.
type ContentFilter struct {
	Category string
	Tag      string
	Search   string
	// Published: nil = todos (equipo interno); true = solo publicados.
	Published *bool
	Featured  *bool
	Page      Page
}

// DesignIdeaRepository puerto de persistencia para ideas de diseño.
type DesignIdeaRepository interface {
	Create(ctx context.Context, d *entity.DesignIdea) error
	GetByID(ctx context.Context, id string) (*entity.DesignIdea, error)
	Update(ctx context.Context, d *entity.DesignIdea) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ContentFilter) ([]*entity.DesignIdea, int, error)
}

// PortfolioRepository puerto de persistencia para proyectos del portafolio.
type PortfolioRepository interface {
	Create(ctx context.Context, p *entity.PortfolioProject) error
	GetByID(ctx context.Context, id string) (*entity.PortfolioProject, error)
	Update(ctx context.Context, p *entity.PortfolioProject) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ContentFilter) ([]*entity.PortfolioProject, int, error)
}
