package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// ProductSort orden del listado de productos.
type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortName      ProductSort = "name"
)

// ProductFilter filtros tipados del catálogo.
type ProductFilter struct {
	CategoryID string
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	InStock    *bool
	Featured   *bool
	Sort       ProductSort
	Page       Page
}

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila (precio y stock) hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, int, error)
	SetCategories(ctx context.Context, productID string, categoryIDs []string) error
	Count(ctx context.Context) (int, error)
}
