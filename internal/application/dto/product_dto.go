package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest alta de categoría. ParentID vacío = raíz.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"max=1000"`
	Image       string  `json:"image" validate:"omitempty,url"`
	ParentID    *string `json:"parentId" validate:"omitempty,uuid"`
}

// UpdateCategoryRequest PATCH. parentId: null mueve la categoría a la raíz.
type UpdateCategoryRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Image       *string          `json:"image" validate:"omitempty,url"`
	ParentID    Nullable[string] `json:"parentId"`
}

// CategoryListQuery filtros de GET /api/categories.
type CategoryListQuery struct {
	PageQuery
	ParentID        string `query:"parentId"`
	Search          string `query:"search" validate:"max=100"`
	IncludeChildren bool   `query:"includeChildren"`
	IncludeProducts bool   `query:"includeProducts"`
}

// CategoryResponse salida de una categoría, con hijos/productos si se pidieron.
type CategoryResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description,omitempty"`
	Image       string             `json:"image,omitempty"`
	ParentID    *string            `json:"parentId"`
	Children    []CategoryResponse `json:"children,omitempty"`
	Products    []ProductResponse  `json:"products,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// CreateProductRequest alta de producto. InStock ausente = true.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=2,max=200"`
	Description string           `json:"description" validate:"max=5000"`
	Price       decimal.Decimal  `json:"price" validate:"gt=0"`
	SalePrice   *decimal.Decimal `json:"salePrice" validate:"omitempty,gt=0"`
	InStock     *bool            `json:"inStock"`
	Featured    bool             `json:"featured"`
	Images      []string         `json:"images" validate:"max=20,dive,url"`
	Dimensions  json.RawMessage  `json:"dimensions"`
	Materials   []string         `json:"materials" validate:"max=20,dive,min=1,max=100"`
	Colors      []string         `json:"colors" validate:"max=20,dive,min=1,max=50"`
	CategoryIDs []string         `json:"categoryIds" validate:"max=20,dive,uuid"`
}

// UpdateProductRequest PATCH; salePrice: null elimina el precio de oferta.
type UpdateProductRequest struct {
	Name        *string                   `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string                   `json:"description" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal          `json:"price" validate:"omitempty,gt=0"`
	SalePrice   Nullable[decimal.Decimal] `json:"salePrice"`
	InStock     *bool                     `json:"inStock"`
	Featured    *bool                     `json:"featured"`
	Images      *[]string                 `json:"images" validate:"omitempty,max=20,dive,url"`
	Dimensions  json.RawMessage           `json:"dimensions"`
	Materials   *[]string                 `json:"materials" validate:"omitempty,max=20,dive,min=1,max=100"`
	Colors      *[]string                 `json:"colors" validate:"omitempty,max=20,dive,min=1,max=50"`
	CategoryIDs *[]string                 `json:"categoryIds" validate:"omitempty,max=20,dive,uuid"`
}

// ProductListQuery filtros de GET /api/products.
type ProductListQuery struct {
	PageQuery
	Category string `query:"category" validate:"omitempty,uuid"`
	Search   string `query:"search" validate:"max=100"`
	MinPrice string `query:"minPrice" validate:"omitempty,numeric"`
	MaxPrice string `query:"maxPrice" validate:"omitempty,numeric"`
	InStock  string `query:"inStock" validate:"omitempty,oneof=true false"`
	Featured string `query:"featured" validate:"omitempty,oneof=true false"`
	Sort     string `query:"sort" validate:"omitempty,oneof=newest price_asc price_desc name"`
}

// ProductResponse salida de producto.
type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	SalePrice   *decimal.Decimal `json:"salePrice"`
	InStock     bool             `json:"inStock"`
	Featured    bool             `json:"featured"`
	Images      []string         `json:"images"`
	Dimensions  json.RawMessage  `json:"dimensions,omitempty"`
	Materials   []string         `json:"materials"`
	Colors      []string         `json:"colors"`
	CategoryIDs []string         `json:"categoryIds"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// CreateReviewRequest reseña; rating entero 1..5.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// UpdateReviewRequest PATCH de reseña propia.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// ReviewResponse salida de reseña.
type ReviewResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewListResponse listado de reseñas con el promedio del producto.
type ReviewListResponse struct {
	Items         []ReviewResponse `json:"items"`
	Pagination    Pagination       `json:"pagination"`
	AverageRating float64          `json:"averageRating"`
	ReviewCount   int              `json:"reviewCount"`
}
