package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
	"github.com/jhoicas/Interiores-api/internal/domain"
)

func newProductRequest(name string, price int64) dto.CreateProductRequest {
	return dto.CreateProductRequest{Name: name, Description: "Madera de roble", Price: decimal.NewFromInt(price)}
}

func TestProduct_CreateDefaultsAndCategories(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cats := newCategoryUC(f)
	sala, err := cats.Create(ctx, dto.CreateCategoryRequest{Name: "Sala"})
	require.NoError(t, err)

	uc := usecase.NewProductUseCase(f.products, f.tx, nil)
	in := newProductRequest("Mesa de centro", 350)
	in.CategoryIDs = []string{sala.ID, sala.ID}
	in.Dimensions = json.RawMessage(`{"width":90,"depth":60,"unit":"cm"}`)
	p, err := uc.Create(ctx, in)
	require.NoError(t, err)

	assert.True(t, p.InStock, "en stock por defecto")
	assert.Contains(t, p.Slug, "mesa-de-centro-")
	assert.Equal(t, []string{sala.ID}, p.CategoryIDs)

	in.CategoryIDs = []string{"8a7d8c1e-0000-4000-8000-000000000000"}
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProduct_SalePriceMustBeLower(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := usecase.NewProductUseCase(f.products, f.tx, nil)

	in := newProductRequest("Silla", 100)
	in.SalePrice = ptr(decimal.NewFromInt(100))
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in.SalePrice = ptr(decimal.NewFromInt(80))
	p, err := uc.Create(ctx, in)
	require.NoError(t, err)

	// Bajar el precio de lista por debajo de la oferta también se rechaza.
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Price: ptr(decimal.NewFromInt(70))})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// salePrice: null la elimina.
	out, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{SalePrice: dto.Nullable[decimal.Decimal]{Set: true}})
	require.NoError(t, err)
	assert.Nil(t, out.SalePrice)
}

func TestProduct_RejectsNonObjectDimensions(t *testing.T) {
	f := newFixture()
	uc := usecase.NewProductUseCase(f.products, f.tx, nil)
	in := newProductRequest("Estante", 200)
	in.Dimensions = json.RawMessage(`[1,2,3]`)
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProduct_ListPaginationAndFilters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	uc := usecase.NewProductUseCase(f.products, f.tx, nil)
	for i := 0; i < 25; i++ {
		_, err := uc.Create(ctx, newProductRequest(fmt.Sprintf("Producto %02d", i), int64(100+i)))
		require.NoError(t, err)
	}

	res, err := uc.List(ctx, dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 10)
	assert.Equal(t, dto.Pagination{Page: 1, Limit: 10, Total: 25, Pages: 3}, res.Pagination)

	cheap, err := uc.List(ctx, dto.ProductListQuery{MaxPrice: "104"})
	require.NoError(t, err)
	assert.Equal(t, 5, cheap.Pagination.Total)

	_, err = uc.List(ctx, dto.ProductListQuery{MinPrice: "500", MaxPrice: "100"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProduct_ListUsesCacheAndWritesInvalidate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cache := &memCache{}
	uc := usecase.NewProductUseCase(f.products, f.tx, cache)

	_, err := uc.Create(ctx, newProductRequest("Lámpara", 60))
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidation)

	first, err := uc.List(ctx, dto.ProductListQuery{})
	require.NoError(t, err)
	second, err := uc.List(ctx, dto.ProductListQuery{PageQuery: dto.PageQuery{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits, "la consulta normalizada es la misma clave")
	assert.Equal(t, first.Pagination, second.Pagination)

	_, err = uc.Create(ctx, newProductRequest("Alfombra", 80))
	require.NoError(t, err)
	third, err := uc.List(ctx, dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, third.Pagination.Total)
	assert.Equal(t, 1, cache.hits)
}

func TestProduct_GetAndDeleteMissing(t *testing.T) {
	f := newFixture()
	uc := usecase.NewProductUseCase(f.products, f.tx, nil)
	_, err := uc.GetByID(context.Background(), "8a7d8c1e-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), "8a7d8c1e-0000-4000-8000-000000000000"), domain.ErrNotFound)
}

func TestReview_OnePerUserAndOwnership(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	products := usecase.NewProductUseCase(f.products, f.tx, nil)
	p, err := products.Create(ctx, newProductRequest("Sofá", 1000))
	require.NoError(t, err)

	uc := usecase.NewReviewUseCase(f.reviews, f.products, nil)
	r, err := uc.Create(ctx, customer, p.ID, dto.CreateReviewRequest{Rating: 4, Comment: "Muy cómodo"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", r.UserName)

	_, err = uc.Create(ctx, customer, p.ID, dto.CreateReviewRequest{Rating: 1})
	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Create(ctx, otherCustomer, p.ID, dto.CreateReviewRequest{Rating: 2})
	require.NoError(t, err)

	list, err := uc.List(ctx, p.ID, dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, list.ReviewCount)
	assert.InDelta(t, 3.0, list.AverageRating, 0.001)

	_, err = uc.Update(ctx, otherCustomer, p.ID, r.ID, dto.UpdateReviewRequest{Rating: ptr(1)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(ctx, otherCustomer, p.ID, r.ID), domain.ErrForbidden)

	updated, err := uc.Update(ctx, customer, p.ID, r.ID, dto.UpdateReviewRequest{Rating: ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	require.NoError(t, uc.Delete(ctx, admin, p.ID, r.ID))

	_, err = uc.Create(ctx, customer, "8a7d8c1e-0000-4000-8000-000000000000", dto.CreateReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
