package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
	"github.com/jhoicas/Interiores-api/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func newCategoryUC(f *fixture) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(f.categories, f.products, f.tx, nil)
}

// chain crea A → B → C (C hija de B, B hija de A).
func chain(t *testing.T, uc *usecase.CategoryUseCase) (a, b, c *dto.CategoryResponse) {
	t.Helper()
	ctx := context.Background()
	var err error
	a, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Sala"})
	require.NoError(t, err)
	b, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Sofás", ParentID: &a.ID})
	require.NoError(t, err)
	c, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Sofás cama", ParentID: &b.ID})
	require.NoError(t, err)
	return a, b, c
}

func TestCategory_CreateSetsSlugAndParent(t *testing.T) {
	uc := newCategoryUC(newFixture())
	a, b, _ := chain(t, uc)
	assert.Equal(t, "sofas", b.Slug)
	require.NotNil(t, b.ParentID)
	assert.Equal(t, a.ID, *b.ParentID)
	assert.Nil(t, a.ParentID)
}

func TestCategory_CreateUnknownParent(t *testing.T) {
	uc := newCategoryUC(newFixture())
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{
		Name:     "Huérfana",
		ParentID: ptr("8a7d8c1e-0000-4000-8000-000000000000"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategory_DuplicateName(t *testing.T) {
	uc := newCategoryUC(newFixture())
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Comedor"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "comedor"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCategory_UpdateRejectsCycles(t *testing.T) {
	uc := newCategoryUC(newFixture())
	ctx := context.Background()
	a, b, c := chain(t, uc)

	// A no puede colgar de su nieta C.
	_, err := uc.Update(ctx, a.ID, dto.UpdateCategoryRequest{ParentID: dto.Nullable[string]{Set: true, Value: &c.ID}})
	assert.ErrorIs(t, err, domain.ErrCircularReference)

	// Ni de sí misma.
	_, err = uc.Update(ctx, b.ID, dto.UpdateCategoryRequest{ParentID: dto.Nullable[string]{Set: true, Value: &b.ID}})
	assert.ErrorIs(t, err, domain.ErrCircularReference)

	// El árbol no cambió.
	got, err := uc.GetByID(ctx, a.ID, false, false)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
}

func TestCategory_UpdateMovesAndDetaches(t *testing.T) {
	uc := newCategoryUC(newFixture())
	ctx := context.Background()
	a, _, c := chain(t, uc)

	moved, err := uc.Update(ctx, c.ID, dto.UpdateCategoryRequest{ParentID: dto.Nullable[string]{Set: true, Value: &a.ID}})
	require.NoError(t, err)
	assert.Equal(t, a.ID, *moved.ParentID)

	root, err := uc.Update(ctx, c.ID, dto.UpdateCategoryRequest{ParentID: dto.Nullable[string]{Set: true}})
	require.NoError(t, err)
	assert.Nil(t, root.ParentID)

	// Sin parentId en el cuerpo el padre se conserva.
	renamed, err := uc.Update(ctx, c.ID, dto.UpdateCategoryRequest{Name: ptr("Camas plegables")})
	require.NoError(t, err)
	assert.Nil(t, renamed.ParentID)
	assert.Equal(t, "camas-plegables", renamed.Slug)
}

func TestCategory_DeleteWithChildren(t *testing.T) {
	uc := newCategoryUC(newFixture())
	ctx := context.Background()
	a, b, c := chain(t, uc)

	err := uc.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrHasChildren)

	require.NoError(t, uc.Delete(ctx, c.ID))
	require.NoError(t, uc.Delete(ctx, b.ID))
	require.NoError(t, uc.Delete(ctx, a.ID))

	_, err = uc.GetByID(ctx, a.ID, false, false)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCategory_ListRootsWithChildren(t *testing.T) {
	uc := newCategoryUC(newFixture())
	ctx := context.Background()
	a, b, _ := chain(t, uc)

	res, err := uc.List(ctx, dto.CategoryListQuery{ParentID: "null", IncludeChildren: true})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, a.ID, res.Items[0].ID)
	require.Len(t, res.Items[0].Children, 1)
	assert.Equal(t, b.ID, res.Items[0].Children[0].ID)
	assert.Equal(t, dto.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1}, res.Pagination)

	_, err = uc.List(ctx, dto.CategoryListQuery{ParentID: "no-uuid"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
