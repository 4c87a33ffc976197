package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/catalog"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
	"github.com/jhoicas/Interiores-api/pkg/slug"
)

// productsPerCategory productos embebidos con includeProducts.
const productsPerCategory = 20

// CategoryUseCase CRUD de categorías con la protección del árbol (sin ciclos, sin borrar con hijas).
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
	tx       TxRunner
	cache    ports.ListCache
}

// NewCategoryUseCase construye el caso de uso. cache puede ser nil.
func NewCategoryUseCase(repo repository.CategoryRepository, products repository.ProductRepository, tx TxRunner, cache ports.ListCache) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products, tx: tx, cache: cache}
}

// Create crea una categoría. El padre, si se indica, debe existir.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	now := time.Now().UTC()
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ParentID != nil && *in.ParentID != "" {
		parent := *in.ParentID
		cat.ParentID = &parent
	}

	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if err := ensureUniqueCategoryName(ctx, r.Categories, name, ""); err != nil {
			return err
		}
		if cat.ParentID != nil {
			parent, err := r.Categories.GetForUpdate(ctx, *cat.ParentID)
			if err != nil {
				return err
			}
			if parent == nil {
				return validation.FieldErr("parentId", "la categoría padre no existe")
			}
		}
		return r.Categories.Create(ctx, cat)
	})
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(cat)
	return &out, nil
}

// GetByID obtiene una categoría, opcionalmente con sus hijas y productos.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string, includeChildren, includeProducts bool) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.expand(ctx, cat, includeChildren, includeProducts); err != nil {
		return nil, err
	}
	out := toCategoryResponse(cat)
	return &out, nil
}

// List lista categorías. parentId=null (o root) filtra las raíces.
func (uc *CategoryUseCase) List(ctx context.Context, q dto.CategoryListQuery) (*dto.ListResponse[dto.CategoryResponse], error) {
	q.Normalize()
	f := repository.CategoryFilter{Search: strings.TrimSpace(q.Search), Page: q.ToPage()}
	switch q.ParentID {
	case "":
	case "null", "root":
		root := ""
		f.ParentID = &root
	default:
		if _, err := uuid.Parse(q.ParentID); err != nil {
			return nil, validation.FieldErr("parentId", "debe ser un UUID válido o null")
		}
		parent := q.ParentID
		f.ParentID = &parent
	}

	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		if err := uc.expand(ctx, c, q.IncludeChildren, q.IncludeProducts); err != nil {
			return nil, err
		}
		items = append(items, toCategoryResponse(c))
	}
	return &dto.ListResponse[dto.CategoryResponse]{Items: items, Pagination: dto.NewPagination(q.PageQuery, total)}, nil
}

// Update modifica una categoría. Un cambio de padre se valida contra ciclos dentro de la
// misma transacción, bloqueando las filas recorridas.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var cat *entity.Category
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		var err error
		cat, err = r.Categories.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cat == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if !strings.EqualFold(name, cat.Name) {
				if err := ensureUniqueCategoryName(ctx, r.Categories, name, cat.ID); err != nil {
					return err
				}
			}
			cat.Name = name
			cat.Slug = slug.Make(name)
		}
		if in.Description != nil {
			cat.Description = *in.Description
		}
		if in.Image != nil {
			cat.Image = *in.Image
		}
		if in.ParentID.Set {
			if err := uc.reparent(ctx, r.Categories, cat, in.ParentID.Value); err != nil {
				return err
			}
		}
		cat.UpdatedAt = time.Now().UTC()
		return r.Categories.Update(ctx, cat)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	out := toCategoryResponse(cat)
	return &out, nil
}

func (uc *CategoryUseCase) reparent(ctx context.Context, repo repository.CategoryRepository, cat *entity.Category, parentID *string) error {
	if parentID == nil || *parentID == "" {
		cat.ParentID = nil
		return nil
	}
	if _, err := uuid.Parse(*parentID); err != nil {
		return validation.FieldErr("parentId", "debe ser un UUID válido")
	}
	lookup := func(ctx context.Context, id string) (*string, bool, error) {
		c, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, false, err
		}
		if c == nil {
			return nil, false, nil
		}
		return c.ParentID, true, nil
	}
	err := catalog.ValidateParent(ctx, cat.ID, *parentID, lookup)
	if errors.Is(err, domain.ErrNotFound) {
		return validation.FieldErr("parentId", "la categoría padre no existe")
	}
	if err != nil {
		return err
	}
	p := *parentID
	cat.ParentID = &p
	return nil
}

// Delete elimina una categoría sin hijas.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		cat, err := r.Categories.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cat == nil {
			return domain.ErrNotFound
		}
		n, err := r.Categories.CountChildren(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrHasChildren
		}
		return r.Categories.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *CategoryUseCase) expand(ctx context.Context, c *entity.Category, children, products bool) error {
	if children {
		list, err := uc.repo.ListChildren(ctx, c.ID)
		if err != nil {
			return err
		}
		c.Children = list
	}
	if products {
		list, _, err := uc.products.List(ctx, repository.ProductFilter{
			CategoryID: c.ID,
			Sort:       repository.SortNewest,
			Page:       repository.Page{Take: productsPerCategory},
		})
		if err != nil {
			return err
		}
		c.Products = list
	}
	return nil
}

func (uc *CategoryUseCase) invalidate(ctx context.Context) {
	invalidateCache(ctx, uc.cache)
}

func ensureUniqueCategoryName(ctx context.Context, repo repository.CategoryRepository, name, selfID string) error {
	existing, err := repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe una categoría llamada %q", domain.ErrDuplicate, name)
	}
	return nil
}
