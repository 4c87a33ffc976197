package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
	"github.com/jhoicas/Interiores-api/pkg/slug"
)

// ProductUseCase CRUD del catálogo de productos. Los listados pasan por la caché si existe.
type ProductUseCase struct {
	repo  repository.ProductRepository
	tx    TxRunner
	cache ports.ListCache
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner, cache ports.ListCache) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx, cache: cache}
}

// Create crea un producto y sus vínculos con categorías en una sola transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := checkSalePrice(in.Price, in.SalePrice); err != nil {
		return nil, err
	}
	if err := checkDimensions(in.Dimensions); err != nil {
		return nil, err
	}
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	now := time.Now().UTC()
	id := uuid.New().String()
	product := &entity.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Slug:        productSlug(in.Name, id),
		Description: in.Description,
		Price:       in.Price,
		SalePrice:   in.SalePrice,
		InStock:     inStock,
		Featured:    in.Featured,
		Images:      in.Images,
		Dimensions:  in.Dimensions,
		Materials:   in.Materials,
		Colors:      in.Colors,
		CategoryIDs: dedupe(in.CategoryIDs),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if err := ensureCategoriesExist(ctx, r.Categories, product.CategoryIDs); err != nil {
			return err
		}
		if err := r.Products.Create(ctx, product); err != nil {
			return err
		}
		return r.Products.SetCategories(ctx, product.ID, product.CategoryIDs)
	})
	if err != nil {
		return nil, err
	}
	invalidateCache(ctx, uc.cache)
	out := toProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(product)
	return &out, nil
}

// List lista productos con filtros, orden y paginación.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) (*dto.ListResponse[dto.ProductResponse], error) {
	q.Normalize()
	f, err := productFilter(q)
	if err != nil {
		return nil, err
	}

	var cached dto.ListResponse[dto.ProductResponse]
	if uc.cache != nil {
		hit, err := uc.cache.Get(ctx, q, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("cache de productos no disponible")
		} else if hit {
			return &cached, nil
		}
	}

	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	out := &dto.ListResponse[dto.ProductResponse]{Items: items, Pagination: dto.NewPagination(q.PageQuery, total)}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, q, out); err != nil {
			log.Warn().Err(err).Msg("no se pudo guardar el listado en cache")
		}
	}
	return out, nil
}

// Update modifica un producto; si cambian las categorías se reescriben sus vínculos.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		var err error
		product, err = r.Products.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			product.Name = strings.TrimSpace(*in.Name)
			product.Slug = productSlug(product.Name, product.ID)
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.SalePrice.Set {
			product.SalePrice = in.SalePrice.Value
		}
		if err := checkSalePrice(product.Price, product.SalePrice); err != nil {
			return err
		}
		if in.InStock != nil {
			product.InStock = *in.InStock
		}
		if in.Featured != nil {
			product.Featured = *in.Featured
		}
		if in.Images != nil {
			product.Images = *in.Images
		}
		if len(in.Dimensions) > 0 {
			if err := checkDimensions(in.Dimensions); err != nil {
				return err
			}
			product.Dimensions = in.Dimensions
		}
		if in.Materials != nil {
			product.Materials = *in.Materials
		}
		if in.Colors != nil {
			product.Colors = *in.Colors
		}
		product.UpdatedAt = time.Now().UTC()
		if err := r.Products.Update(ctx, product); err != nil {
			return err
		}
		if in.CategoryIDs != nil {
			ids := dedupe(*in.CategoryIDs)
			if err := ensureCategoriesExist(ctx, r.Categories, ids); err != nil {
				return err
			}
			if err := r.Products.SetCategories(ctx, product.ID, ids); err != nil {
				return err
			}
			product.CategoryIDs = ids
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	invalidateCache(ctx, uc.cache)
	out := toProductResponse(product)
	return &out, nil
}

// Delete elimina un producto. Las líneas de pedidos conservan nombre y precio congelados.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateCache(ctx, uc.cache)
	return nil
}

func productFilter(q dto.ProductListQuery) (repository.ProductFilter, error) {
	f := repository.ProductFilter{
		CategoryID: q.Category,
		Search:     strings.TrimSpace(q.Search),
		Sort:       repository.ProductSort(q.Sort),
		Page:       q.ToPage(),
	}
	if f.Sort == "" {
		f.Sort = repository.SortNewest
	}
	if q.MinPrice != "" {
		v, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return f, validation.FieldErr("minPrice", "debe ser numérico")
		}
		f.MinPrice = &v
	}
	if q.MaxPrice != "" {
		v, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return f, validation.FieldErr("maxPrice", "debe ser numérico")
		}
		f.MaxPrice = &v
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return f, validation.FieldErr("minPrice", "no puede ser mayor que maxPrice")
	}
	f.InStock = parseBoolFilter(q.InStock)
	f.Featured = parseBoolFilter(q.Featured)
	return f, nil
}

func parseBoolFilter(s string) *bool {
	switch s {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

func checkSalePrice(price decimal.Decimal, sale *decimal.Decimal) error {
	if sale != nil && sale.GreaterThanOrEqual(price) {
		return validation.FieldErr("salePrice", "debe ser menor que price")
	}
	return nil
}

func checkDimensions(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return validation.FieldErr("dimensions", "debe ser un objeto JSON")
	}
	return nil
}

func ensureCategoriesExist(ctx context.Context, repo repository.CategoryRepository, ids []string) error {
	for _, id := range ids {
		c, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return validation.FieldErr("categoryIds", "la categoría "+id+" no existe")
		}
	}
	return nil
}

// productSlug nombre legible más un prefijo del ID (los nombres de producto pueden repetirse).
func productSlug(name, id string) string {
	return slug.Make(name) + "-" + strings.SplitN(id, "-", 2)[0]
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func invalidateCache(ctx context.Context, cache ports.ListCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar la cache de productos")
	}
}
