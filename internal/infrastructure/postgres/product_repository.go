package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productColumns incluye los IDs de categoría agregados desde product_categories.
const productColumns = `
	p.id, p.name, p.slug, p.description, p.price, p.sale_price, p.in_stock, p.featured,
	p.images, p.dimensions, p.materials, p.colors,
	COALESCE((SELECT array_agg(pc.category_id::text ORDER BY pc.category_id)
	          FROM product_categories pc WHERE pc.product_id = p.id), '{}'),
	p.created_at, p.updated_at`

// precio efectivo: la oferta si existe, si no el de lista
const effectivePrice = `COALESCE(p.sale_price, p.price)`

var productOrder = map[repository.ProductSort]string{
	repository.SortNewest:    "p.created_at DESC",
	repository.SortPriceAsc:  effectivePrice + " ASC, p.created_at DESC",
	repository.SortPriceDesc: effectivePrice + " DESC, p.created_at DESC",
	repository.SortName:      "p.name ASC",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Los vínculos con categorías van por SetCategories.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, slug, description, price, sale_price, in_stock, featured,
			images, dimensions, materials, colors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.SalePrice, p.InStock, p.Featured,
		textArray(p.Images), jsonOrNil(p.Dimensions), textArray(p.Materials), textArray(p.Colors),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1 FOR UPDATE OF p`, id)
}

func (r *ProductRepo) getOne(ctx context.Context, query, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update reescribe los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, slug = $3, description = $4, price = $5, sale_price = $6,
			in_stock = $7, featured = $8, images = $9, dimensions = $10, materials = $11, colors = $12,
			updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.SalePrice, p.InStock, p.Featured,
		textArray(p.Images), jsonOrNil(p.Dimensions), textArray(p.Materials), textArray(p.Colors),
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina el producto; order_items.product_id queda en NULL y conserva nombre y precio.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List aplica filtros, orden y paginación.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	var w where
	if f.CategoryID != "" {
		w.add("EXISTS (SELECT 1 FROM product_categories pc WHERE pc.product_id = p.id AND pc.category_id = " + w.arg(f.CategoryID) + ")")
	}
	if f.Search != "" {
		s := w.arg(likePattern(f.Search))
		w.add("(p.name ILIKE " + s + " OR p.description ILIKE " + s + ")")
	}
	if f.MinPrice != nil {
		w.add(effectivePrice + " >= " + w.arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		w.add(effectivePrice + " <= " + w.arg(*f.MaxPrice))
	}
	if f.InStock != nil {
		w.add("p.in_stock = " + w.arg(*f.InStock))
	}
	if f.Featured != nil {
		w.add("p.featured = " + w.arg(*f.Featured))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	order, ok := productOrder[f.Sort]
	if !ok {
		order = productOrder[repository.SortNewest]
	}
	query := `SELECT ` + productColumns + ` FROM products p` + w.sql() + ` ORDER BY ` + order + w.page(f.Page)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// SetCategories reemplaza los vínculos producto-categoría.
func (r *ProductRepo) SetCategories(ctx context.Context, productID string, categoryIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_categories WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product categories: %w", err)
	}
	if len(categoryIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO product_categories (product_id, category_id)
		SELECT $1, unnest($2::uuid[])`, productID, categoryIDs)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría inexistente", domain.ErrValidation)
		}
		return fmt.Errorf("insert product categories: %w", err)
	}
	return nil
}

// Count total de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p    entity.Product
		dims []byte
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.SalePrice, &p.InStock, &p.Featured,
		&p.Images, &dims, &p.Materials, &p.Colors, &p.CategoryIDs,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(dims) > 0 {
		p.Dimensions = json.RawMessage(dims)
	}
	return &p, nil
}

// jsonOrNil NULL en vez de JSON vacío.
func jsonOrNil(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
