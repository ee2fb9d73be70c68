package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, business_id, category_id, name, description, price, image_url, is_highlighted, is_visible, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	if err := row.Scan(&p.ID, &p.BusinessID, &categoryID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.IsHighlighted, &p.IsVisible, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.CategoryID = derefString(categoryID)
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, business_id, category_id, name, description, price, image_url, is_highlighted, is_visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.BusinessID, nullString(p.CategoryID), p.Name, p.Description, p.Price, p.ImageURL,
		p.IsHighlighted, p.IsVisible, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Patch escribe solo las columnas presentes.
func (r *ProductRepo) Patch(ctx context.Context, id string, patch entity.ProductPatch) error {
	p := newPatch(id)
	if patch.CategoryID != nil {
		p.set("category_id", nullString(*patch.CategoryID))
	}
	if patch.Name != nil {
		p.set("name", *patch.Name)
	}
	if patch.Description != nil {
		p.set("description", *patch.Description)
	}
	if patch.Price != nil {
		p.set("price", *patch.Price)
	}
	if patch.ImageURL != nil {
		p.set("image_url", *patch.ImageURL)
	}
	if patch.IsHighlighted != nil {
		p.set("is_highlighted", *patch.IsHighlighted)
	}
	if patch.IsVisible != nil {
		p.set("is_visible", *patch.IsVisible)
	}
	if p.empty() {
		return nil
	}
	cmd, err := r.q.Exec(ctx, p.sql("products", true), p.args...)
	if err != nil {
		return fmt.Errorf("patch product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ListByBusiness lista los productos del negocio en orden de alta.
func (r *ProductRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products WHERE business_id = $1 ORDER BY created_at, id`, businessID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByBusiness cantidad de productos del negocio (topes del plan).
func (r *ProductRepo) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE business_id = $1`, businessID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// ClearCategory deja sin categoría los productos de la categoría.
func (r *ProductRepo) ClearCategory(ctx context.Context, categoryID string) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET category_id = NULL, updated_at = now() WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("clear category: %w", err)
	}
	return nil
}

// DeleteByBusiness elimina todos los productos del negocio.
func (r *ProductRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE business_id = $1`, businessID)
	if err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	return nil
}
