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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría. Nombre repetido en el negocio devuelve ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO categories (id, business_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.BusinessID, c.Name, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT id, business_id, name, created_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.BusinessID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Rename cambia el nombre.
func (r *CategoryRepo) Rename(ctx context.Context, id, name string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE categories SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("rename category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una categoría.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ListByBusiness categorías del negocio en orden de alta.
func (r *CategoryRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, business_id, name, created_at FROM categories WHERE business_id = $1 ORDER BY created_at, id`, businessID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountByBusiness cantidad de categorías del negocio. FOR UPDATE no aplica a agregados,
// así que la guarda de "última categoría" bloquea las filas del negocio antes de contar.
func (r *CategoryRepo) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM categories WHERE business_id = $1 FOR UPDATE`, businessID)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	defer rows.Close()
	n := 0
	for rows.Next() {
		n++
	}
	return n, rows.Err()
}

// DeleteByBusiness elimina todas las categorías del negocio.
func (r *CategoryRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	return nil
}
