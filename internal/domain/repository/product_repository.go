package repository

import (
	"context"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Patch(ctx context.Context, id string, patch entity.ProductPatch) error
	Delete(ctx context.Context, id string) error
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Product, error)
	CountByBusiness(ctx context.Context, businessID string) (int, error)
	// ClearCategory deja sin categoría los productos de una categoría eliminada.
	ClearCategory(ctx context.Context, categoryID string) error
	DeleteByBusiness(ctx context.Context, businessID string) error
}
