package repository

import (
	"context"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Category, error)
	CountByBusiness(ctx context.Context, businessID string) (int, error)
	DeleteByBusiness(ctx context.Context, businessID string) error
}
