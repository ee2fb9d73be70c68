package repository

import (
	"context"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// BannerRepository define el puerto de persistencia para Banner (DIP).
type BannerRepository interface {
	Create(ctx context.Context, b *entity.Banner) error
	GetByID(ctx context.Context, id string) (*entity.Banner, error)
	Patch(ctx context.Context, id string, patch entity.BannerPatch) error
	Delete(ctx context.Context, id string) error
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Banner, error)
	// IncrementClicks suma uno al contador de clics y devuelve el nuevo valor.
	IncrementClicks(ctx context.Context, id string) (int, error)
	DeleteByBusiness(ctx context.Context, businessID string) error
}
