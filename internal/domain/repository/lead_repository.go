package repository

import (
	"context"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// LeadRepository define el puerto de persistencia para Lead (DIP). Solo alta y lectura.
type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead) error
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Lead, error)
	DeleteByBusiness(ctx context.Context, businessID string) error
}
