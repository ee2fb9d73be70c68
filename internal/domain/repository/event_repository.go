package repository

import (
	"context"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// EventRepository define el puerto de persistencia para Event (DIP).
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	Patch(ctx context.Context, id string, patch entity.EventPatch) error
	Delete(ctx context.Context, id string) error
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Event, error)
	// IncrementInterest suma uno al contador de interesados y devuelve el nuevo valor.
	IncrementInterest(ctx context.Context, id string) (int, error)
	DeleteByBusiness(ctx context.Context, businessID string) error
}
