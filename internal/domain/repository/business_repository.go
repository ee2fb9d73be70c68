package repository

import (
	"context"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business (DIP).
// GetByID y GetByPhone devuelven (nil, nil) si no existe.
type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Business, error)
	List(ctx context.Context, includeHidden bool) ([]*entity.Business, error)
	Patch(ctx context.Context, id string, patch entity.BusinessPatch) error
	Delete(ctx context.Context, id string) error

	// DowngradeExpired pasa a FREE los negocios indicados solo si siguen PRO y vencidos a `now`.
	// Devuelve cuántas filas cambiaron.
	DowngradeExpired(ctx context.Context, ids []string, now time.Time) (int64, error)
	// ListExpired devuelve los IDs de negocios PRO vencidos a `now`.
	ListExpired(ctx context.Context, now time.Time) ([]string, error)
	SetPlan(ctx context.Context, id string, plan entity.Plan, expiresAt *time.Time) error
	SetVisibility(ctx context.Context, id string, visible bool) error

	// AddRating incorpora una calificación de forma atómica y devuelve el promedio y conteo resultantes.
	AddRating(ctx context.Context, id string, stars int) (float64, int, error)
	IncrementStats(ctx context.Context, id string, qr bool) error
}
