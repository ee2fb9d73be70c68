package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/plan"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
	"github.com/jhoicas/bravo-menu-api/pkg/logger"
)

// EntitlementUseCase reconcilia planes vencidos y administra concesiones de PRO.
// La reconciliación nunca hace fallar una lectura: si la escritura falla se registra y se devuelven los datos originales.
type EntitlementUseCase struct {
	repo repository.BusinessRepository
	log  *logger.Logger
	now  ports.Clock
	loc  *time.Location
}

// NewEntitlementUseCase construye el caso de uso. loc es la zona horaria de los negocios.
func NewEntitlementUseCase(repo repository.BusinessRepository, log *logger.Logger, now ports.Clock, loc *time.Location) *EntitlementUseCase {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &EntitlementUseCase{repo: repo, log: log.Component("entitlement"), now: now, loc: loc}
}

// Now hora actual en la zona de los negocios.
func (uc *EntitlementUseCase) Now() time.Time {
	return uc.now().In(uc.loc)
}

// ReconcileList degrada en una sola escritura todos los PRO vencidos de la lista.
// Devuelve copias con el cambio aplicado; ante error de escritura devuelve la lista original.
func (uc *EntitlementUseCase) ReconcileList(ctx context.Context, list []*entity.Business) []*entity.Business {
	now := uc.now()
	var ids []string
	for _, b := range list {
		if plan.IsExpired(b, now) {
			ids = append(ids, b.ID)
		}
	}
	if len(ids) == 0 {
		return list
	}
	if _, err := uc.repo.DowngradeExpired(ctx, ids, now); err != nil {
		uc.log.Warn().Err(err).Int("count", len(ids)).Msg("no se pudieron degradar planes vencidos")
		return list
	}
	out := make([]*entity.Business, len(list))
	for i, b := range list {
		if plan.IsExpired(b, now) {
			c := b.Clone()
			plan.Downgrade(c)
			out[i] = c
			continue
		}
		out[i] = b
	}
	return out
}

// ReconcileOne igual que ReconcileList para un único negocio.
func (uc *EntitlementUseCase) ReconcileOne(ctx context.Context, b *entity.Business) *entity.Business {
	now := uc.now()
	if !plan.IsExpired(b, now) {
		return b
	}
	if _, err := uc.repo.DowngradeExpired(ctx, []string{b.ID}, now); err != nil {
		uc.log.Warn().Err(err).Str("business_id", b.ID).Msg("no se pudo degradar el plan vencido")
		return b
	}
	c := b.Clone()
	plan.Downgrade(c)
	return c
}

// Sweep degrada todos los PRO vencidos de la base (tarea programada / CLI).
func (uc *EntitlementUseCase) Sweep(ctx context.Context) (int64, error) {
	now := uc.now()
	ids, err := uc.repo.ListExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("listar vencidos: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := uc.repo.DowngradeExpired(ctx, ids, now)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int64("downgraded", n).Msg("planes vencidos degradados")
	return n, nil
}

// PlanState plan y vencimiento de un negocio.
type PlanState struct {
	Plan      entity.Plan `json:"plan"`
	ExpiresAt *time.Time  `json:"plan_expires_at"`
}

// Grant concede PRO por `days` días a partir del fin del día de hoy.
func (uc *EntitlementUseCase) Grant(ctx context.Context, id string, days int) (*dto.TransitionResponse, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: días debe ser mayor que cero", domain.ErrInvalidInput)
	}
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	expires := plan.GrantExpiry(uc.now(), days, uc.loc)
	t := Begin(PlanState{Plan: b.Plan, ExpiresAt: b.PlanExpiresAt}, PlanState{Plan: entity.PlanPro, ExpiresAt: &expires})
	t.Apply(func() error { return uc.repo.SetPlan(ctx, id, entity.PlanPro, &expires) })
	if t.Err != nil {
		uc.log.Error().Err(t.Err).Str("business_id", id).Msg("concesión de PRO revertida")
	}
	return toTransitionResponse(t), nil
}

// Revoke devuelve el negocio a FREE.
func (uc *EntitlementUseCase) Revoke(ctx context.Context, id string) (*dto.TransitionResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	t := Begin(PlanState{Plan: b.Plan, ExpiresAt: b.PlanExpiresAt}, PlanState{Plan: entity.PlanFree})
	t.Apply(func() error { return uc.repo.SetPlan(ctx, id, entity.PlanFree, nil) })
	return toTransitionResponse(t), nil
}
