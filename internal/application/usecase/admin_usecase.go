package usecase

import (
	"context"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/plan"
)

// AdminUseCase panel de súper administración de la plataforma.
type AdminUseCase struct {
	businesses *BusinessUseCase
	ent        *EntitlementUseCase
	proPrice   int
}

// NewAdminUseCase construye el caso de uso. proPrice es el precio mensual del plan PRO en CUP.
func NewAdminUseCase(businesses *BusinessUseCase, ent *EntitlementUseCase, proPrice int) *AdminUseCase {
	return &AdminUseCase{businesses: businesses, ent: ent, proPrice: proPrice}
}

// List todos los negocios (incluidos ocultos) reconciliados y con el tiempo restante de PRO.
func (uc *AdminUseCase) List(ctx context.Context) ([]dto.AdminBusinessItem, error) {
	list, err := uc.reconciled(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.ent.Now()
	out := make([]dto.AdminBusinessItem, 0, len(list))
	for _, b := range list {
		out = append(out, dto.AdminBusinessItem{
			ID:            b.ID,
			Name:          b.Name,
			Phone:         b.Phone,
			Province:      b.Province,
			Municipality:  b.Municipality,
			Plan:          string(b.Plan),
			PlanExpiresAt: b.PlanExpiresAt,
			Remaining:     plan.RemainingLabel(b.PlanExpiresAt, now),
			IsVisible:     b.IsVisible,
			Role:          string(b.Role),
			Visits:        b.Stats.Visits,
			CreatedAt:     b.CreatedAt,
		})
	}
	return out, nil
}

// Stats totales por plan y facturación mensual estimada.
func (uc *AdminUseCase) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	list, err := uc.reconciled(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.AdminStatsResponse{Total: len(list)}
	for _, b := range list {
		if b.Plan == entity.PlanPro {
			out.Pro++
		} else {
			out.Free++
		}
		if !b.IsVisible {
			out.Hidden++
		}
	}
	out.EstimatedRevenue = out.Pro * uc.proPrice
	return out, nil
}

// GrantPro concede PRO por días.
func (uc *AdminUseCase) GrantPro(ctx context.Context, id string, days int) (*dto.TransitionResponse, error) {
	return uc.ent.Grant(ctx, id, days)
}

// RevokePro devuelve el negocio a FREE.
func (uc *AdminUseCase) RevokePro(ctx context.Context, id string) (*dto.TransitionResponse, error) {
	return uc.ent.Revoke(ctx, id)
}

// SetVisibility oculta o muestra un negocio en el directorio (transición en dos fases).
func (uc *AdminUseCase) SetVisibility(ctx context.Context, id string, visible bool) (*dto.TransitionResponse, error) {
	repo := uc.businesses.repos.Businesses
	b, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	t := Begin(b.IsVisible, visible)
	t.Apply(func() error { return repo.SetVisibility(ctx, id, visible) })
	return toTransitionResponse(t), nil
}

// Delete elimina un negocio con todo su contenido.
func (uc *AdminUseCase) Delete(ctx context.Context, id string) error {
	return uc.businesses.Delete(ctx, id)
}

func (uc *AdminUseCase) reconciled(ctx context.Context) ([]*entity.Business, error) {
	list, err := uc.businesses.repos.Businesses.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return uc.ent.ReconcileList(ctx, list), nil
}
