package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

// LeadUseCase contactos captados en el menú público.
type LeadUseCase struct {
	repo       repository.LeadRepository
	businesses *BusinessUseCase
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository, businesses *BusinessUseCase) *LeadUseCase {
	return &LeadUseCase{repo: repo, businesses: businesses}
}

// Create registra un contacto para un negocio visible.
func (uc *LeadUseCase) Create(ctx context.Context, businessID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if _, err := uc.businesses.publicBusiness(ctx, businessID); err != nil {
		return nil, err
	}
	l := &entity.Lead{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		Phone:      in.Phone,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	out := toLeadResponse(l)
	return &out, nil
}

// List contactos del negocio, más recientes primero.
func (uc *LeadUseCase) List(ctx context.Context, businessID string) ([]dto.LeadResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLeadResponse(l))
	}
	return out, nil
}
