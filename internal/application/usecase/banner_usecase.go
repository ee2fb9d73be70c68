package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

// BannerUseCase banners publicitarios; la gestión requiere plan PRO.
type BannerUseCase struct {
	repo       repository.BannerRepository
	businesses *BusinessUseCase
}

// NewBannerUseCase construye el caso de uso.
func NewBannerUseCase(repo repository.BannerRepository, businesses *BusinessUseCase) *BannerUseCase {
	return &BannerUseCase{repo: repo, businesses: businesses}
}

// List banners del negocio.
func (uc *BannerUseCase) List(ctx context.Context, businessID string) ([]dto.BannerResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return toBannerResponses(list), nil
}

// Create agrega un banner.
func (uc *BannerUseCase) Create(ctx context.Context, businessID string, in dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	if err := uc.requirePro(ctx, businessID); err != nil {
		return nil, err
	}
	b := &entity.Banner{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Title:      in.Title,
		ImageURL:   in.ImageURL,
		LinkURL:    in.LinkURL,
		Position:   in.Position,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	out := toBannerResponse(b)
	return &out, nil
}

// Update actualiza solo los campos enviados.
func (uc *BannerUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	if err := uc.requirePro(ctx, businessID); err != nil {
		return nil, err
	}
	b, err := uc.owned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	patch := entity.BannerPatch{Title: in.Title, ImageURL: in.ImageURL, LinkURL: in.LinkURL, Position: in.Position}
	if err := uc.repo.Patch(ctx, id, patch); err != nil {
		return nil, err
	}
	patch.Apply(b)
	out := toBannerResponse(b)
	return &out, nil
}

// Delete elimina un banner.
func (uc *BannerUseCase) Delete(ctx context.Context, businessID, id string) error {
	if err := uc.requirePro(ctx, businessID); err != nil {
		return err
	}
	if _, err := uc.owned(ctx, businessID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// Click cuenta un clic desde el menú público.
func (uc *BannerUseCase) Click(ctx context.Context, id string) (*dto.CounterResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	n, err := uc.repo.IncrementClicks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CounterResponse{ID: id, Count: n}, nil
}

func (uc *BannerUseCase) requirePro(ctx context.Context, businessID string) error {
	b, err := uc.businesses.Load(ctx, businessID)
	if err != nil {
		return err
	}
	if !uc.businesses.limits(b).Banners {
		return domain.ErrPlanRequired
	}
	return nil
}

func (uc *BannerUseCase) owned(ctx context.Context, businessID, id string) (*entity.Banner, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return b, nil
}
