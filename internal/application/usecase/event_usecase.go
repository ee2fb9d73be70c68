package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

// EventUseCase eventos del negocio; la gestión requiere plan PRO.
type EventUseCase struct {
	repo       repository.EventRepository
	businesses *BusinessUseCase
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.EventRepository, businesses *BusinessUseCase) *EventUseCase {
	return &EventUseCase{repo: repo, businesses: businesses}
}

// List eventos del negocio.
func (uc *EventUseCase) List(ctx context.Context, businessID string) ([]dto.EventResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return toEventResponses(list), nil
}

// Create agrega un evento.
func (uc *EventUseCase) Create(ctx context.Context, businessID string, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if err := uc.requirePro(ctx, businessID); err != nil {
		return nil, err
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	e := &entity.Event{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Title:       in.Title,
		Description: in.Description,
		DateTime:    in.DateTime,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := toEventResponse(e)
	return &out, nil
}

// Update actualiza solo los campos enviados.
func (uc *EventUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	if err := uc.requirePro(ctx, businessID); err != nil {
		return nil, err
	}
	e, err := uc.owned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	patch := entity.EventPatch{
		Title:       in.Title,
		Description: in.Description,
		DateTime:    in.DateTime,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		ClearPrice:  in.FreeEntry,
	}
	if err := uc.repo.Patch(ctx, id, patch); err != nil {
		return nil, err
	}
	patch.Apply(e)
	out := toEventResponse(e)
	return &out, nil
}

// Delete elimina un evento.
func (uc *EventUseCase) Delete(ctx context.Context, businessID, id string) error {
	if err := uc.requirePro(ctx, businessID); err != nil {
		return err
	}
	if _, err := uc.owned(ctx, businessID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// Interest suma un interesado desde el menú público.
func (uc *EventUseCase) Interest(ctx context.Context, id string) (*dto.CounterResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	n, err := uc.repo.IncrementInterest(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CounterResponse{ID: id, Count: n}, nil
}

func (uc *EventUseCase) requirePro(ctx context.Context, businessID string) error {
	b, err := uc.businesses.Load(ctx, businessID)
	if err != nil {
		return err
	}
	if !uc.businesses.limits(b).Events {
		return domain.ErrPlanRequired
	}
	return nil
}

func (uc *EventUseCase) owned(ctx context.Context, businessID, id string) (*entity.Event, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return e, nil
}
