package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/catalog"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/plan"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos del menú, acotado al negocio de la sesión.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	businesses *BusinessUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository, businesses *BusinessUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, businesses: businesses}
}

// Create crea un producto. Sin is_visible queda visible. En FREE se respeta el tope de productos.
func (uc *ProductUseCase) Create(ctx context.Context, businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	b, err := uc.businesses.Load(ctx, businessID)
	if err != nil {
		return nil, err
	}
	count, err := uc.repo.CountByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	limits := uc.businesses.limits(b)
	if !plan.Allows(limits.MaxProducts, count) {
		return nil, fmt.Errorf("%w: máximo %d productos en el plan gratuito", domain.ErrPlanLimit, limits.MaxProducts)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	if err := uc.checkCategory(ctx, businessID, in.CategoryID); err != nil {
		return nil, err
	}
	visible := true
	if in.IsVisible != nil {
		visible = *in.IsVisible
	}
	now := time.Now()
	p := &entity.Product{
		ID:            uuid.New().String(),
		BusinessID:    businessID,
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		ImageURL:      in.ImageURL,
		IsHighlighted: in.IsHighlighted,
		IsVisible:     visible,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List productos del negocio (incluye ocultos) con búsqueda por nombre y filtro por categoría ("Todas" = todas).
func (uc *ProductUseCase) List(ctx context.Context, businessID string, q dto.ProductListQuery) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(catalog.Search(list, q.Search, q.Category)), nil
}

// Update actualiza solo los campos enviados.
func (uc *ProductUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.owned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	if in.CategoryID != nil {
		if err := uc.checkCategory(ctx, businessID, *in.CategoryID); err != nil {
			return nil, err
		}
	}
	patch := entity.ProductPatch{
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		ImageURL:      in.ImageURL,
		IsHighlighted: in.IsHighlighted,
		IsVisible:     in.IsVisible,
	}
	if err := uc.repo.Patch(ctx, id, patch); err != nil {
		return nil, err
	}
	patch.Apply(p)
	return toProductResponse(p), nil
}

// SetVisibility muestra u oculta un producto como transición en dos fases.
func (uc *ProductUseCase) SetVisibility(ctx context.Context, businessID, id string, visible bool) (*dto.TransitionResponse, error) {
	p, err := uc.owned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	t := Begin(p.IsVisible, visible)
	t.Apply(func() error {
		return uc.repo.Patch(ctx, id, entity.ProductPatch{IsVisible: &visible})
	})
	return toTransitionResponse(t), nil
}

// Delete elimina un producto del negocio.
func (uc *ProductUseCase) Delete(ctx context.Context, businessID, id string) error {
	if _, err := uc.owned(ctx, businessID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) owned(ctx context.Context, businessID, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *ProductUseCase) checkCategory(ctx context.Context, businessID, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	c, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c == nil || c.BusinessID != businessID {
		return fmt.Errorf("%w: categoría inexistente", domain.ErrInvalidInput)
	}
	return nil
}
