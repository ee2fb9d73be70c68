package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/catalog"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/plan"
)

// CategoryUseCase categorías del menú. Un negocio nunca se queda sin categorías.
type CategoryUseCase struct {
	repos      ports.Repositories
	tx         ports.TxRunner
	businesses *BusinessUseCase
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repos ports.Repositories, tx ports.TxRunner, businesses *BusinessUseCase) *CategoryUseCase {
	return &CategoryUseCase{repos: repos, tx: tx, businesses: businesses}
}

// List categorías con su número de productos.
func (uc *CategoryUseCase) List(ctx context.Context, businessID string) ([]dto.CategoryResponse, error) {
	cats, err := uc.repos.Categories.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	products, err := uc.repos.Products.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	counts := catalog.CountByCategory(products)
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, ProductCount: counts[c.ID]})
	}
	return out, nil
}

// Create agrega una categoría respetando el tope del plan.
func (uc *CategoryUseCase) Create(ctx context.Context, businessID, name string) (*dto.CategoryResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	b, err := uc.businesses.Load(ctx, businessID)
	if err != nil {
		return nil, err
	}
	count, err := uc.repos.Categories.CountByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	limits := uc.businesses.limits(b)
	if !plan.Allows(limits.MaxCategories, count) {
		return nil, fmt.Errorf("%w: máximo %d categorías en el plan gratuito", domain.ErrPlanLimit, limits.MaxCategories)
	}
	c := &entity.Category{ID: uuid.New().String(), BusinessID: businessID, Name: name, CreatedAt: time.Now()}
	if err := uc.repos.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}, nil
}

// Rename cambia el nombre de una categoría.
func (uc *CategoryUseCase) Rename(ctx context.Context, businessID, id, name string) (*dto.CategoryResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	c, err := uc.owned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repos.Categories.Rename(ctx, id, name); err != nil {
		return nil, err
	}
	c.Name = name
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}, nil
}

// Delete elimina una categoría salvo que sea la última; sus productos quedan sin categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, businessID, id string) error {
	if _, err := uc.owned(ctx, businessID, id); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(r ports.Repositories) error {
		count, err := r.Categories.CountByBusiness(ctx, businessID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return domain.ErrLastCategory
		}
		if err := r.Products.ClearCategory(ctx, id); err != nil {
			return err
		}
		return r.Categories.Delete(ctx, id)
	})
}

func (uc *CategoryUseCase) owned(ctx context.Context, businessID, id string) (*entity.Category, error) {
	c, err := uc.repos.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
