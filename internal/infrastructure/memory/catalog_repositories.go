package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	view
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.lock()()
	c := *p
	r.s.products[p.ID] = &c
	r.s.track(p.ID)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *ProductRepo) Patch(_ context.Context, id string, patch entity.ProductPatch) error {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	c := *p
	patch.Apply(&c)
	c.UpdatedAt = time.Now()
	r.s.products[id] = &c
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	delete(r.s.products, id)
	return nil
}

// ListByBusiness en orden de alta.
func (r *ProductRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		if p.BusinessID == businessID {
			c := *p
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.s.order[out[i].ID] < r.s.order[out[j].ID] })
	return out, nil
}

func (r *ProductRepo) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	list, err := r.ListByBusiness(ctx, businessID)
	return len(list), err
}

func (r *ProductRepo) ClearCategory(_ context.Context, categoryID string) error {
	defer r.lock()()
	for id, p := range r.s.products {
		if p.CategoryID == categoryID {
			c := *p
			c.CategoryID = ""
			r.s.products[id] = &c
		}
	}
	return nil
}

func (r *ProductRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	defer r.lock()()
	for id, p := range r.s.products {
		if p.BusinessID == businessID {
			delete(r.s.products, id)
		}
	}
	return nil
}

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	view
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	defer r.lock()()
	for _, existing := range r.s.categories {
		if existing.BusinessID == c.BusinessID && existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	r.s.track(c.ID)
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CategoryRepo) Rename(_ context.Context, id, name string) error {
	defer r.lock()()
	c, ok := r.s.categories[id]
	if !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.s.categories {
		if existing.ID != id && existing.BusinessID == c.BusinessID && existing.Name == name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	cp.Name = name
	r.s.categories[id] = &cp
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	delete(r.s.categories, id)
	return nil
}

func (r *CategoryRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0)
	for _, c := range r.s.categories {
		if c.BusinessID == businessID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.s.order[out[i].ID] < r.s.order[out[j].ID] })
	return out, nil
}

func (r *CategoryRepo) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	list, err := r.ListByBusiness(ctx, businessID)
	return len(list), err
}

func (r *CategoryRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	defer r.lock()()
	for id, c := range r.s.categories {
		if c.BusinessID == businessID {
			delete(r.s.categories, id)
		}
	}
	return nil
}
