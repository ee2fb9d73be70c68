package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/plan"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación en memoria de BusinessRepository.
type BusinessRepo struct {
	view
}

func (r *BusinessRepo) Create(_ context.Context, b *entity.Business) error {
	defer r.lock()()
	for _, existing := range r.s.businesses {
		if existing.Phone == b.Phone {
			return domain.ErrDuplicate
		}
	}
	r.s.businesses[b.ID] = stripCollections(b.Clone())
	r.s.track(b.ID)
	return nil
}

func (r *BusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, nil
	}
	return b.Clone(), nil
}

func (r *BusinessRepo) GetByPhone(_ context.Context, phone string) (*entity.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.businesses {
		if b.Phone == phone {
			return b.Clone(), nil
		}
	}
	return nil, nil
}

// List más recientes primero.
func (r *BusinessRepo) List(_ context.Context, includeHidden bool) ([]*entity.Business, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Business, 0, len(r.s.businesses))
	for _, b := range r.s.businesses {
		if !includeHidden && !b.IsVisible {
			continue
		}
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return r.s.order[out[i].ID] > r.s.order[out[j].ID] })
	return out, nil
}

func (r *BusinessRepo) Patch(_ context.Context, id string, patch entity.BusinessPatch) error {
	return r.update(id, func(b *entity.Business) { patch.Apply(b) })
}

func (r *BusinessRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	delete(r.s.businesses, id)
	delete(r.s.ratingSum, id)
	delete(r.s.order, id)
	return nil
}

func (r *BusinessRepo) DowngradeExpired(_ context.Context, ids []string, now time.Time) (int64, error) {
	defer r.lock()()
	var n int64
	for _, id := range ids {
		b, ok := r.s.businesses[id]
		if !ok || !plan.IsExpired(b, now) {
			continue
		}
		c := b.Clone()
		plan.Downgrade(c)
		c.UpdatedAt = now
		r.s.businesses[id] = c
		n++
	}
	return n, nil
}

func (r *BusinessRepo) ListExpired(_ context.Context, now time.Time) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var ids []string
	for id, b := range r.s.businesses {
		if plan.IsExpired(b, now) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *BusinessRepo) SetPlan(_ context.Context, id string, p entity.Plan, expiresAt *time.Time) error {
	return r.update(id, func(b *entity.Business) {
		b.Plan = p
		b.PlanExpiresAt = nil
		if expiresAt != nil {
			t := *expiresAt
			b.PlanExpiresAt = &t
		}
	})
}

func (r *BusinessRepo) SetVisibility(_ context.Context, id string, visible bool) error {
	return r.update(id, func(b *entity.Business) { b.IsVisible = visible })
}

func (r *BusinessRepo) AddRating(_ context.Context, id string, stars int) (float64, int, error) {
	defer r.lock()()
	b, ok := r.s.businesses[id]
	if !ok {
		return 0, 0, domain.ErrNotFound
	}
	c := b.Clone()
	r.s.ratingSum[id] += stars
	c.RatingsCount++
	c.AverageRating = float64(r.s.ratingSum[id]) / float64(c.RatingsCount)
	r.s.businesses[id] = c
	return c.AverageRating, c.RatingsCount, nil
}

func (r *BusinessRepo) IncrementStats(_ context.Context, id string, qr bool) error {
	return r.update(id, func(b *entity.Business) {
		b.Stats.Visits++
		if qr {
			b.Stats.QRScans++
		}
	})
}

func (r *BusinessRepo) update(id string, fn func(b *entity.Business)) error {
	defer r.lock()()
	b, ok := r.s.businesses[id]
	if !ok {
		return domain.ErrNotFound
	}
	c := b.Clone()
	fn(c)
	c.UpdatedAt = time.Now()
	r.s.businesses[id] = c
	return nil
}

func stripCollections(b *entity.Business) *entity.Business {
	b.Categories, b.Products, b.Events, b.Banners, b.Leads = nil, nil, nil, nil, nil
	return b
}
