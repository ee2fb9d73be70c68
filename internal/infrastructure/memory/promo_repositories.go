package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

var (
	_ repository.EventRepository  = (*EventRepo)(nil)
	_ repository.BannerRepository = (*BannerRepo)(nil)
	_ repository.LeadRepository   = (*LeadRepo)(nil)
)

// EventRepo implementación en memoria de EventRepository.
type EventRepo struct {
	view
}

func cloneEvent(e *entity.Event) *entity.Event {
	c := *e
	if e.Price != nil {
		p := *e.Price
		c.Price = &p
	}
	return &c
}

func (r *EventRepo) Create(_ context.Context, e *entity.Event) error {
	defer r.lock()()
	r.s.events[e.ID] = cloneEvent(e)
	r.s.track(e.ID)
	return nil
}

func (r *EventRepo) GetByID(_ context.Context, id string) (*entity.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, nil
	}
	return cloneEvent(e), nil
}

func (r *EventRepo) Patch(_ context.Context, id string, patch entity.EventPatch) error {
	defer r.lock()()
	e, ok := r.s.events[id]
	if !ok {
		return domain.ErrNotFound
	}
	c := cloneEvent(e)
	patch.Apply(c)
	r.s.events[id] = c
	return nil
}

func (r *EventRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	delete(r.s.events, id)
	return nil
}

// ListByBusiness por fecha del evento.
func (r *EventRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Event, 0)
	for _, e := range r.s.events {
		if e.BusinessID == businessID {
			out = append(out, cloneEvent(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (r *EventRepo) IncrementInterest(_ context.Context, id string) (int, error) {
	defer r.lock()()
	e, ok := r.s.events[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	c := cloneEvent(e)
	c.InterestedCount++
	r.s.events[id] = c
	return c.InterestedCount, nil
}

func (r *EventRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	defer r.lock()()
	for id, e := range r.s.events {
		if e.BusinessID == businessID {
			delete(r.s.events, id)
		}
	}
	return nil
}

// BannerRepo implementación en memoria de BannerRepository.
type BannerRepo struct {
	view
}

func (r *BannerRepo) Create(_ context.Context, b *entity.Banner) error {
	defer r.lock()()
	c := *b
	r.s.banners[b.ID] = &c
	r.s.track(b.ID)
	return nil
}

func (r *BannerRepo) GetByID(_ context.Context, id string) (*entity.Banner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.banners[id]
	if !ok {
		return nil, nil
	}
	c := *b
	return &c, nil
}

func (r *BannerRepo) Patch(_ context.Context, id string, patch entity.BannerPatch) error {
	defer r.lock()()
	b, ok := r.s.banners[id]
	if !ok {
		return domain.ErrNotFound
	}
	c := *b
	patch.Apply(&c)
	r.s.banners[id] = &c
	return nil
}

func (r *BannerRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	delete(r.s.banners, id)
	return nil
}

func (r *BannerRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Banner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Banner, 0)
	for _, b := range r.s.banners {
		if b.BusinessID == businessID {
			c := *b
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.s.order[out[i].ID] < r.s.order[out[j].ID] })
	return out, nil
}

func (r *BannerRepo) IncrementClicks(_ context.Context, id string) (int, error) {
	defer r.lock()()
	b, ok := r.s.banners[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	c := *b
	c.Clicks++
	r.s.banners[id] = &c
	return c.Clicks, nil
}

func (r *BannerRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	defer r.lock()()
	for id, b := range r.s.banners {
		if b.BusinessID == businessID {
			delete(r.s.banners, id)
		}
	}
	return nil
}

// LeadRepo implementación en memoria de LeadRepository.
type LeadRepo struct {
	view
}

func (r *LeadRepo) Create(_ context.Context, l *entity.Lead) error {
	defer r.lock()()
	c := *l
	r.s.leads[l.ID] = &c
	r.s.track(l.ID)
	return nil
}

// ListByBusiness más recientes primero.
func (r *LeadRepo) ListByBusiness(_ context.Context, businessID string) ([]*entity.Lead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Lead, 0)
	for _, l := range r.s.leads {
		if l.BusinessID == businessID {
			c := *l
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.s.order[out[i].ID] > r.s.order[out[j].ID] })
	return out, nil
}

func (r *LeadRepo) DeleteByBusiness(_ context.Context, businessID string) error {
	defer r.lock()()
	for id, l := range r.s.leads {
		if l.BusinessID == businessID {
			delete(r.s.leads, id)
		}
	}
	return nil
}
