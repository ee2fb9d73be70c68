package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

func (r *LeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO leads (id, business_id, name, phone, created_at) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.BusinessID, l.Name, l.Phone, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// ListByBusiness contactos del negocio, los más recientes primero.
func (r *LeadRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Lead, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, business_id, name, phone, created_at FROM leads WHERE business_id = $1 ORDER BY created_at DESC, id`, businessID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Lead, 0)
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.BusinessID, &l.Name, &l.Phone, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LeadRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM leads WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("delete leads: %w", err)
	}
	return nil
}
