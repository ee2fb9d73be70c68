package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

const eventColumns = `id, business_id, title, description, date_time, image_url, price, interested_count, created_at`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	if err := row.Scan(&e.ID, &e.BusinessID, &e.Title, &e.Description, &e.DateTime, &e.ImageURL,
		&e.Price, &e.InterestedCount, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepo) Create(ctx context.Context, e *entity.Event) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO events (id, business_id, title, description, date_time, image_url, price, interested_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.BusinessID, e.Title, e.Description, e.DateTime, e.ImageURL, e.Price, e.InterestedCount, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	e, err := scanEvent(r.q.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// Patch escribe solo las columnas presentes. ClearPrice vuelve el evento de entrada libre.
func (r *EventRepo) Patch(ctx context.Context, id string, patch entity.EventPatch) error {
	p := newPatch(id)
	if patch.Title != nil {
		p.set("title", *patch.Title)
	}
	if patch.Description != nil {
		p.set("description", *patch.Description)
	}
	if patch.DateTime != nil {
		p.set("date_time", *patch.DateTime)
	}
	if patch.ImageURL != nil {
		p.set("image_url", *patch.ImageURL)
	}
	if patch.ClearPrice {
		p.set("price", nil)
	} else if patch.Price != nil {
		p.set("price", *patch.Price)
	}
	if p.empty() {
		return nil
	}
	cmd, err := r.q.Exec(ctx, p.sql("events", false), p.args...)
	if err != nil {
		return fmt.Errorf("patch event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ListByBusiness eventos del negocio ordenados por fecha.
func (r *EventRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Event, error) {
	rows, err := r.q.Query(ctx, `SELECT `+eventColumns+` FROM events WHERE business_id = $1 ORDER BY date_time, id`, businessID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EventRepo) IncrementInterest(ctx context.Context, id string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`UPDATE events SET interested_count = interested_count + 1 WHERE id = $1 RETURNING interested_count`, id).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("increment interest: %w", err)
	}
	return n, nil
}

func (r *EventRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM events WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}
	return nil
}
