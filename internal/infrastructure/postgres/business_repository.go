package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador de persistencia para negocios. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

const businessColumns = `id, name, description, type, province, municipality, address, phone, whatsapp,
	instagram, facebook, email, logo_url, cover_photos, password_hash, plan, plan_expires_at, is_visible,
	average_rating, ratings_count, cuisine_types, schedule, delivery_enabled, delivery_price_inside,
	delivery_price_outside, role, visits, qr_scans, unique_visitors, created_at, updated_at`

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var b entity.Business
	var plan, role string
	var schedule []byte
	err := row.Scan(
		&b.ID, &b.Name, &b.Description, &b.Type, &b.Province, &b.Municipality, &b.Address, &b.Phone, &b.WhatsApp,
		&b.Instagram, &b.Facebook, &b.Email, &b.LogoURL, &b.CoverPhotos, &b.PasswordHash, &plan, &b.PlanExpiresAt, &b.IsVisible,
		&b.AverageRating, &b.RatingsCount, &b.CuisineTypes, &schedule, &b.DeliveryEnabled, &b.DeliveryPriceInside,
		&b.DeliveryPriceOutside, &role, &b.Stats.Visits, &b.Stats.QRScans, &b.Stats.UniqueVisitors, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Plan = entity.Plan(plan)
	b.Role = entity.Role(role)
	if len(schedule) > 0 && string(schedule) != "null" {
		if err := json.Unmarshal(schedule, &b.Schedule); err != nil {
			return nil, fmt.Errorf("decode schedule: %w", err)
		}
	}
	return &b, nil
}

func encodeSchedule(s entity.Schedule) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func textArray(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// Create persiste un nuevo negocio. Teléfono repetido devuelve ErrDuplicate.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	schedule, err := encodeSchedule(b.Schedule)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO businesses (id, name, description, type, province, municipality, address, phone, whatsapp,
			instagram, facebook, email, logo_url, cover_photos, password_hash, plan, plan_expires_at, is_visible,
			cuisine_types, schedule, delivery_enabled, delivery_price_inside, delivery_price_outside, role,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err = r.q.Exec(ctx, query,
		b.ID, b.Name, b.Description, b.Type, b.Province, b.Municipality, b.Address, b.Phone, b.WhatsApp,
		b.Instagram, b.Facebook, b.Email, b.LogoURL, textArray(b.CoverPhotos), b.PasswordHash, string(b.Plan), b.PlanExpiresAt, b.IsVisible,
		textArray(b.CuisineTypes), schedule, b.DeliveryEnabled, b.DeliveryPriceInside, b.DeliveryPriceOutside, string(b.Role),
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	b, err := scanBusiness(r.q.QueryRow(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}

// GetByPhone obtiene un negocio por teléfono (login).
func (r *BusinessRepo) GetByPhone(ctx context.Context, phone string) (*entity.Business, error) {
	b, err := scanBusiness(r.q.QueryRow(ctx, `SELECT `+businessColumns+` FROM businesses WHERE phone = $1`, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business by phone: %w", err)
	}
	return b, nil
}

// List lista negocios, más recientes primero.
func (r *BusinessRepo) List(ctx context.Context, includeHidden bool) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses`
	if !includeHidden {
		query += ` WHERE is_visible`
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Business, 0)
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Patch escribe solo las columnas presentes en el patch.
func (r *BusinessRepo) Patch(ctx context.Context, id string, patch entity.BusinessPatch) error {
	p := newPatch(id)
	if patch.Name != nil {
		p.set("name", *patch.Name)
	}
	if patch.Description != nil {
		p.set("description", *patch.Description)
	}
	if patch.Type != nil {
		p.set("type", *patch.Type)
	}
	if patch.Province != nil {
		p.set("province", *patch.Province)
	}
	if patch.Municipality != nil {
		p.set("municipality", *patch.Municipality)
	}
	if patch.Address != nil {
		p.set("address", *patch.Address)
	}
	if patch.WhatsApp != nil {
		p.set("whatsapp", *patch.WhatsApp)
	}
	if patch.Instagram != nil {
		p.set("instagram", *patch.Instagram)
	}
	if patch.Facebook != nil {
		p.set("facebook", *patch.Facebook)
	}
	if patch.Email != nil {
		p.set("email", *patch.Email)
	}
	if patch.LogoURL != nil {
		p.set("logo_url", *patch.LogoURL)
	}
	if patch.CoverPhotos != nil {
		p.set("cover_photos", textArray(*patch.CoverPhotos))
	}
	if patch.CuisineTypes != nil {
		p.set("cuisine_types", textArray(*patch.CuisineTypes))
	}
	if patch.Schedule != nil {
		schedule, err := encodeSchedule(*patch.Schedule)
		if err != nil {
			return err
		}
		p.set("schedule", schedule)
	}
	if patch.DeliveryEnabled != nil {
		p.set("delivery_enabled", *patch.DeliveryEnabled)
	}
	if patch.DeliveryPriceInside != nil {
		p.set("delivery_price_inside", *patch.DeliveryPriceInside)
	}
	if patch.DeliveryPriceOutside != nil {
		p.set("delivery_price_outside", *patch.DeliveryPriceOutside)
	}
	if p.empty() {
		return nil
	}
	cmd, err := r.q.Exec(ctx, p.sql("businesses", true), p.args...)
	if err != nil {
		return fmt.Errorf("patch business: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el negocio (las tablas hijas se limpian antes, en la misma tx).
func (r *BusinessRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	return nil
}

// DowngradeExpired degradación condicional: no pisa una renovación concurrente.
func (r *BusinessRepo) DowngradeExpired(ctx context.Context, ids []string, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE businesses SET plan = 'FREE', plan_expires_at = NULL, updated_at = $2
		WHERE id = ANY($1::uuid[]) AND plan = 'PRO' AND plan_expires_at < $2`,
		ids, now,
	)
	if err != nil {
		return 0, fmt.Errorf("downgrade expired: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListExpired IDs de negocios PRO vencidos.
func (r *BusinessRepo) ListExpired(ctx context.Context, now time.Time) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM businesses WHERE plan = 'PRO' AND plan_expires_at < $1 ORDER BY id`, now)
	if err != nil {
		return nil, fmt.Errorf("list expired: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan expired: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SetPlan cambia plan y vencimiento.
func (r *BusinessRepo) SetPlan(ctx context.Context, id string, plan entity.Plan, expiresAt *time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE businesses SET plan = $2, plan_expires_at = $3, updated_at = now() WHERE id = $1`,
		id, string(plan), expiresAt,
	)
	if err != nil {
		return fmt.Errorf("set plan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetVisibility muestra u oculta el negocio en el directorio.
func (r *BusinessRepo) SetVisibility(ctx context.Context, id string, visible bool) error {
	cmd, err := r.q.Exec(ctx, `UPDATE businesses SET is_visible = $2, updated_at = now() WHERE id = $1`, id, visible)
	if err != nil {
		return fmt.Errorf("set visibility: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddRating recalcula el promedio en la misma sentencia para no perder calificaciones concurrentes.
func (r *BusinessRepo) AddRating(ctx context.Context, id string, stars int) (float64, int, error) {
	var avg float64
	var count int
	err := r.q.QueryRow(ctx, `
		UPDATE businesses SET
			ratings_sum = ratings_sum + $2,
			ratings_count = ratings_count + 1,
			average_rating = (ratings_sum + $2)::float8 / (ratings_count + 1),
			updated_at = now()
		WHERE id = $1
		RETURNING average_rating, ratings_count`, id, stars,
	).Scan(&avg, &count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domain.ErrNotFound
		}
		return 0, 0, fmt.Errorf("add rating: %w", err)
	}
	return avg, count, nil
}

// IncrementStats suma una visita y, si llegó por QR, un escaneo.
func (r *BusinessRepo) IncrementStats(ctx context.Context, id string, qr bool) error {
	_, err := r.q.Exec(ctx, `
		UPDATE businesses SET visits = visits + 1, qr_scans = qr_scans + CASE WHEN $2 THEN 1 ELSE 0 END
		WHERE id = $1`, id, qr,
	)
	if err != nil {
		return fmt.Errorf("increment stats: %w", err)
	}
	return nil
}
