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

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implementación del puerto BannerRepository sobre PostgreSQL.
type BannerRepo struct {
	q Querier
}

// NewBannerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

const bannerColumns = `id, business_id, title, image_url, link_url, position, clicks, created_at`

func scanBanner(row pgx.Row) (*entity.Banner, error) {
	var b entity.Banner
	if err := row.Scan(&b.ID, &b.BusinessID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.Clicks, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BannerRepo) Create(ctx context.Context, b *entity.Banner) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO banners (id, business_id, title, image_url, link_url, position, clicks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.BusinessID, b.Title, b.ImageURL, b.LinkURL, b.Position, b.Clicks, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

func (r *BannerRepo) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	b, err := scanBanner(r.q.QueryRow(ctx, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return b, nil
}

func (r *BannerRepo) Patch(ctx context.Context, id string, patch entity.BannerPatch) error {
	p := newPatch(id)
	if patch.Title != nil {
		p.set("title", *patch.Title)
	}
	if patch.ImageURL != nil {
		p.set("image_url", *patch.ImageURL)
	}
	if patch.LinkURL != nil {
		p.set("link_url", *patch.LinkURL)
	}
	if patch.Position != nil {
		p.set("position", *patch.Position)
	}
	if p.empty() {
		return nil
	}
	cmd, err := r.q.Exec(ctx, p.sql("banners", false), p.args...)
	if err != nil {
		return fmt.Errorf("patch banner: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BannerRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}

func (r *BannerRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Banner, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bannerColumns+` FROM banners WHERE business_id = $1 ORDER BY created_at, id`, businessID)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Banner, 0)
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BannerRepo) IncrementClicks(ctx context.Context, id string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `UPDATE banners SET clicks = clicks + 1 WHERE id = $1 RETURNING clicks`, id).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("increment clicks: %w", err)
	}
	return n, nil
}

func (r *BannerRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM banners WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("delete banners: %w", err)
	}
	return nil
}
