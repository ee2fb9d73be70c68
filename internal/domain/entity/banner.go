package entity

import "time"

// Posiciones de banner en el menú público.
const (
	BannerHeader = "header"
	BannerMiddle = "middle"
	BannerFooter = "footer"
)

// Banner publicidad propia de un negocio PRO.
type Banner struct {
	ID         string
	BusinessID string
	Title      string
	ImageURL   string
	LinkURL    string
	Position   string
	Clicks     int
	CreatedAt  time.Time
}

// BannerPatch actualización por campos de un banner.
type BannerPatch struct {
	Title    *string
	ImageURL *string
	LinkURL  *string
	Position *string
}

// Apply aplica el patch sobre el banner en memoria.
func (p BannerPatch) Apply(b *Banner) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.ImageURL != nil {
		b.ImageURL = *p.ImageURL
	}
	if p.LinkURL != nil {
		b.LinkURL = *p.LinkURL
	}
	if p.Position != nil {
		b.Position = *p.Position
	}
}
