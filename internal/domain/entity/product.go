package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product plato o bebida del menú de un negocio.
// IsVisible omitido al crear se guarda como true.
type Product struct {
	ID            string
	BusinessID    string
	CategoryID    string // vacío si no tiene categoría
	Name          string
	Description   string
	Price         decimal.Decimal
	ImageURL      string
	IsHighlighted bool
	IsVisible     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductPatch actualización por campos de un producto.
type ProductPatch struct {
	CategoryID    *string
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	ImageURL      *string
	IsHighlighted *bool
	IsVisible     *bool
}

// Apply aplica el patch sobre el producto en memoria.
func (p ProductPatch) Apply(pr *Product) {
	if p.CategoryID != nil {
		pr.CategoryID = *p.CategoryID
	}
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.ImageURL != nil {
		pr.ImageURL = *p.ImageURL
	}
	if p.IsHighlighted != nil {
		pr.IsHighlighted = *p.IsHighlighted
	}
	if p.IsVisible != nil {
		pr.IsVisible = *p.IsVisible
	}
}
