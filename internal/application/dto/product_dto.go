package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. IsVisible omitido = visible.
type CreateProductRequest struct {
	CategoryID    string          `json:"category_id"`
	Name          string          `json:"name" validate:"required,min=1,max=120"`
	Description   string          `json:"description" validate:"max=500"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	IsHighlighted bool            `json:"is_highlighted"`
	IsVisible     *bool           `json:"is_visible"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	CategoryID    *string          `json:"category_id"`
	Name          *string          `json:"name" validate:"omitempty,min=1,max=120"`
	Description   *string          `json:"description" validate:"omitempty,max=500"`
	Price         *decimal.Decimal `json:"price"`
	ImageURL      *string          `json:"image_url"`
	IsHighlighted *bool            `json:"is_highlighted"`
	IsVisible     *bool            `json:"is_visible"`
}

// VisibilityRequest nuevo valor de visibilidad.
type VisibilityRequest struct {
	IsVisible bool `json:"is_visible"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	BusinessID    string          `json:"business_id"`
	CategoryID    string          `json:"category_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	IsHighlighted bool            `json:"is_highlighted"`
	IsVisible     bool            `json:"is_visible"`
}

// ProductListQuery filtros del listado del panel.
type ProductListQuery struct {
	Search   string `query:"q"`
	Category string `query:"category"`
}
