package entity

import "time"

// DefaultCategoryName categoría creada junto con cada negocio nuevo.
const DefaultCategoryName = "General"

// Category agrupa productos del menú. Todo negocio conserva al menos una.
type Category struct {
	ID         string
	BusinessID string
	Name       string
	CreatedAt  time.Time
}
