package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEventRequest alta de un evento.
type CreateEventRequest struct {
	Title       string           `json:"title" validate:"required,min=2,max=120"`
	Description string           `json:"description" validate:"max=1000"`
	DateTime    time.Time        `json:"date_time" validate:"required"`
	ImageURL    string           `json:"image_url"`
	Price       *decimal.Decimal `json:"price"`
}

// UpdateEventRequest actualización parcial de un evento. FreeEntry borra el precio.
type UpdateEventRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=2,max=120"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	DateTime    *time.Time       `json:"date_time"`
	ImageURL    *string          `json:"image_url"`
	Price       *decimal.Decimal `json:"price"`
	FreeEntry   bool             `json:"free_entry"`
}

// EventResponse salida de un evento.
type EventResponse struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DateTime        time.Time        `json:"date_time"`
	ImageURL        string           `json:"image_url"`
	Price           *decimal.Decimal `json:"price"`
	InterestedCount int              `json:"interested_count"`
}
