package dto

import "time"

// CreateLeadRequest contacto dejado desde el menú público.
type CreateLeadRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=120"`
	Phone string `json:"phone" validate:"required,min=6,max=30"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
