package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event evento promocionado por un negocio PRO.
type Event struct {
	ID              string
	BusinessID      string
	Title           string
	Description     string
	DateTime        time.Time
	ImageURL        string
	Price           *decimal.Decimal // nil = entrada libre
	InterestedCount int
	CreatedAt       time.Time
}

// EventPatch actualización por campos de un evento.
type EventPatch struct {
	Title       *string
	Description *string
	DateTime    *time.Time
	ImageURL    *string
	Price       *decimal.Decimal
	ClearPrice  bool
}

// Apply aplica el patch sobre el evento en memoria.
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.DateTime != nil {
		e.DateTime = *p.DateTime
	}
	if p.ImageURL != nil {
		e.ImageURL = *p.ImageURL
	}
	if p.ClearPrice {
		e.Price = nil
	} else if p.Price != nil {
		v := *p.Price
		e.Price = &v
	}
}
