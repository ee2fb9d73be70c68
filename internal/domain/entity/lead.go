package entity

import "time"

// Lead contacto dejado por un cliente en el menú público. Solo se agrega, nunca se edita.
type Lead struct {
	ID         string
	BusinessID string
	Name       string
	Phone      string
	CreatedAt  time.Time
}
