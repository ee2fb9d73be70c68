package auth

import (
	"context"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// Session sesión autenticada de un negocio. El token JWT solo transporta su ID.
type Session struct {
	ID         string      `json:"id"`
	BusinessID string      `json:"business_id"`
	Role       entity.Role `json:"role"`
	CreatedAt  time.Time   `json:"created_at"`
}

// IsAdmin indica si la sesión es de súper administrador.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == entity.RoleAdmin
}

// SessionStore puerto de persistencia de sesiones (Redis o memoria).
// Get devuelve (nil, nil) si la sesión no existe o expiró.
type SessionStore interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
