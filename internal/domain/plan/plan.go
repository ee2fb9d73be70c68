// Package plan reglas del plan de suscripción: vencimiento, límites y concesión de PRO.
package plan

import (
	"fmt"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// Unlimited marca un límite sin tope.
const Unlimited = -1

// Limits capacidades de un plan.
type Limits struct {
	MaxProducts    int
	MaxCategories  int
	MaxCoverPhotos int
	Banners        bool
	Events         bool
	Ordering       bool // pedidos a domicilio por WhatsApp
}

var (
	freeLimits = Limits{MaxProducts: 10, MaxCategories: 3, MaxCoverPhotos: 1}
	proLimits  = Limits{MaxProducts: Unlimited, MaxCategories: Unlimited, MaxCoverPhotos: 10, Banners: true, Events: true, Ordering: true}
)

// IsExpired indica si un negocio PRO tiene el vencimiento en el pasado respecto a now.
// Un FREE o un PRO sin fecha nunca está vencido.
func IsExpired(b *entity.Business, now time.Time) bool {
	if b == nil || b.Plan != entity.PlanPro || b.PlanExpiresAt == nil {
		return false
	}
	return b.PlanExpiresAt.Before(now)
}

// Effective devuelve el plan que rige a now: un PRO vencido cuenta como FREE.
func Effective(b *entity.Business, now time.Time) entity.Plan {
	if b == nil {
		return entity.PlanFree
	}
	if b.Plan == entity.PlanPro && !IsExpired(b, now) {
		return entity.PlanPro
	}
	return entity.PlanFree
}

// LimitsFor devuelve los límites de un plan.
func LimitsFor(p entity.Plan) Limits {
	if p == entity.PlanPro {
		return proLimits
	}
	return freeLimits
}

// LimitsAt límites del plan vigente de b a now. Un PRO vencido y aún no reconciliado
// recibe los límites de FREE.
func LimitsAt(b *entity.Business, now time.Time) Limits {
	return LimitsFor(Effective(b, now))
}

// Allows indica si con `current` elementos aún cabe uno más bajo el tope `max`.
func Allows(max, current int) bool {
	return max == Unlimited || current < max
}

// Downgrade deja el negocio en FREE sin vencimiento.
func Downgrade(b *entity.Business) {
	b.Plan = entity.PlanFree
	b.PlanExpiresAt = nil
}

// GrantExpiry calcula el vencimiento de una concesión de `days` días:
// fin del día de hoy (23:59:59.999 en loc) más `days` días.
func GrantExpiry(now time.Time, days int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t := now.In(loc)
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return end.AddDate(0, 0, days)
}

// RemainingLabel texto del tiempo restante de un plan para el panel de administración.
// Vacío si no hay fecha de vencimiento.
func RemainingLabel(expiresAt *time.Time, now time.Time) string {
	if expiresAt == nil {
		return ""
	}
	diff := expiresAt.Sub(now)
	if diff <= 0 {
		return "Vencido"
	}
	days := int(diff / (24 * time.Hour))
	if days > 0 {
		return fmt.Sprintf("%dd restantes", days)
	}
	return "Vence hoy"
}
