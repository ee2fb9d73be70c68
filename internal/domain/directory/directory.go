// Package directory listado público de negocios: filtros de búsqueda y orden por plan.
package directory

import (
	"sort"
	"strings"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// AllTypes centinela para no filtrar por tipo de negocio.
const AllTypes = "Todos"

// Filter criterios del directorio. Los campos vacíos no filtran.
type Filter struct {
	Search       string
	Province     string
	Municipality string
	Type         string
}

// Matches indica si el negocio cumple el filtro. Los ocultos nunca aparecen.
func (f Filter) Matches(b *entity.Business) bool {
	if b == nil || !b.IsVisible {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(b.Name), term) && !strings.Contains(strings.ToLower(b.Description), term) {
			return false
		}
	}
	if f.Province != "" && b.Province != f.Province {
		return false
	}
	if f.Municipality != "" && b.Municipality != f.Municipality {
		return false
	}
	if f.Type != "" && f.Type != AllTypes && b.Type != f.Type {
		return false
	}
	return true
}

// Apply filtra y ordena: PRO primero, conservando el orden original dentro de cada grupo.
func Apply(list []*entity.Business, f Filter) []*entity.Business {
	out := make([]*entity.Business, 0, len(list))
	for _, b := range list {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Plan == entity.PlanPro && out[j].Plan != entity.PlanPro
	})
	return out
}
