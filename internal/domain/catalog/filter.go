// Package catalog filtros del menú público, carrito y armado del pedido por WhatsApp.
package catalog

import (
	"strings"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// Centinelas de "todas las categorías": el menú público usa "Todo", el panel "Todas".
const (
	AllCategories      = "Todo"
	AllCategoriesAdmin = "Todas"
)

// IsAll indica si el filtro de categoría pide todos los productos.
func IsAll(category string) bool {
	return category == "" || category == AllCategories || category == AllCategoriesAdmin
}

// Visible devuelve los productos listables: solo se ocultan los marcados explícitamente.
func Visible(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p != nil && p.IsVisible {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory filtra por ID de categoría; con el centinela devuelve todo.
// Sin coincidencias devuelve una lista vacía.
func ByCategory(products []*entity.Product, categoryID string) []*entity.Product {
	if IsAll(categoryID) {
		return append(make([]*entity.Product, 0, len(products)), products...)
	}
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if p != nil && p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// PublicMenu productos visibles de la categoría pedida.
func PublicMenu(products []*entity.Product, categoryID string) []*entity.Product {
	return ByCategory(Visible(products), categoryID)
}

// Search filtro del panel: texto sin distinguir mayúsculas sobre el nombre más categoría.
// Incluye productos ocultos.
func Search(products []*entity.Product, term, categoryID string) []*entity.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]*entity.Product, 0)
	for _, p := range ByCategory(products, categoryID) {
		if term == "" || strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

// CountByCategory cantidad de productos por ID de categoría.
func CountByCategory(products []*entity.Product) map[string]int {
	out := make(map[string]int)
	for _, p := range products {
		if p != nil && p.CategoryID != "" {
			out[p.CategoryID]++
		}
	}
	return out
}
