package dto

// CategoryRequest nombre de una categoría (alta o renombrado).
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=60"`
}

// CategoryResponse salida de una categoría con su número de productos.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}
