package dto

// CreateBannerRequest alta de un banner.
type CreateBannerRequest struct {
	Title    string `json:"title" validate:"max=120"`
	ImageURL string `json:"image_url" validate:"required"`
	LinkURL  string `json:"link_url" validate:"omitempty,url"`
	Position string `json:"position" validate:"required,oneof=header middle footer"`
}

// UpdateBannerRequest actualización parcial de un banner.
type UpdateBannerRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=120"`
	ImageURL *string `json:"image_url"`
	LinkURL  *string `json:"link_url" validate:"omitempty,url"`
	Position *string `json:"position" validate:"omitempty,oneof=header middle footer"`
}

// BannerResponse salida de un banner.
type BannerResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
	Position string `json:"position"`
	Clicks   int    `json:"clicks"`
}
