package dto

// MediaResponse resultado de subir una imagen. Fallback indica que la URL es un data URL embebido.
type MediaResponse struct {
	URL       string `json:"url"`
	Path      string `json:"path,omitempty"`
	SizeBytes int    `json:"size_bytes"`
	Fallback  bool   `json:"fallback"`
}
