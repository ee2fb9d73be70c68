package dto

// RegisterRequest alta de un negocio (onboarding). Inicia sesión automáticamente.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	Phone        string `json:"phone" validate:"required,min=6,max=30"`
	Password     string `json:"password" validate:"required,min=6,max=72"`
	Type         string `json:"type" validate:"omitempty,oneof=Restaurante Bar Cafetería Heladería"`
	Description  string `json:"description" validate:"max=1000"`
	Province     string `json:"province" validate:"required"`
	Municipality string `json:"municipality" validate:"required"`
	Address      string `json:"address" validate:"max=300"`
	WhatsApp     string `json:"whatsapp" validate:"max=30"`
}

// LoginRequest acceso con teléfono y contraseña.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse token de sesión y negocio cargado.
type SessionResponse struct {
	Token    string           `json:"token,omitempty"`
	Business BusinessResponse `json:"business"`
}
