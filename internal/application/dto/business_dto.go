package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/schedule"
)

// BusinessResponse vista del dueño: todos los campos salvo el hash de contraseña, con colecciones.
type BusinessResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Description          string             `json:"description"`
	Type                 string             `json:"type"`
	Province             string             `json:"province"`
	Municipality         string             `json:"municipality"`
	Address              string             `json:"address"`
	Phone                string             `json:"phone"`
	WhatsApp             string             `json:"whatsapp"`
	Instagram            string             `json:"instagram"`
	Facebook             string             `json:"facebook"`
	Email                string             `json:"email"`
	LogoURL              string             `json:"logo_url"`
	CoverPhotos          []string           `json:"cover_photos"`
	Plan                 string             `json:"plan"`
	PlanExpiresAt        *time.Time         `json:"plan_expires_at"`
	IsVisible            bool               `json:"is_visible"`
	AverageRating        float64            `json:"average_rating"`
	RatingsCount         int                `json:"ratings_count"`
	CuisineTypes         []string           `json:"cuisine_types"`
	Schedule             entity.Schedule    `json:"schedule"`
	DeliveryEnabled      bool               `json:"delivery_enabled"`
	DeliveryPriceInside  decimal.Decimal    `json:"delivery_price_inside"`
	DeliveryPriceOutside decimal.Decimal    `json:"delivery_price_outside"`
	Role                 string             `json:"role"`
	Stats                entity.Stats       `json:"stats"`
	CreatedAt            time.Time          `json:"created_at"`
	Categories           []CategoryResponse `json:"categories,omitempty"`
	Products             []ProductResponse  `json:"products,omitempty"`
	Events               []EventResponse    `json:"events,omitempty"`
	Banners              []BannerResponse   `json:"banners,omitempty"`
	Leads                []LeadResponse     `json:"leads,omitempty"`
}

// UpdateBusinessRequest actualización parcial del perfil: solo se escriben los campos enviados.
type UpdateBusinessRequest struct {
	Name                 *string          `json:"name" validate:"omitempty,min=2,max=120"`
	Description          *string          `json:"description" validate:"omitempty,max=1000"`
	Type                 *string          `json:"type" validate:"omitempty,oneof=Restaurante Bar Cafetería Heladería"`
	Province             *string          `json:"province"`
	Municipality         *string          `json:"municipality"`
	Address              *string          `json:"address" validate:"omitempty,max=300"`
	WhatsApp             *string          `json:"whatsapp" validate:"omitempty,max=30"`
	Instagram            *string          `json:"instagram" validate:"omitempty,max=200"`
	Facebook             *string          `json:"facebook" validate:"omitempty,max=200"`
	Email                *string          `json:"email" validate:"omitempty,email"`
	LogoURL              *string          `json:"logo_url"`
	CoverPhotos          *[]string        `json:"cover_photos"`
	CuisineTypes         *[]string        `json:"cuisine_types"`
	Schedule             *entity.Schedule `json:"schedule"`
	DeliveryEnabled      *bool            `json:"delivery_enabled"`
	DeliveryPriceInside  *decimal.Decimal `json:"delivery_price_inside"`
	DeliveryPriceOutside *decimal.Decimal `json:"delivery_price_outside"`
}

// SettingsResponse configuración editable con el horario completado con los valores por defecto.
type SettingsResponse struct {
	Business BusinessResponse `json:"business"`
	Schedule entity.Schedule  `json:"schedule"`
}

// DirectoryQuery filtros del listado público.
type DirectoryQuery struct {
	Search       string `query:"q"`
	Province     string `query:"province"`
	Municipality string `query:"municipality"`
	Type         string `query:"type"`
}

// DirectoryItem tarjeta de un negocio en el listado público.
type DirectoryItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	Province      string   `json:"province"`
	Municipality  string   `json:"municipality"`
	LogoURL       string   `json:"logo_url"`
	CoverPhotos   []string `json:"cover_photos"`
	Plan          string   `json:"plan"`
	AverageRating float64  `json:"average_rating"`
	RatingsCount  int      `json:"ratings_count"`
	CuisineTypes  []string `json:"cuisine_types"`
	IsOpen        bool     `json:"is_open"`
}

// BusinessDetailResponse menú público de un negocio.
type BusinessDetailResponse struct {
	DirectoryItem
	Address              string             `json:"address"`
	Phone                string             `json:"phone"`
	WhatsApp             string             `json:"whatsapp"`
	Instagram            string             `json:"instagram"`
	Facebook             string             `json:"facebook"`
	Email                string             `json:"email"`
	Weekly               []schedule.Entry   `json:"weekly_schedule"`
	Today                string             `json:"today"`
	DeliveryEnabled      bool               `json:"delivery_enabled"`
	CanOrder             bool               `json:"can_order"`
	DeliveryPriceInside  decimal.Decimal    `json:"delivery_price_inside"`
	DeliveryPriceOutside decimal.Decimal    `json:"delivery_price_outside"`
	Categories           []CategoryResponse `json:"categories"`
	Products             []ProductResponse  `json:"products"`
	Events               []EventResponse    `json:"events"`
	Banners              []BannerResponse   `json:"banners"`
}

// RatingRequest calificación de 1 a 5 estrellas.
type RatingRequest struct {
	Stars int `json:"stars" validate:"required,min=1,max=5"`
}

// RatingResponse promedio resultante.
type RatingResponse struct {
	AverageRating float64 `json:"average_rating"`
	RatingsCount  int     `json:"ratings_count"`
}
