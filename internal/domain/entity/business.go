package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan nivel de suscripción del negocio.
type Plan string

const (
	PlanFree Plan = "FREE"
	PlanPro  Plan = "PRO"
)

// Role rol de la cuenta dueña del negocio.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Tipos de negocio admitidos en el directorio.
const (
	TypeRestaurant = "Restaurante"
	TypeBar        = "Bar"
	TypeCafe       = "Cafetería"
	TypeIceCream   = "Heladería"
)

// BusinessTypes lista los tipos válidos en orden de presentación.
var BusinessTypes = []string{TypeRestaurant, TypeBar, TypeCafe, TypeIceCream}

// DaySchedule horario de un día: abierto o no y ventana HH:MM.
type DaySchedule struct {
	Open bool   `json:"open"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Schedule horario semanal indexado por nombre de día en español (Lunes … Domingo).
// Un horario nil o vacío significa "siempre abierto".
type Schedule map[string]DaySchedule

// Stats contadores de tráfico del menú público.
type Stats struct {
	Visits         int64 `json:"visits"`
	QRScans        int64 `json:"qr_scans"`
	UniqueVisitors int64 `json:"unique_visitors"`
}

// Business tenant principal: un restaurante/bar con su menú y plan.
// PlanExpiresAt solo tiene sentido con Plan PRO; un PRO vencido es lógicamente FREE hasta reconciliarse.
type Business struct {
	ID                   string
	Name                 string
	Description          string
	Type                 string
	Province             string
	Municipality         string
	Address              string
	Phone                string // único; identidad de login
	WhatsApp             string
	Instagram            string
	Facebook             string
	Email                string
	LogoURL              string
	CoverPhotos          []string
	PasswordHash         string
	Plan                 Plan
	PlanExpiresAt        *time.Time
	IsVisible            bool
	AverageRating        float64
	RatingsCount         int
	CuisineTypes         []string
	Schedule             Schedule
	DeliveryEnabled      bool
	DeliveryPriceInside  decimal.Decimal
	DeliveryPriceOutside decimal.Decimal
	Role                 Role
	Stats                Stats
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Colecciones cargadas bajo demanda.
	Categories []*Category
	Products   []*Product
	Events     []*Event
	Banners    []*Banner
	Leads      []*Lead
}

// IsPro indica si el plan almacenado es PRO (sin mirar vencimiento).
func (b *Business) IsPro() bool {
	return b != nil && b.Plan == PlanPro
}

// Clone copia superficial del negocio con slices propios para no mutar al original.
func (b *Business) Clone() *Business {
	if b == nil {
		return nil
	}
	c := *b
	c.CoverPhotos = append([]string(nil), b.CoverPhotos...)
	c.CuisineTypes = append([]string(nil), b.CuisineTypes...)
	if b.PlanExpiresAt != nil {
		t := *b.PlanExpiresAt
		c.PlanExpiresAt = &t
	}
	if b.Schedule != nil {
		c.Schedule = make(Schedule, len(b.Schedule))
		for k, v := range b.Schedule {
			c.Schedule[k] = v
		}
	}
	return &c
}

// BusinessPatch actualización por campos: solo los punteros no nil se escriben.
type BusinessPatch struct {
	Name                 *string
	Description          *string
	Type                 *string
	Province             *string
	Municipality         *string
	Address              *string
	WhatsApp             *string
	Instagram            *string
	Facebook             *string
	Email                *string
	LogoURL              *string
	CoverPhotos          *[]string
	CuisineTypes         *[]string
	Schedule             *Schedule
	DeliveryEnabled      *bool
	DeliveryPriceInside  *decimal.Decimal
	DeliveryPriceOutside *decimal.Decimal
}

// IsEmpty indica si el patch no trae ningún campo.
func (p BusinessPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Type == nil && p.Province == nil &&
		p.Municipality == nil && p.Address == nil && p.WhatsApp == nil && p.Instagram == nil &&
		p.Facebook == nil && p.Email == nil && p.LogoURL == nil && p.CoverPhotos == nil &&
		p.CuisineTypes == nil && p.Schedule == nil && p.DeliveryEnabled == nil &&
		p.DeliveryPriceInside == nil && p.DeliveryPriceOutside == nil
}

// Apply aplica el patch sobre el negocio en memoria.
func (p BusinessPatch) Apply(b *Business) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Province != nil {
		b.Province = *p.Province
	}
	if p.Municipality != nil {
		b.Municipality = *p.Municipality
	}
	if p.Address != nil {
		b.Address = *p.Address
	}
	if p.WhatsApp != nil {
		b.WhatsApp = *p.WhatsApp
	}
	if p.Instagram != nil {
		b.Instagram = *p.Instagram
	}
	if p.Facebook != nil {
		b.Facebook = *p.Facebook
	}
	if p.Email != nil {
		b.Email = *p.Email
	}
	if p.LogoURL != nil {
		b.LogoURL = *p.LogoURL
	}
	if p.CoverPhotos != nil {
		b.CoverPhotos = append([]string(nil), (*p.CoverPhotos)...)
	}
	if p.CuisineTypes != nil {
		b.CuisineTypes = append([]string(nil), (*p.CuisineTypes)...)
	}
	if p.Schedule != nil {
		b.Schedule = *p.Schedule
	}
	if p.DeliveryEnabled != nil {
		b.DeliveryEnabled = *p.DeliveryEnabled
	}
	if p.DeliveryPriceInside != nil {
		b.DeliveryPriceInside = *p.DeliveryPriceInside
	}
	if p.DeliveryPriceOutside != nil {
		b.DeliveryPriceOutside = *p.DeliveryPriceOutside
	}
}
