package dto

import "time"

// AdminBusinessItem fila del panel de súper administración.
type AdminBusinessItem struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Province      string     `json:"province"`
	Municipality  string     `json:"municipality"`
	Plan          string     `json:"plan"`
	PlanExpiresAt *time.Time `json:"plan_expires_at"`
	Remaining     string     `json:"remaining,omitempty"`
	IsVisible     bool       `json:"is_visible"`
	Role          string     `json:"role"`
	Visits        int64      `json:"visits"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AdminStatsResponse métricas globales de la plataforma.
type AdminStatsResponse struct {
	Total            int `json:"total"`
	Pro              int `json:"pro"`
	Free             int `json:"free"`
	Hidden           int `json:"hidden"`
	EstimatedRevenue int `json:"estimated_monthly_revenue"`
}

// GrantProRequest días de PRO a conceder.
type GrantProRequest struct {
	Days int `json:"days" validate:"required,min=1,max=3650"`
}
