package dto

import (
	"github.com/shopspring/decimal"
)

// OrderItemRequest línea del carrito enviada por el cliente. El precio se toma del catálogo.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=999"`
}

// OrderRequest pedido a domicilio.
type OrderRequest struct {
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Zone         string             `json:"zone" validate:"required,oneof=inside outside"`
	ReceiverName string             `json:"receiver_name" validate:"required,max=120"`
	ClientPhone  string             `json:"client_phone" validate:"required,max=30"`
	Address      string             `json:"address" validate:"required,max=300"`
	Notes        string             `json:"notes" validate:"max=500"`
}

// OrderItemResponse línea con precio de catálogo.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// OrderResponse pedido armado con el enlace de WhatsApp.
type OrderResponse struct {
	Items        []OrderItemResponse `json:"items"`
	ItemCount    int                 `json:"item_count"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	DeliveryCost decimal.Decimal     `json:"delivery_cost"`
	Total        decimal.Decimal     `json:"total"`
	Message      string              `json:"message"`
	WhatsAppURL  string              `json:"whatsapp_url"`
}
