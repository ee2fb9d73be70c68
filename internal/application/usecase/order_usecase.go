package usecase

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/catalog"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// OrderUseCase arma pedidos a domicilio con precios del catálogo y devuelve el enlace de WhatsApp.
// No persiste nada.
type OrderUseCase struct {
	businesses *BusinessUseCase
	printer    *message.Printer
}

// NewOrderUseCase construye el caso de uso. locale define los separadores de los montos (ej. "es").
func NewOrderUseCase(businesses *BusinessUseCase, locale string) *OrderUseCase {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &OrderUseCase{businesses: businesses, printer: message.NewPrinter(tag)}
}

// Place valida el pedido contra el catálogo visible del negocio.
func (uc *OrderUseCase) Place(ctx context.Context, businessID string, in dto.OrderRequest) (*dto.OrderResponse, error) {
	b, err := uc.businesses.publicBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	now := uc.businesses.ent.Now()
	if err := catalog.CanOrder(b, now); err != nil {
		return nil, err
	}
	products, err := uc.businesses.repos.Products.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range catalog.Visible(products) {
		byID[p.ID] = p
	}

	cart := catalog.NewCart()
	for _, it := range in.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: producto %s no disponible", domain.ErrInvalidInput, it.ProductID)
		}
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: cantidad inválida", domain.ErrInvalidInput)
		}
		cart.Add(p)
		cart.AdjustQuantity(p.ID, it.Quantity-1)
	}

	order, err := catalog.BuildOrder(b, cart, catalog.Delivery{
		Zone:         catalog.Zone(in.Zone),
		ReceiverName: in.ReceiverName,
		ClientPhone:  in.ClientPhone,
		Address:      in.Address,
		Notes:        in.Notes,
	}, uc.printer, now)
	if err != nil {
		return nil, err
	}

	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.OrderItemResponse{ProductID: it.ProductID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	return &dto.OrderResponse{
		Items:        items,
		ItemCount:    cart.ItemCount(),
		Subtotal:     order.Subtotal,
		DeliveryCost: order.Delivery,
		Total:        order.Total,
		Message:      order.Message,
		WhatsAppURL:  order.Link,
	}, nil
}
