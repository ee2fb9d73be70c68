package catalog

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/plan"
)

// Zone zona de entrega respecto al municipio del negocio.
type Zone string

const (
	ZoneInside  Zone = "inside"
	ZoneOutside Zone = "outside"
)

// DeliveryPrice costo de envío: cero si el negocio no tiene domicilio.
func DeliveryPrice(b *entity.Business, zone Zone) decimal.Decimal {
	if b == nil || !b.DeliveryEnabled {
		return decimal.Zero
	}
	if zone == ZoneOutside {
		return b.DeliveryPriceOutside
	}
	return b.DeliveryPriceInside
}

// Delivery datos de entrega capturados al cliente.
type Delivery struct {
	Zone         Zone
	ReceiverName string
	ClientPhone  string
	Address      string
	Notes        string
}

// Validate exige nombre de quien recibe, teléfono y dirección.
func (d Delivery) Validate() error {
	if strings.TrimSpace(d.ReceiverName) == "" || strings.TrimSpace(d.ClientPhone) == "" || strings.TrimSpace(d.Address) == "" {
		return fmt.Errorf("%w: nombre, teléfono y dirección son obligatorios", domain.ErrInvalidInput)
	}
	if d.Zone != ZoneInside && d.Zone != ZoneOutside {
		return fmt.Errorf("%w: zona de entrega inválida", domain.ErrInvalidInput)
	}
	return nil
}

// CanOrder solo negocios con PRO vigente a now y domicilio activo aceptan pedidos.
func CanOrder(b *entity.Business, now time.Time) error {
	if b == nil || !plan.LimitsAt(b, now).Ordering || !b.DeliveryEnabled {
		return domain.ErrOrderingDisabled
	}
	return nil
}

// Order pedido armado listo para enviarse por WhatsApp. No se persiste.
type Order struct {
	Items    []Item
	Subtotal decimal.Decimal
	Delivery decimal.Decimal
	Total    decimal.Decimal
	Message  string
	Link     string
}

// BuildOrder valida y arma el mensaje y el enlace de WhatsApp del pedido.
func BuildOrder(b *entity.Business, cart *Cart, d Delivery, p *message.Printer, now time.Time) (*Order, error) {
	if err := CanOrder(b, now); err != nil {
		return nil, err
	}
	if cart == nil || cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	phone := ContactDigits(b)
	if phone == "" {
		return nil, fmt.Errorf("%w: el negocio no tiene teléfono de contacto", domain.ErrInvalidInput)
	}

	subtotal := cart.Total()
	shipping := DeliveryPrice(b, d.Zone)
	msg := OrderMessage(b, cart, d, p)
	return &Order{
		Items:    cart.Items(),
		Subtotal: subtotal,
		Delivery: shipping,
		Total:    subtotal.Add(shipping),
		Message:  msg,
		Link:     WhatsAppLink(phone, msg),
	}, nil
}

// OrderMessage texto del pedido con el formato que reciben los negocios.
func OrderMessage(b *entity.Business, cart *Cart, d Delivery, p *message.Printer) string {
	subtotal := cart.Total()
	shipping := DeliveryPrice(b, d.Zone)

	var sb strings.Builder
	sb.WriteString("*NUEVO PEDIDO*\n------------------------\n")
	for _, it := range cart.Items() {
		fmt.Fprintf(&sb, "• %dx %s ($%s)\n", it.Quantity, it.Name, Amount(p, it.Price))
	}
	fmt.Fprintf(&sb, "\n*Subtotal:* $%s\n", Amount(p, subtotal))
	fmt.Fprintf(&sb, "*Costo envío:* $%s\n*Total:* $%s\n\n", Amount(p, shipping), Amount(p, subtotal.Add(shipping)))

	zone := "Dentro de "
	if d.Zone == ZoneOutside {
		zone = "Fuera de "
	}
	sb.WriteString("*ENTREGA:*\n")
	fmt.Fprintf(&sb, "• *Zona:* %s%s\n", zone, b.Municipality)
	fmt.Fprintf(&sb, "• *Nombre:* %s\n", d.ReceiverName)
	fmt.Fprintf(&sb, "• *Tel. Cliente:* %s\n", d.ClientPhone)
	fmt.Fprintf(&sb, "• *Dirección:* %s\n", d.Address)
	if notes := strings.TrimSpace(d.Notes); notes != "" {
		fmt.Fprintf(&sb, "• *Notas:* %s\n", d.Notes)
	}
	return sb.String()
}

// Amount formatea un monto con separadores del idioma del printer (hasta dos decimales).
func Amount(p *message.Printer, v decimal.Decimal) string {
	if v.IsInteger() {
		return p.Sprintf("%v", number.Decimal(v.IntPart()))
	}
	return p.Sprintf("%v", number.Decimal(v.InexactFloat64(), number.MaxFractionDigits(2)))
}

// ContactDigits número de WhatsApp del negocio (o su teléfono) solo con dígitos.
func ContactDigits(b *entity.Business) string {
	raw := b.WhatsApp
	if raw == "" {
		raw = b.Phone
	}
	var sb strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// WhatsAppLink enlace wa.me con el texto codificado como componente de URI.
func WhatsAppLink(digits, text string) string {
	return "https://wa.me/" + digits + "?text=" + encodeComponent(text)
}

var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
