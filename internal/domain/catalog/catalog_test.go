package catalog_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/catalog"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

var orderAt = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func product(id, cat, name string, price int64, visible bool) *entity.Product {
	return &entity.Product{ID: id, CategoryID: cat, Name: name, Price: decimal.NewFromInt(price), IsVisible: visible}
}

func menu() []*entity.Product {
	return []*entity.Product{
		product("p1", "c-bebidas", "Mojito", 250, true),
		product("p2", "c-platos", "Ropa vieja", 900, true),
		product("p3", "c-bebidas", "Cerveza", 200, false),
		product("p4", "", "Flan", 150, true),
	}
}

func TestPublicMenu(t *testing.T) {
	all := catalog.PublicMenu(menu(), catalog.AllCategories)
	require.Len(t, all, 3)

	drinks := catalog.PublicMenu(menu(), "c-bebidas")
	require.Len(t, drinks, 1)
	assert.Equal(t, "p1", drinks[0].ID)

	none := catalog.PublicMenu(menu(), "no-existe")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSearch_IncluyeOcultos(t *testing.T) {
	got := catalog.Search(menu(), "CERV", catalog.AllCategoriesAdmin)
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}

func TestCountByCategory(t *testing.T) {
	counts := catalog.CountByCategory(menu())
	assert.Equal(t, 2, counts["c-bebidas"])
	assert.Equal(t, 1, counts["c-platos"])
}

func TestCart(t *testing.T) {
	c := catalog.NewCart()
	p1 := product("p1", "", "Mojito", 250, true)
	p2 := product("p2", "", "Flan", 150, true)

	c.Add(p1)
	c.Add(p1)
	c.Add(p2)
	assert.Equal(t, 3, c.ItemCount())
	assert.True(t, c.Total().Equal(decimal.NewFromInt(650)))

	c.AdjustQuantity("p1", -5)
	assert.Equal(t, 1, c.Items()[0].Quantity, "la cantidad nunca baja de 1")

	c.AdjustQuantity("p2", 2)
	assert.Equal(t, 3, c.Items()[1].Quantity)

	c.Remove("p1")
	require.Len(t, c.Items(), 1)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(450)))
}

func TestCart_TotalExacto(t *testing.T) {
	c := catalog.NewCart()
	p := &entity.Product{ID: "x", Name: "x", Price: decimal.RequireFromString("0.10")}
	for i := 0; i < 3; i++ {
		c.Add(p)
	}
	assert.Equal(t, "0.3", c.Total().String())
}

func deliveryBiz() *entity.Business {
	return &entity.Business{
		Name:                 "La Bodeguita",
		Municipality:         "Plaza de la Revolución",
		Phone:                "+53 5 555-1234",
		Plan:                 entity.PlanPro,
		DeliveryEnabled:      true,
		DeliveryPriceInside:  decimal.NewFromInt(100),
		DeliveryPriceOutside: decimal.NewFromInt(300),
	}
}

func TestDeliveryPrice(t *testing.T) {
	b := deliveryBiz()
	assert.True(t, catalog.DeliveryPrice(b, catalog.ZoneInside).Equal(decimal.NewFromInt(100)))
	assert.True(t, catalog.DeliveryPrice(b, catalog.ZoneOutside).Equal(decimal.NewFromInt(300)))
	b.DeliveryEnabled = false
	assert.True(t, catalog.DeliveryPrice(b, catalog.ZoneOutside).IsZero())
}

func TestBuildOrder(t *testing.T) {
	b := deliveryBiz()
	c := catalog.NewCart()
	c.Add(product("p1", "", "Mojito", 250, true))
	c.AdjustQuantity("p1", 1)
	c.Add(product("p2", "", "Flan", 150, true))

	d := catalog.Delivery{Zone: catalog.ZoneInside, ReceiverName: "Ana", ClientPhone: "55512345", Address: "Calle 23 #10", Notes: "Timbre roto"}
	p := message.NewPrinter(language.Spanish)

	order, err := catalog.BuildOrder(b, c, d, p, orderAt)
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(650)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(750)))
	assert.True(t, strings.HasPrefix(order.Message, "*NUEVO PEDIDO*\n------------------------\n"))
	assert.Contains(t, order.Message, "• 2x Mojito ($250)\n")
	assert.Contains(t, order.Message, "• 1x Flan ($150)\n")
	assert.Contains(t, order.Message, "*Subtotal:* $650\n")
	assert.Contains(t, order.Message, "*Costo envío:* $100\n*Total:* $750\n")
	assert.Contains(t, order.Message, "• *Zona:* Dentro de Plaza de la Revolución\n")
	assert.Contains(t, order.Message, "• *Notas:* Timbre roto\n")

	require.True(t, strings.HasPrefix(order.Link, "https://wa.me/5355551234?text="))
	encoded := strings.TrimPrefix(order.Link, "https://wa.me/5355551234?text=")
	assert.NotContains(t, encoded, "+", "los espacios van como %20")
	decoded, err := url.PathUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, order.Message, decoded)
}

func TestBuildOrder_SinNotasNoAgregaLinea(t *testing.T) {
	c := catalog.NewCart()
	c.Add(product("p1", "", "Mojito", 250, true))
	d := catalog.Delivery{Zone: catalog.ZoneOutside, ReceiverName: "Ana", ClientPhone: "5", Address: "x", Notes: "   "}
	order, err := catalog.BuildOrder(deliveryBiz(), c, d, message.NewPrinter(language.Spanish), orderAt)
	require.NoError(t, err)
	assert.NotContains(t, order.Message, "Notas")
	assert.Contains(t, order.Message, "Fuera de Plaza de la Revolución")
}

func TestBuildOrder_Rechazos(t *testing.T) {
	p := message.NewPrinter(language.Spanish)
	d := catalog.Delivery{Zone: catalog.ZoneInside, ReceiverName: "Ana", ClientPhone: "5", Address: "x"}
	full := catalog.NewCart()
	full.Add(product("p1", "", "Mojito", 250, true))

	free := deliveryBiz()
	free.Plan = entity.PlanFree
	_, err := catalog.BuildOrder(free, full, d, p, orderAt)
	assert.ErrorIs(t, err, domain.ErrOrderingDisabled)

	noDelivery := deliveryBiz()
	noDelivery.DeliveryEnabled = false
	_, err = catalog.BuildOrder(noDelivery, full, d, p, orderAt)
	assert.ErrorIs(t, err, domain.ErrOrderingDisabled)

	vencido := deliveryBiz()
	ayer := orderAt.Add(-24 * time.Hour)
	vencido.PlanExpiresAt = &ayer
	_, err = catalog.BuildOrder(vencido, full, d, p, orderAt)
	assert.ErrorIs(t, err, domain.ErrOrderingDisabled, "un PRO vencido sin reconciliar no acepta pedidos")

	_, err = catalog.BuildOrder(deliveryBiz(), catalog.NewCart(), d, p, orderAt)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	missing := d
	missing.Address = ""
	_, err = catalog.BuildOrder(deliveryBiz(), full, missing, p, orderAt)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactDigits_PrefiereWhatsApp(t *testing.T) {
	b := &entity.Business{Phone: "+53 7 111", WhatsApp: "+53 (5) 222-33"}
	assert.Equal(t, "53522233", catalog.ContactDigits(b))
	b.WhatsApp = ""
	assert.Equal(t, "537111", catalog.ContactDigits(b))
}
