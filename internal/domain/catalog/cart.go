package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// Item línea del carrito. El precio es el del catálogo al momento de agregar.
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal precio por cantidad.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart carrito efímero de un cliente; conserva el orden en que se agregaron los productos.
type Cart struct {
	items []Item
}

// NewCart carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// Add suma una unidad del producto, creando la línea si no existe.
func (c *Cart) Add(p *entity.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1})
}

// AdjustQuantity ajusta la cantidad de una línea en delta; nunca baja de 1.
func (c *Cart) AdjustQuantity(productID string, delta int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return
		}
	}
}

// Remove quita la línea del producto.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items copia de las líneas.
func (c *Cart) Items() []Item {
	return append([]Item(nil), c.items...)
}

// IsEmpty indica si no hay líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total suma exacta de precio por cantidad.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ItemCount suma de cantidades.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}
