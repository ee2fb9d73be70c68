// Package pdf genera el menú imprimible de un negocio con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre + tipo        │  Municipio, Provincia        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Dirección / Tel / WhatsApp                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA                                                   │
//	│    Producto ........................................ Precio  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR al menú público + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 180, Green: 40, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// uncategorized título de la sección de productos sin categoría.
const uncategorized = "Otros"

var _ ports.MenuPDFGenerator = (*MarotoMenuGenerator)(nil)

// MarotoMenuGenerator implementa ports.MenuPDFGenerator.
type MarotoMenuGenerator struct{}

// NewMarotoMenuGenerator construye el generador.
func NewMarotoMenuGenerator() *MarotoMenuGenerator { return &MarotoMenuGenerator{} }

// Generate arma el PDF con los productos recibidos (el llamador ya filtró los ocultos).
func (g *MarotoMenuGenerator) Generate(b *entity.Business, publicURL string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Menú "+b.Name, true).
		WithAuthor(b.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(b))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(contactRow(b))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, s := range sections(b) {
		m.AddRows(sectionTitleRow(s.title))
		for _, p := range s.products {
			m.AddRows(productRows(p)...)
		}
		m.AddRows(row.New(3))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(publicURL))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar menú: %w", err)
	}
	return doc.GetBytes(), nil
}

type section struct {
	title    string
	products []*entity.Product
}

// sections agrupa los productos en el orden de las categorías; los huérfanos van al final.
func sections(b *entity.Business) []section {
	byCat := make(map[string][]*entity.Product)
	for _, p := range b.Products {
		byCat[p.CategoryID] = append(byCat[p.CategoryID], p)
	}
	out := make([]section, 0, len(b.Categories)+1)
	for _, c := range b.Categories {
		if ps := byCat[c.ID]; len(ps) > 0 {
			out = append(out, section{title: c.Name, products: ps})
			delete(byCat, c.ID)
		}
	}
	var rest []*entity.Product
	for _, p := range b.Products {
		if _, ok := byCat[p.CategoryID]; ok {
			rest = append(rest, p)
		}
	}
	if len(rest) > 0 {
		out = append(out, section{title: uncategorized, products: rest})
	}
	return out
}

func headerRow(b *entity.Business) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(b.Name, props.Text{Style: fontstyle.Bold, Size: 18, Color: colorPrimary, Top: 1}),
			text.New(b.Type, props.Text{Size: 9, Top: 11, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(strings.Trim(b.Municipality+", "+b.Province, ", "), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func contactRow(b *entity.Business) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   WhatsApp: %s",
			nonEmpty(b.Address, "-"),
			nonEmpty(b.Phone, "-"),
			nonEmpty(b.WhatsApp, "-"),
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(strings.ToUpper(title), props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
	))
}

func productRows(p *entity.Product) []core.Row {
	name := p.Name
	if p.IsHighlighted {
		name = "* " + name
	}
	rows := []core.Row{row.New(6).Add(
		col.New(9).Add(text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Left: 2, Top: 1})),
		col.New(3).Add(text.New(formatPrice(p.Price)+" CUP", props.Text{Size: 10, Align: align.Right, Top: 1})),
	)}
	if p.Description != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(p.Description, props.Text{Size: 8, Left: 4, Color: colorGray}),
		)))
	}
	return rows
}

func footerRow(publicURL string) core.Row {
	return row.New(45).Add(
		col.New(4).Add(code.NewQr(publicURL, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Escanea el código QR para ver el menú\nactualizado y hacer tu pedido.", props.Text{
				Size: 9, Top: 8, Left: 3, Color: colorGray,
			}),
			text.New(publicURL, props.Text{Size: 7, Top: 24, Left: 3, Color: colorPrimary}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatPrice agrupa miles con punto; los centavos solo aparecen si existen.
// Ej: 25000 → "25.000", 1250.5 → "1.250,50"
func formatPrice(d decimal.Decimal) string {
	whole := d.Truncate(0)
	s := groupThousands(whole.Abs().StringFixed(0))
	if d.IsNegative() {
		s = "-" + s
	}
	if frac := d.Sub(whole).Abs(); !frac.IsZero() {
		s += "," + frac.StringFixed(2)[2:]
	}
	return s
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
