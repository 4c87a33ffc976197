// Package pdf genera el comprobante de compra de un pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Marca                │  N° Pedido + Fecha           │
//	│  CLIENTE: Nombre + Email + Dirección de envío                │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  TOTAL + estado del pago                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

var (
	colorBrand = &props.Color{Red: 92, Green: 64, Blue: 51}
	colorGray  = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// ReceiptGenerator implementa ports.ReceiptPDFGenerator con Maroto v2.
type ReceiptGenerator struct {
	brand string
}

// NewReceiptGenerator construye el generador; brand se imprime en el encabezado.
func NewReceiptGenerator(brand string) *ReceiptGenerator {
	if brand == "" {
		brand = "Interiores"
	}
	return &ReceiptGenerator{brand: brand}
}

var _ ports.ReceiptPDFGenerator = (*ReceiptGenerator)(nil)

// Generate arma el comprobante y devuelve los bytes del PDF.
func (g *ReceiptGenerator) Generate(order *entity.Order, customer ports.ReceiptCustomer) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido "+order.ID, true).
		WithAuthor(g.brand, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.3}))
	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(order.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReceiptGenerator) headerRow(order *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.brand, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorBrand, Top: 1}),
			text.New("Comprobante de compra", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PEDIDO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorBrand, Top: 1}),
			text.New(order.ID, props.Text{Size: 7, Align: align.Right, Top: 6}),
			text.New("Fecha: "+order.CreatedAt.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 12, Color: colorGray}),
		),
	)
}

func customerRow(c ports.ReceiptCustomer) core.Row {
	shipTo := "Sin dirección de envío"
	if c.Address != nil {
		shipTo = formatAddress(c.Address)
	}
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorBrand, Top: 1}),
			text.New(nonEmpty(c.Name, "-"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Email: "+nonEmpty(c.Email, "-"), props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New("Envío: "+shipTo, props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorBrand, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func itemRows(items []entity.OrderItem) []core.Row {
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		out = append(out, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(money(it.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(money(it.Subtotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

func totalRow(order *entity.Order) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Estado: "+string(order.Status), props.Text{Size: 8, Top: 2, Color: colorGray}),
			text.New("Pago: "+string(order.PaymentStatus), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(3).Add(text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorBrand, Top: 2, Right: 2})),
		col.New(3).Add(text.New(money(order.Total), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorBrand, Top: 2, Right: 1})),
	)
}

func formatAddress(a *entity.Address) string {
	parts := []string{a.Line1}
	for _, s := range []string{a.Line2, a.City, a.State, a.PostalCode, a.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea con separador de miles y dos decimales: 1234.5 → "$1.234,50".
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := "$" + groupThousands(intPart) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un entero sin signo: "1000000" → "1.000.000".
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
