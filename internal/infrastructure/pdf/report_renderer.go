// Package pdf implementa la exportación del reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Valor inventario / Productos / Stock bajo            │
//	│        Ingresos / Compras                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Productos | Unidades | Valor            │
//	│  TABLA: SKU | Producto | Cant. | Reorden  (top y stock bajo) │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ ports.ReportRenderer = (*ReportRenderer)(nil)

// ReportRenderer implementa ports.ReportRenderer usando Maroto v2.
type ReportRenderer struct {
	title string
}

// NewReportRenderer construye el renderer. title aparece en el encabezado y en los metadatos.
func NewReportRenderer(title string) *ReportRenderer {
	if title == "" {
		title = "Reporte de inventario"
	}
	return &ReportRenderer{title: title}
}

func (g *ReportRenderer) Format() string      { return "pdf" }
func (g *ReportRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *ReportRenderer) Render(_ context.Context, rep *dto.InventoryReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, rep.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Análisis por categoría"))
	m.AddRows(tableHeaderRow(
		header{"Categoría", 6, align.Left},
		header{"Productos", 2, align.Right},
		header{"Unidades", 2, align.Right},
		header{"Valor", 2, align.Right},
	))
	for _, c := range rep.CategoryAnalysis {
		m.AddRows(row.New(6).Add(
			cell(nonEmpty(c.Category, "Sin categoría"), 6, align.Left, nil),
			cell(strconv.Itoa(c.Products), 2, align.Right, nil),
			cell(strconv.Itoa(c.Units), 2, align.Right, nil),
			cell(formatMoney(c.InventoryValue), 2, align.Right, nil),
		))
	}

	m.AddRows(sectionTitle("Productos con más existencias"))
	m.AddRows(productRows(rep.TopProducts, nil)...)

	m.AddRows(sectionTitle("Productos con stock bajo"))
	m.AddRows(productRows(rep.LowStockProducts, colorWarn)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title, generatedAt string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// kpiRow: indicadores principales en dos columnas etiqueta/valor.
func kpiRow(rep *dto.InventoryReportDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Left, Left: 1})
	}
	return row.New(26).Add(
		col.New(3).Add(
			label("Valor inventario:"),
			label("Productos:"),
			label("Stock bajo:"),
		),
		col.New(3).Add(
			value(formatMoney(rep.InventoryValue)),
			value(strconv.Itoa(rep.TotalProducts)),
			value(strconv.Itoa(rep.LowStockItems)),
		),
		col.New(3).Add(
			label("Ingresos:"),
			label("Compras:"),
		),
		col.New(3).Add(
			value(formatMoney(rep.TotalRevenue)),
			value(formatMoney(rep.TotalPurchases)),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
	))
}

type header struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(hs ...header) core.Row {
	cols := make([]core.Col, 0, len(hs))
	for _, h := range hs {
		cols = append(cols, col.New(h.size).Add(text.New(h.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: h.align, Color: colorGray, Top: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func cell(s string, size int, a align.Type, color *props.Color) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Color: color}))
}

// productRows: cabecera + una fila por producto; sin productos, una fila "Sin datos".
func productRows(ps []dto.ProductResponse, color *props.Color) []core.Row {
	rows := []core.Row{tableHeaderRow(
		header{"SKU", 2, align.Left},
		header{"Producto", 6, align.Left},
		header{"Cantidad", 2, align.Right},
		header{"Reorden", 2, align.Right},
	)}
	if len(ps) == 0 {
		return append(rows, row.New(6).Add(cell("Sin datos", 12, align.Left, colorGray)))
	}
	for _, p := range ps {
		rows = append(rows, row.New(6).Add(
			cell(p.SKU, 2, align.Left, nil),
			cell(p.Name, 6, align.Left, nil),
			cell(strconv.Itoa(p.Quantity), 2, align.Right, color),
			cell(strconv.Itoa(p.ReorderPoint), 2, align.Right, nil),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 12210 → "$12.210,00", 4619.73 → "$4.619,73"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(2), ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + "$" + string(buf) + "," + frac
}
