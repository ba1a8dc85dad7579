// Package pdf implementa la generación de los informes de ventas y compras
// en PDF (el botón "Generar Informe" de las páginas de informes).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe  │  Generado por + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PERÍODO: Desde / Hasta (si el usuario acotó fechas)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por venta o compra                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL PERÍODO (CLP)                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/cerveceria-api/internal/application/reports"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 63, Blue: 4} // ámbar cervecero
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// clp formatea montos en pesos chilenos con separador de miles es-CL.
var clp = message.NewPrinter(language.Spanish)

func formatCLP(d decimal.Decimal) string {
	return clp.Sprintf("$%d", d.IntPart())
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ reports.ReportGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF del informe de ventas y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(_ context.Context, report *reports.SalesReport) ([]byte, error) {
	m := newDocument("Informe de Ventas")

	m.AddRows(headerRow("INFORME DE VENTAS", report.GeneratedFor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(periodRow(report.Period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(salesTableHeaderRow())
	for _, s := range report.Sales {
		m.AddRows(salesDetailRow(&s))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("TOTAL VENTAS:", report.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe de ventas: %w", err)
	}
	return doc.GetBytes(), nil
}

// GeneratePurchasesReport genera el PDF del informe de compras y devuelve sus bytes.
func (g *MarotoReportGenerator) GeneratePurchasesReport(_ context.Context, report *reports.PurchasesReport) ([]byte, error) {
	m := newDocument("Informe de Compras")

	m.AddRows(headerRow("INFORME DE COMPRAS", report.GeneratedFor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(periodRow(report.Period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(purchasesTableHeaderRow())
	for _, p := range report.Purchases {
		m.AddRows(purchasesDetailRow(&p))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("TOTAL COMPRAS:", report.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe de compras: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: título del informe (izq) y quién lo generó + cuándo (der).
func headerRow(title, generatedFor string) core.Row {
	generado := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Cervecería Ops", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado por: "+generatedFor, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Fecha: "+generado, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// periodRow: rango de fechas acotado, o "todo el historial" si no se acotó.
func periodRow(p reports.Period) core.Row {
	label := "Período: todo el historial"
	if p.Start != "" || p.End != "" {
		label = fmt.Sprintf("Período: %s — %s", nonEmpty(p.Start, "inicio"), nonEmpty(p.End, "hoy"))
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(label, props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
	)
}

func salesTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Vendedor", 2, align.Left),
		h("Cliente", 4, align.Left),
		h("Evento", 2, align.Center),
		h("Total", 2, align.Right),
	)
}

func salesDetailRow(s *entity.Sale) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			s.SaleDate.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			s.SellerID,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(4).Add(text.New(
			s.CustomerName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			s.EventID,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			formatCLP(s.TotalAmount),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

func purchasesTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Proveedor", 4, align.Left),
		h("Ítems", 4, align.Left),
		h("Total", 2, align.Right),
	)
}

func purchasesDetailRow(p *entity.Purchase) core.Row {
	items := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fmt.Sprintf("%s x%d", it.Item, it.Quantity))
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(
			p.TransactionDate.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(4).Add(text.New(
			p.Supplier,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(4).Add(text.New(
			strings.Join(items, ", "),
			props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
		)),
		col.New(2).Add(text.New(
			formatCLP(p.TotalPaid),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: total del período alineado a la derecha.
func totalRow(label string, total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatCLP(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
