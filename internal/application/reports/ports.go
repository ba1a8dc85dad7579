package reports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// Period rango de fechas del informe tal como lo pidió el usuario
// (strings YYYY-MM-DD, vacíos si no se acotó).
type Period struct {
	Start string
	End   string
}

// SalesReport datos ya resueltos (acotados y filtrados) para el informe de ventas.
type SalesReport struct {
	GeneratedFor string // nombre del usuario que genera el informe
	Period       Period
	Sales        []entity.Sale
	Total        decimal.Decimal
}

// PurchasesReport datos ya resueltos para el informe de compras.
type PurchasesReport struct {
	GeneratedFor string
	Period       Period
	Purchases    []entity.Purchase
	Total        decimal.Decimal
}

// ReportGenerator renderiza los informes como PDF. Lo implementa
// infrastructure/pdf; la interfaz mantiene a la capa de aplicación sin
// conocimiento del motor de render.
type ReportGenerator interface {
	GenerateSalesReport(ctx context.Context, report *SalesReport) ([]byte, error)
	GeneratePurchasesReport(ctx context.Context, report *PurchasesReport) ([]byte, error)
}
