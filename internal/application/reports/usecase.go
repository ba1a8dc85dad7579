// Package reports genera los informes de ventas y compras (PDF) sobre los
// conjuntos de registros ya acotados por identidad y filtrados.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-api/internal/application/auth"
	"github.com/tu-usuario/cerveceria-api/internal/application/scope"
	"github.com/tu-usuario/cerveceria-api/internal/domain"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase casos de uso de informes.
type ReportUseCase struct {
	sales     repository.SaleRepository
	purchases repository.PurchaseRepository
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(sales repository.SaleRepository, purchases repository.PurchaseRepository, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{sales: sales, purchases: purchases, generator: generator}
}

// SalesPDF genera el informe de ventas para la sesión. El acotado es el mismo
// del listado de ventas: un no-administrador solo informa sus propias ventas.
func (uc *ReportUseCase) SalesPDF(ctx context.Context, s auth.Session, criteria scope.SaleCriteria) ([]byte, string, error) {
	if !s.Authenticated() {
		return nil, "", domain.ErrForbidden
	}
	all, err := uc.sales.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("informe ventas: %w", err)
	}
	filtered := scope.ForSales(s, criteria).Apply(all)

	total := decimal.Zero
	for _, sale := range filtered {
		total = total.Add(sale.TotalAmount)
	}

	report := &SalesReport{
		GeneratedFor: s.Identity.Name,
		Period:       periodOf(criteria.StartDate, criteria.EndDate),
		Sales:        filtered,
		Total:        total,
	}
	pdf, err := uc.generator.GenerateSalesReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("informe ventas: render: %w", err)
	}
	return pdf, "informe-ventas.pdf", nil
}

// PurchasesPDF genera el informe de compras (recurso global, solo admin llega
// aquí por la política de acceso).
func (uc *ReportUseCase) PurchasesPDF(ctx context.Context, s auth.Session, criteria scope.PurchaseCriteria) ([]byte, string, error) {
	if !s.Authenticated() {
		return nil, "", domain.ErrForbidden
	}
	all, err := uc.purchases.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("informe compras: %w", err)
	}
	filtered := scope.ForPurchases(criteria).Apply(all)

	total := decimal.Zero
	for _, p := range filtered {
		total = total.Add(p.TotalPaid)
	}

	report := &PurchasesReport{
		GeneratedFor: s.Identity.Name,
		Period:       periodOf(criteria.StartDate, criteria.EndDate),
		Purchases:    filtered,
		Total:        total,
	}
	pdf, err := uc.generator.GeneratePurchasesReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("informe compras: render: %w", err)
	}
	return pdf, "informe-compras.pdf", nil
}

func periodOf(start, end *time.Time) Period {
	var p Period
	if start != nil {
		p.Start = start.Format(dateLayout)
	}
	if end != nil {
		p.End = end.Format(dateLayout)
	}
	return p
}
