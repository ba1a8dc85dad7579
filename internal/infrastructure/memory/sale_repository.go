package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

func seedSales() []entity.Sale {
	return []entity.Sale{
		{
			ID:           "SAL-001",
			SellerID:     "admin123",
			CustomerName: "Bar La Esquina",
			Items: []entity.SaleItem{
				{Item: "Cerveza IPA 1L", Quantity: 10, UnitPrice: decimal.NewFromInt(3500)},
				{Item: "Cerveza Stout 1L", Quantity: 5, UnitPrice: decimal.NewFromInt(3800)},
			},
			TotalAmount: decimal.NewFromInt(54000),
			SaleDate:    mustDate("2024-06-05"),
			EventID:     "EVT-001",
		},
		{
			ID:           "SAL-002",
			SellerID:     "vendedor123",
			CustomerName: "Restaurant El Sabor",
			Items: []entity.SaleItem{
				{Item: "Barril Lager 50L", Quantity: 1, UnitPrice: decimal.NewFromInt(80000)},
				{Item: "Cerveza Pilsner 1L", Quantity: 20, UnitPrice: decimal.NewFromInt(3000)},
			},
			TotalAmount: decimal.NewFromInt(140000),
			SaleDate:    mustDate("2024-06-10"),
			EventID:     "EVT-002",
		},
		{
			ID:           "SAL-003",
			SellerID:     "vendedor123",
			CustomerName: "Tienda de Barrio",
			Items: []entity.SaleItem{
				{Item: "Cerveza Amber 1L", Quantity: 15, UnitPrice: decimal.NewFromInt(3200)},
			},
			TotalAmount: decimal.NewFromInt(48000),
			SaleDate:    mustDate("2024-06-25"),
			EventID:     "EVT-001",
		},
		{
			ID:           "SAL-004",
			SellerID:     "admin123",
			CustomerName: "Distribuidora Grande",
			Items: []entity.SaleItem{
				{Item: "Barril IPA 50L", Quantity: 3, UnitPrice: decimal.NewFromInt(85000)},
				{Item: "Barril Stout 50L", Quantity: 2, UnitPrice: decimal.NewFromInt(90000)},
			},
			TotalAmount: decimal.NewFromInt(435000),
			SaleDate:    mustDate("2024-07-02"),
			EventID:     "EVT-003",
		},
		{
			ID:           "SAL-005",
			SellerID:     "superuser",
			CustomerName: "Cliente VIP",
			Items: []entity.SaleItem{
				{Item: "Cerveza Especial 1L", Quantity: 5, UnitPrice: decimal.NewFromInt(5000)},
			},
			TotalAmount: decimal.NewFromInt(25000),
			SaleDate:    mustDate("2024-07-03"),
			EventID:     "EVT-002",
		},
	}
}

// SaleRepo tabla mock de ventas.
type SaleRepo struct {
	sales   []entity.Sale
	latency time.Duration
}

var _ repository.SaleRepository = (*SaleRepo)(nil)

// NewSaleRepository construye la tabla mock de ventas.
func NewSaleRepository(latency time.Duration) *SaleRepo {
	return &SaleRepo{sales: seedSales(), latency: latency}
}

// List devuelve todas las ventas (copia).
func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	out := make([]entity.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}
