package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

func seedPurchases() []entity.Purchase {
	return []entity.Purchase{
		{
			ID:       "PUR-001",
			Supplier: "Malta Premium S.A.",
			Items: []entity.PurchaseItem{
				{Item: "Malta Pale Ale", Quantity: 500, UnitPrice: decimal.NewFromInt(850)},
				{Item: "Lúpulo Cascade", Quantity: 10, UnitPrice: decimal.NewFromInt(15000)},
			},
			TotalPaid:       decimal.NewFromInt(440000),
			TransactionDate: mustDate("2024-06-01"),
		},
		{
			ID:       "PUR-002",
			Supplier: "Levaduras Express",
			Items: []entity.PurchaseItem{
				{Item: "Levadura Ale (paquete)", Quantity: 20, UnitPrice: decimal.NewFromInt(7000)},
			},
			TotalPaid:       decimal.NewFromInt(140000),
			TransactionDate: mustDate("2024-06-15"),
		},
		{
			ID:       "PUR-003",
			Supplier: "Envases y Barriles Ltda.",
			Items: []entity.PurchaseItem{
				{Item: "Barril Acero Inox 50L", Quantity: 5, UnitPrice: decimal.NewFromInt(120000)},
				{Item: "Botellas Vidrio 1L (caja)", Quantity: 10, UnitPrice: decimal.NewFromInt(8000)},
			},
			TotalPaid:       decimal.NewFromInt(680000),
			TransactionDate: mustDate("2024-06-20"),
		},
		{
			ID:       "PUR-004",
			Supplier: "Químicos Industriales",
			Items: []entity.PurchaseItem{
				{Item: "Ácido Láctico", Quantity: 2, UnitPrice: decimal.NewFromInt(25000)},
				{Item: "Clarificante (L)", Quantity: 5, UnitPrice: decimal.NewFromInt(12000)},
			},
			TotalPaid:       decimal.NewFromInt(110000),
			TransactionDate: mustDate("2024-07-01"),
		},
	}
}

// PurchaseRepo tabla mock de compras.
type PurchaseRepo struct {
	purchases []entity.Purchase
	latency   time.Duration
}

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// NewPurchaseRepository construye la tabla mock de compras.
func NewPurchaseRepository(latency time.Duration) *PurchaseRepo {
	return &PurchaseRepo{purchases: seedPurchases(), latency: latency}
}

// List devuelve todas las compras (copia).
func (r *PurchaseRepo) List(ctx context.Context) ([]entity.Purchase, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	out := make([]entity.Purchase, len(r.purchases))
	copy(out, r.purchases)
	return out, nil
}
