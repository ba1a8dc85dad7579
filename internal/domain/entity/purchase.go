package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem línea de detalle de una compra a proveedor.
type PurchaseItem struct {
	Item      string
	Quantity  int
	UnitPrice decimal.Decimal // CLP
}

// Purchase representa una compra de insumos. Recurso global: todo rol
// autorizado para el recurso ve todas las compras.
type Purchase struct {
	ID              string // purchaseId, ej. "PUR-001"
	Supplier        string
	Items           []PurchaseItem
	TotalPaid       decimal.Decimal // CLP
	TransactionDate time.Time       // fecha calendario
}
