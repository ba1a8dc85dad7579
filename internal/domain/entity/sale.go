package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de detalle de una venta.
type SaleItem struct {
	Item      string
	Quantity  int
	UnitPrice decimal.Decimal // CLP
}

// Sale representa una venta realizada por un empleado.
// SellerID es el código de empleado del vendedor: es el campo por el que se
// acota el alcance de datos para no-administradores.
type Sale struct {
	ID           string // saleId, ej. "SAL-001"
	SellerID     string // código de empleado
	CustomerName string
	Items        []SaleItem
	TotalAmount  decimal.Decimal // CLP
	SaleDate     time.Time       // fecha calendario
	EventID      string          // idEvento, ej. "EVT-001" (puede ser vacío)
}
