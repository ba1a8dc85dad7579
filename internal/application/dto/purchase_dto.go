package dto

import "github.com/shopspring/decimal"

// PurchaseItemResponse línea de detalle de una compra.
type PurchaseItemResponse struct {
	Item      string          `json:"item"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID              string                 `json:"id"`
	Supplier        string                 `json:"supplier"`
	Items           []PurchaseItemResponse `json:"items"`
	TotalPaid       decimal.Decimal        `json:"total_paid"`
	TransactionDate string                 `json:"transaction_date"` // YYYY-MM-DD
}
