package dto

import "github.com/shopspring/decimal"

// SaleItemResponse línea de detalle de una venta.
type SaleItemResponse struct {
	Item      string          `json:"item"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           string             `json:"id"`
	SellerID     string             `json:"seller_id"`
	CustomerName string             `json:"customer_name"`
	Items        []SaleItemResponse `json:"items"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	SaleDate     string             `json:"sale_date"` // YYYY-MM-DD
	EventID      string             `json:"event_id,omitempty"`
}
