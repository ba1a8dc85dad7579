package dto

import "github.com/shopspring/decimal"

// CreateBarrelRequest entrada para dar de alta un barril.
// Las fechas viajan como fecha calendario YYYY-MM-DD.
type CreateBarrelRequest struct {
	BeerName       string          `json:"beer_name" validate:"required,min=1,max=200"`
	MainFlavor     string          `json:"main_flavor" validate:"omitempty,max=200"`
	BrewedAt       string          `json:"brewed_at" validate:"omitempty,datetime=2006-01-02"`
	LotID          string          `json:"lot_id" validate:"omitempty,max=100"`
	ABV            decimal.Decimal `json:"abv"`
	CapacityLiters int             `json:"capacity_liters" validate:"required,gt=0"`
	IsFull         bool            `json:"is_full"`
}

// BarrelResponse salida de un barril.
type BarrelResponse struct {
	ID             string          `json:"id"`
	BeerName       string          `json:"beer_name"`
	MainFlavor     string          `json:"main_flavor,omitempty"`
	BrewedAt       string          `json:"brewed_at,omitempty"` // YYYY-MM-DD
	LotID          string          `json:"lot_id,omitempty"`
	ABV            decimal.Decimal `json:"abv"`
	CapacityLiters int             `json:"capacity_liters"`
	IsFull         bool            `json:"is_full"`
}
