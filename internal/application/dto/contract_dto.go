package dto

import "github.com/shopspring/decimal"

// ContractResponse salida de un contrato laboral.
type ContractResponse struct {
	ID               string          `json:"id"`
	UserName         string          `json:"user_name"`
	UserRUT          string          `json:"user_rut"`
	FixedHours       int             `json:"fixed_hours"`
	FixedRatePerHour decimal.Decimal `json:"fixed_rate_per_hour"`
	ExtraRatePerHour decimal.Decimal `json:"extra_rate_per_hour"`
}
