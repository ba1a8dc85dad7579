package entity

import "github.com/shopspring/decimal"

// Contract representa el contrato laboral de un empleado.
// UserRUT es el campo por el que se acota el alcance: un no-administrador
// solo ve su propio contrato.
type Contract struct {
	ID               string // contractId, ej. "CON-001"
	UserName         string
	UserRUT          string
	FixedHours       int
	FixedRatePerHour decimal.Decimal // CLP
	ExtraRatePerHour decimal.Decimal // CLP
}
