package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Barrel representa un barril del inventario.
//
// IsFull marca si el barril contiene su capacidad nominal completa; un barril
// parcialmente lleno o vacío lleva false (no se modela el volumen exacto).
type Barrel struct {
	ID             string          // ID_barril, ej. "BRL-001"
	BeerName       string          // nombre de la cerveza (clave de agrupación del estado)
	MainFlavor     string          // sabor principal
	BrewedAt       time.Time       // fecha de elaboración (fecha calendario)
	LotID          string          // lote de producción (muchos barriles por lote)
	ABV            decimal.Decimal // grado alcohólico
	CapacityLiters int             // capacidad en litros, entero positivo
	IsFull         bool
}
