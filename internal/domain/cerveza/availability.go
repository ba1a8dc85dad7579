// Package cerveza contiene la lógica de dominio del estado de las cervezas:
// agrupa los barriles del inventario por nombre y deriva un estado de
// disponibilidad por cerveza.
package cerveza

import "github.com/tu-usuario/cerveceria-api/internal/domain/entity"

// Status estado de disponibilidad de una cerveza.
type Status string

const (
	StatusDisponible Status = "disponible"
	StatusBajoStock  Status = "bajo_stock"
	// StatusAgotado es el estado piso declarado. Con el algoritmo actual un
	// grupo solo se crea al encontrar un barril, así que nunca queda vacío y
	// este estado no se produce. Se conserva por si más adelante se permiten
	// grupos sin barriles (ver test AgotadoInalcanzable).
	StatusAgotado Status = "agotado"
)

// BeerAvailability estado derivado de una cerveza. Nunca se persiste; se
// recalcula completo en cada llamada sobre el inventario vigente.
type BeerAvailability struct {
	BeerName      string
	Status        Status
	TotalCapacity int            // suma de capacidades de todos los barriles del grupo
	CurrentVolume int            // suma de capacidades de los barriles llenos
	Barrels       []entity.Barrel
}

// ComputeAvailability agrupa los barriles por nombre exacto de cerveza (sin
// normalización de mayúsculas ni espacios) y calcula el estado de cada grupo:
//
//   - disponible: al menos un barril del grupo está lleno
//   - bajo_stock: hay barriles pero ninguno lleno
//
// El orden de salida es el de primera aparición de cada cerveza en la
// entrada. No muta los barriles recibidos.
func ComputeAvailability(barrels []entity.Barrel) []BeerAvailability {
	byName := make(map[string]int, len(barrels)) // nombre -> índice en out
	out := make([]BeerAvailability, 0, len(barrels))

	for _, b := range barrels {
		idx, ok := byName[b.BeerName]
		if !ok {
			idx = len(out)
			byName[b.BeerName] = idx
			out = append(out, BeerAvailability{
				BeerName: b.BeerName,
				Status:   StatusAgotado, // piso; se eleva más abajo
			})
		}
		g := &out[idx]
		g.TotalCapacity += b.CapacityLiters
		if b.IsFull {
			g.CurrentVolume += b.CapacityLiters
		}
		g.Barrels = append(g.Barrels, b)
	}

	for i := range out {
		anyFull := false
		for _, b := range out[i].Barrels {
			if b.IsFull {
				anyFull = true
				break
			}
		}
		if anyFull {
			out[i].Status = StatusDisponible
		} else {
			out[i].Status = StatusBajoStock
		}
	}
	return out
}
