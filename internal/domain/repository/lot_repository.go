package repository

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// LotRepository define el puerto de lectura de lotes (DIP).
type LotRepository interface {
	// GetByID devuelve el lote, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Lot, error)
}
