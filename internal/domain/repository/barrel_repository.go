package repository

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// BarrelRepository define el puerto de lectura de barriles (DIP).
type BarrelRepository interface {
	List(ctx context.Context) ([]entity.Barrel, error)
	ListByLot(ctx context.Context, lotID string) ([]entity.Barrel, error)
}

// BarrelCreator define el puerto de alta de barriles. Separado de la lectura:
// la creación puede ir contra la tabla gestionada en PostgreSQL mientras la
// lectura sigue sobre las tablas mock.
type BarrelCreator interface {
	Create(ctx context.Context, barrel *entity.Barrel) error
}
