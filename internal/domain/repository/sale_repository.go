package repository

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// SaleRepository define el puerto de lectura de ventas (DIP).
// Devuelve el conjunto completo; el acotado por identidad y los filtros del
// usuario se aplican en la capa de aplicación (scope resolver).
type SaleRepository interface {
	List(ctx context.Context) ([]entity.Sale, error)
}
