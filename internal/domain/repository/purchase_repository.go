package repository

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de lectura de compras (DIP).
type PurchaseRepository interface {
	List(ctx context.Context) ([]entity.Purchase, error)
}
