package repository

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// ContractRepository define el puerto de lectura de contratos (DIP).
type ContractRepository interface {
	List(ctx context.Context) ([]entity.Contract, error)
}
