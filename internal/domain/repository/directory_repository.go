package repository

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// EmployeeRepository define el puerto del directorio de empleados (DIP).
type EmployeeRepository interface {
	List(ctx context.Context) ([]entity.Employee, error)
}

// SupplierRepository define el puerto del directorio de proveedores (DIP).
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
}
