package usecase

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

// DirectoryUseCase directorios de empleados y proveedores (para los
// selectores de filtros de informes).
type DirectoryUseCase struct {
	employees repository.EmployeeRepository
	suppliers repository.SupplierRepository
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(employees repository.EmployeeRepository, suppliers repository.SupplierRepository) *DirectoryUseCase {
	return &DirectoryUseCase{employees: employees, suppliers: suppliers}
}

// Employees devuelve el directorio de empleados.
func (uc *DirectoryUseCase) Employees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.EmployeeResponse{ID: e.ID, Name: e.Name, Role: string(e.Role)})
	}
	return out, nil
}

// Suppliers devuelve el directorio de proveedores.
func (uc *DirectoryUseCase) Suppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}
