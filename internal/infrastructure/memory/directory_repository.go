package memory

import (
	"context"
	"time"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

func seedEmployees() []entity.Employee {
	return []entity.Employee{
		{ID: "admin123", Name: "Admin User", Role: entity.RoleAdmin},
		{ID: "vendedor123", Name: "Vendedor User", Role: entity.RoleVendedor},
		{ID: "productor123", Name: "Productor User", Role: entity.RoleProductor},
		{ID: "superuser", Name: "Super User", Role: entity.RoleAdmin},
	}
}

func seedSuppliers() []entity.Supplier {
	return []entity.Supplier{
		{ID: "SUP-001", Name: "Malta Premium S.A."},
		{ID: "SUP-002", Name: "Levaduras Express"},
		{ID: "SUP-003", Name: "Envases y Barriles Ltda."},
		{ID: "SUP-004", Name: "Químicos Industriales"},
	}
}

// EmployeeRepo tabla mock de empleados (selector de filtros de informes).
type EmployeeRepo struct {
	employees []entity.Employee
	latency   time.Duration
}

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// NewEmployeeRepository construye la tabla mock de empleados.
func NewEmployeeRepository(latency time.Duration) *EmployeeRepo {
	return &EmployeeRepo{employees: seedEmployees(), latency: latency}
}

// List devuelve todos los empleados (copia).
func (r *EmployeeRepo) List(ctx context.Context) ([]entity.Employee, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	out := make([]entity.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

// SupplierRepo tabla mock de proveedores (selector de filtros de compras).
type SupplierRepo struct {
	suppliers []entity.Supplier
	latency   time.Duration
}

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// NewSupplierRepository construye la tabla mock de proveedores.
func NewSupplierRepository(latency time.Duration) *SupplierRepo {
	return &SupplierRepo{suppliers: seedSuppliers(), latency: latency}
}

// List devuelve todos los proveedores (copia).
func (r *SupplierRepo) List(ctx context.Context) ([]entity.Supplier, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	out := make([]entity.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out, nil
}
