package entity

// Employee entrada del directorio de empleados (para filtros de informes).
type Employee struct {
	ID   string // código de empleado
	Name string
	Role Role // rol principal mostrado en el selector
}

// Supplier entrada del directorio de proveedores (para filtros de compras).
type Supplier struct {
	ID   string // ej. "SUP-001"
	Name string
}
