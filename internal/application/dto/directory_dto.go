package dto

// EmployeeResponse entrada del directorio de empleados.
type EmployeeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// SupplierResponse entrada del directorio de proveedores.
type SupplierResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
