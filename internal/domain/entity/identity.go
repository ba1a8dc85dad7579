package entity

// Identity representa un actor autenticado.
//
// Invariante: después de una autenticación exitosa siempre tiene al menos un
// rol (el directorio de usuarios lo garantiza al cargarse).
type Identity struct {
	RUT          string  // identificador externo estable (RUT chileno)
	EmployeeCode string  // código interno de empleado (id_empleado)
	Name         string  // nombre para mostrar
	Roles        RoleSet
}

// IsAdmin indica si la identidad tiene el rol administrador.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Roles.Has(RoleAdmin)
}
