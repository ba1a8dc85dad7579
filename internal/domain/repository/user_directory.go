package repository

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// DirectoryEntry entrada del directorio de usuarios, clave por RUT.
// EmployeeCode hace de secreto de login en el esquema actual (comparación
// exacta, sin hash; el upgrade del esquema de credenciales es una decisión
// futura explícita, fuera de este alcance).
type DirectoryEntry struct {
	RUT          string
	EmployeeCode string
	Name         string
	Roles        entity.RoleSet
}

// UserDirectory define el puerto de consulta del directorio de usuarios (DIP).
type UserDirectory interface {
	// FindByRUT devuelve la entrada para el RUT, o nil si no existe.
	FindByRUT(ctx context.Context, rut string) (*DirectoryEntry, error)
}
