package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
)

// seedUser forma cruda de una entrada del directorio, tal como vendría de
// config. Se valida al cargar: un rol no reconocido aborta el arranque en vez
// de tratarse silenciosamente como no-coincidente.
type seedUser struct {
	RUT          string   `validate:"required"`
	EmployeeCode string   `validate:"required"`
	Name         string   `validate:"required"`
	Roles        []string `validate:"required,min=1,dive,oneof=admin vendedor productor"`
}

var seedUsers = []seedUser{
	{
		RUT:          "11111111-1",
		EmployeeCode: "admin123",
		Name:         "Admin User",
		Roles:        []string{"admin", "vendedor", "productor"},
	},
	{
		RUT:          "22222222-2",
		EmployeeCode: "vendedor123",
		Name:         "Vendedor User",
		Roles:        []string{"vendedor", "productor"},
	},
	{
		RUT:          "33333333-3",
		EmployeeCode: "productor123",
		Name:         "Productor User",
		Roles:        []string{"productor"},
	},
	{
		RUT:          "44444444-4",
		EmployeeCode: "superuser",
		Name:         "Super User",
		Roles:        []string{"admin", "vendedor", "productor"},
	},
}

// UserDirectory directorio de usuarios en memoria, clave por RUT.
type UserDirectory struct {
	entries map[string]repository.DirectoryEntry
	latency time.Duration
}

var _ repository.UserDirectory = (*UserDirectory)(nil)

// NewUserDirectory construye el directorio validando la semilla en la
// frontera de carga (roles tipados, al menos un rol por usuario).
func NewUserDirectory(latency time.Duration) (*UserDirectory, error) {
	v := validator.New()
	entries := make(map[string]repository.DirectoryEntry, len(seedUsers))
	for _, u := range seedUsers {
		if err := v.Struct(u); err != nil {
			return nil, fmt.Errorf("directorio: entrada %q inválida: %w", u.RUT, err)
		}
		roles, err := entity.ParseRoles(u.Roles)
		if err != nil {
			return nil, fmt.Errorf("directorio: entrada %q: %w", u.RUT, err)
		}
		entries[u.RUT] = repository.DirectoryEntry{
			RUT:          u.RUT,
			EmployeeCode: u.EmployeeCode,
			Name:         u.Name,
			Roles:        roles,
		}
	}
	return &UserDirectory{entries: entries, latency: latency}, nil
}

// FindByRUT devuelve la entrada para el RUT, o nil si no existe.
func (d *UserDirectory) FindByRUT(ctx context.Context, rut string) (*repository.DirectoryEntry, error) {
	if err := simulateLatency(ctx, d.latency); err != nil {
		return nil, err
	}
	entry, ok := d.entries[rut]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}
