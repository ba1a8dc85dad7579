package entity

import "fmt"

// Role es un valor del conjunto cerrado de roles de la cervecería.
// Los identificadores en el directorio/config son strings fijos:
// "admin" | "vendedor" | "productor".
type Role string

// Roles válidos.
const (
	RoleAdmin     Role = "admin"
	RoleVendedor  Role = "vendedor"
	RoleProductor Role = "productor"
)

// ParseRole convierte un string en Role. Rechaza valores no reconocidos en la
// frontera donde se cargan credenciales/config, en vez de tratarlos
// silenciosamente como no-coincidentes.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleVendedor, RoleProductor:
		return Role(s), nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

// ParseRoles convierte una lista de strings en RoleSet. Falla si la lista está
// vacía (una identidad siempre tiene al menos un rol) o contiene un rol desconocido.
func ParseRoles(ss []string) (RoleSet, error) {
	if len(ss) == 0 {
		return nil, fmt.Errorf("se requiere al menos un rol")
	}
	set := make(RoleSet, len(ss))
	for _, s := range ss {
		r, err := ParseRole(s)
		if err != nil {
			return nil, err
		}
		set[r] = struct{}{}
	}
	return set, nil
}

// RoleSet conjunto de roles. Solo importa la pertenencia, no el orden.
type RoleSet map[Role]struct{}

// NewRoleSet construye un RoleSet a partir de roles ya tipados.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Has indica si el conjunto contiene el rol.
func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// Intersects indica si ambos conjuntos comparten al menos un rol.
func (s RoleSet) Intersects(other RoleSet) bool {
	for r := range other {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Strings devuelve los identificadores de los roles (para claims JWT y respuestas).
// El orden es estable: admin, vendedor, productor.
func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range []Role{RoleAdmin, RoleVendedor, RoleProductor} {
		if s.Has(r) {
			out = append(out, string(r))
		}
	}
	return out
}
