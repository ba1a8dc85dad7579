package access

import (
	"github.com/tu-usuario/cerveceria-api/internal/application/auth"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// CanAccess decide si la sesión puede usar un recurso que exige los roles
// indicados. Predicado puro, sin efectos.
//
//   - Sesión sin identidad: deniega siempre, incluso con required vacío.
//   - required vacío: "cualquier identidad autenticada" (no "todo el mundo").
//   - En otro caso: permite si los roles de la identidad intersectan required
//     en al menos un elemento.
func CanAccess(s auth.Session, required entity.RoleSet) bool {
	if !s.Authenticated() {
		return false
	}
	if len(required) == 0 {
		return true
	}
	return s.Identity.Roles.Intersects(required)
}

// CanAccessResource resuelve los roles del recurso en la política y aplica
// CanAccess. Recurso fuera de la política: deniega (fail-closed).
func CanAccessResource(s auth.Session, p Policy, r Resource) bool {
	required, ok := p.RequiredRoles(r)
	if !ok {
		return false
	}
	return CanAccess(s, required)
}
