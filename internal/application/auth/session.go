package auth

import "github.com/tu-usuario/cerveceria-api/internal/domain/entity"

// Session envuelve como mucho una identidad autenticada. Se construye
// explícitamente por petición (desde los claims del token) y se pasa por valor
// a guard y scope resolver: no hay estado de sesión ambiente ni global.
//
// Una Session con Identity nil representa "sin login"; toda decisión de
// acceso sobre ella deniega.
type Session struct {
	Identity *entity.Identity
}

// Anonymous devuelve la sesión sin identidad (pre-login).
func Anonymous() Session { return Session{} }

// NewSession construye una sesión autenticada para la identidad.
func NewSession(id *entity.Identity) Session { return Session{Identity: id} }

// Authenticated indica si la sesión tiene identidad.
func (s Session) Authenticated() bool { return s.Identity != nil }

// Roles devuelve el conjunto de roles de la identidad (vacío si no hay login).
func (s Session) Roles() entity.RoleSet {
	if s.Identity == nil {
		return nil
	}
	return s.Identity.Roles
}

// IsAdmin indica si la identidad de la sesión es administradora.
func (s Session) IsAdmin() bool { return s.Identity.IsAdmin() }
