package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseRole / ParseRoles — frontera del enumerado cerrado
// ──────────────────────────────────────────────────────────────────────────────

func TestParseRole_Validos(t *testing.T) {
	for _, s := range []string{"admin", "vendedor", "productor"} {
		r, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), r)
	}
}

// Un rol no reconocido se rechaza en la frontera: nunca entra al sistema como
// "rol que no coincide con nada".
func TestParseRole_DesconocidoFalla(t *testing.T) {
	for _, s := range []string{"superadmin", "Admin", "ADMIN", "", "vendedor "} {
		_, err := ParseRole(s)
		assert.Error(t, err, "debe rechazar %q", s)
	}
}

func TestParseRoles_ListaVaciaFalla(t *testing.T) {
	_, err := ParseRoles(nil)
	assert.Error(t, err, "una identidad siempre tiene al menos un rol")
}

func TestParseRoles_UnDesconocidoInvalidaTodo(t *testing.T) {
	_, err := ParseRoles([]string{"admin", "gerente"})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// RoleSet
// ──────────────────────────────────────────────────────────────────────────────

func TestRoleSet_Intersects(t *testing.T) {
	vendedorProductor := NewRoleSet(RoleVendedor, RoleProductor)

	assert.True(t, vendedorProductor.Intersects(NewRoleSet(RoleAdmin, RoleVendedor)),
		"basta un rol en común")
	assert.False(t, vendedorProductor.Intersects(NewRoleSet(RoleAdmin)),
		"sin roles en común no hay intersección")
	assert.False(t, vendedorProductor.Intersects(nil),
		"el conjunto vacío no intersecta con nada")
}

// Strings devuelve siempre el mismo orden, independiente del orden de carga.
func TestRoleSet_StringsOrdenEstable(t *testing.T) {
	set, err := ParseRoles([]string{"productor", "admin", "vendedor"})
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "vendedor", "productor"}, set.Strings())
}
