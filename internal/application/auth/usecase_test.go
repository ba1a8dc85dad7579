package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/domain"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
	pkgjwt "github.com/tu-usuario/cerveceria-api/pkg/jwt"
)

// fakeDirectory directorio en memoria para los tests, sin latencia.
type fakeDirectory map[string]repository.DirectoryEntry

func (d fakeDirectory) FindByRUT(_ context.Context, rut string) (*repository.DirectoryEntry, error) {
	entry, ok := d[rut]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func testDirectory() fakeDirectory {
	return fakeDirectory{
		"22222222-2": {
			RUT:          "22222222-2",
			EmployeeCode: "vendedor123",
			Name:         "Vendedor User",
			Roles:        entity.NewRoleSet(entity.RoleVendedor, entity.RoleProductor),
		},
	}
}

func testUseCase() *AuthUseCase {
	return NewAuthUseCase(testDirectory(), JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "cerveceria-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_CredencialesCorrectas(t *testing.T) {
	id, err := testUseCase().Authenticate(context.Background(), "22222222-2", "vendedor123")
	require.NoError(t, err)

	assert.Equal(t, "22222222-2", id.RUT)
	assert.Equal(t, "Vendedor User", id.Name)
	assert.True(t, id.Roles.Has(entity.RoleVendedor))
	assert.True(t, id.Roles.Has(entity.RoleProductor))
	assert.False(t, id.IsAdmin())
}

// El secreto se compara de forma exacta: sensible a mayúsculas, sin recorte.
func TestAuthenticate_SecretoSensibleAMayusculas(t *testing.T) {
	_, err := testUseCase().Authenticate(context.Background(), "22222222-2", "Vendedor123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// RUT desconocido y secreto incorrecto producen el MISMO error: la respuesta
// no permite enumerar usuarios.
func TestAuthenticate_FallosIndistinguibles(t *testing.T) {
	uc := testUseCase()

	_, errRUT := uc.Authenticate(context.Background(), "99999999-9", "vendedor123")
	_, errSecreto := uc.Authenticate(context.Background(), "22222222-2", "incorrecto")

	assert.ErrorIs(t, errRUT, domain.ErrUnauthorized)
	assert.ErrorIs(t, errSecreto, domain.ErrUnauthorized)
	assert.Equal(t, errRUT, errSecreto, "sin señal distinguible entre ambos fallos")
}

func TestAuthenticate_EntradaVaciaEsInvalida(t *testing.T) {
	uc := testUseCase()

	_, err := uc.Authenticate(context.Background(), "", "vendedor123")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Authenticate(context.Background(), "22222222-2", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login — emisión del token
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConRolesCompletos(t *testing.T) {
	out, err := testUseCase().Login(context.Background(), dto.LoginRequest{
		RUT:        "22222222-2",
		EmployeeID: "vendedor123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	assert.Equal(t, "22222222-2", out.User.RUT)
	assert.Equal(t, []string{"vendedor", "productor"}, out.User.Roles)

	claims, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "22222222-2", claims.RUT)
	assert.Equal(t, "vendedor123", claims.EmployeeCode)
	assert.Equal(t, []string{"vendedor", "productor"}, claims.Roles,
		"el token lleva el conjunto de roles completo")
}

func TestLogin_CredencialesInvalidasNoEmiteToken(t *testing.T) {
	out, err := testUseCase().Login(context.Background(), dto.LoginRequest{
		RUT:        "22222222-2",
		EmployeeID: "incorrecto",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out)
}
