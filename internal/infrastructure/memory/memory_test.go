package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Directorio de usuarios — validación de la semilla en la frontera
// ──────────────────────────────────────────────────────────────────────────────

func TestNewUserDirectory_SemillaValida(t *testing.T) {
	dir, err := NewUserDirectory(0)
	require.NoError(t, err, "la semilla embebida debe pasar la validación de carga")

	entry, err := dir.FindByRUT(context.Background(), "11111111-1")
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, "admin123", entry.EmployeeCode)
	assert.Equal(t, "Admin User", entry.Name)
	assert.Equal(t, []string{"admin", "vendedor", "productor"}, entry.Roles.Strings())
}

func TestUserDirectory_RUTDesconocidoDevuelveNil(t *testing.T) {
	dir, err := NewUserDirectory(0)
	require.NoError(t, err)

	entry, err := dir.FindByRUT(context.Background(), "99999999-9")
	require.NoError(t, err, "RUT desconocido no es un error de repositorio")
	assert.Nil(t, entry)
}

// ──────────────────────────────────────────────────────────────────────────────
// Latencia artificial — cancelación por contexto
// ──────────────────────────────────────────────────────────────────────────────

func TestSimulateLatency_RespetaCancelacion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := simulateLatency(ctx, 5*time.Second)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second,
		"una consulta cancelada debe devolver de inmediato")
}

func TestSaleRepo_ConsultaCanceladaDevuelveError(t *testing.T) {
	repo := NewSaleRepository(5 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de barriles — la única con escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestBarrelRepo_CreateYListByLot(t *testing.T) {
	repo := NewBarrelRepository(0)
	ctx := context.Background()

	before, err := repo.ListByLot(ctx, "LOTE-IPA-001")
	require.NoError(t, err)
	require.Len(t, before, 2, "la semilla trae dos barriles del lote IPA")

	err = repo.Create(ctx, &entity.Barrel{
		ID:             "BRL-TEST",
		BeerName:       "Cerveza IPA",
		LotID:          "LOTE-IPA-001",
		CapacityLiters: 30,
		IsFull:         true,
	})
	require.NoError(t, err)

	after, err := repo.ListByLot(ctx, "LOTE-IPA-001")
	require.NoError(t, err)
	assert.Len(t, after, 3)
}

// Las lecturas devuelven copias: mutar el resultado no toca la semilla.
func TestBarrelRepo_ListDevuelveCopia(t *testing.T) {
	repo := NewBarrelRepository(0)
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].BeerName = "Mutada"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "Mutada", second[0].BeerName)
}
