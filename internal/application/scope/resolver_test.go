package scope

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cerveceria-api/internal/application/auth"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

func adminSession() auth.Session {
	return auth.NewSession(&entity.Identity{
		RUT:          "11111111-1",
		EmployeeCode: "admin123",
		Name:         "Admin User",
		Roles:        entity.NewRoleSet(entity.RoleAdmin, entity.RoleVendedor, entity.RoleProductor),
	})
}

func vendedorSession() auth.Session {
	return auth.NewSession(&entity.Identity{
		RUT:          "22222222-2",
		EmployeeCode: "vendedor123",
		Name:         "Vendedor User",
		Roles:        entity.NewRoleSet(entity.RoleVendedor, entity.RoleProductor),
	})
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func testSales() []entity.Sale {
	return []entity.Sale{
		{ID: "SAL-001", SellerID: "admin123", SaleDate: date("2024-06-05"), EventID: "EVT-001", TotalAmount: decimal.NewFromInt(54000)},
		{ID: "SAL-002", SellerID: "vendedor123", SaleDate: date("2024-06-10"), EventID: "EVT-002", TotalAmount: decimal.NewFromInt(140000)},
		{ID: "SAL-003", SellerID: "vendedor123", SaleDate: date("2024-06-25"), EventID: "EVT-001", TotalAmount: decimal.NewFromInt(48000)},
		{ID: "SAL-004", SellerID: "admin123", SaleDate: date("2024-07-02"), EventID: "EVT-003", TotalAmount: decimal.NewFromInt(435000)},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas: alcance por código de empleado
// ──────────────────────────────────────────────────────────────────────────────

func TestForSales_AdminVeTodo(t *testing.T) {
	filtered := ForSales(adminSession(), SaleCriteria{}).Apply(testSales())
	assert.Len(t, filtered, 4, "admin sin criterios ve todas las ventas")
}

func TestForSales_AdminPuedeAcotarPorVendedor(t *testing.T) {
	f := ForSales(adminSession(), SaleCriteria{SellerID: "vendedor123"})
	filtered := f.Apply(testSales())

	require.Len(t, filtered, 2)
	for _, s := range filtered {
		assert.Equal(t, "vendedor123", s.SellerID)
	}
}

// Un no-administrador queda fijado a sus propias ventas.
func TestForSales_NoAdminQuedaFijadoASuCodigo(t *testing.T) {
	f := ForSales(vendedorSession(), SaleCriteria{})
	filtered := f.Apply(testSales())

	require.Len(t, filtered, 2)
	for _, s := range filtered {
		assert.Equal(t, "vendedor123", s.SellerID)
	}
}

// El SellerID suministrado por un no-administrador se ignora: los criterios
// componen en AND sobre el alcance y nunca lo amplían.
func TestForSales_NoAdminNoPuedeAmpliarConSellerID(t *testing.T) {
	f := ForSales(vendedorSession(), SaleCriteria{SellerID: "admin123"})
	filtered := f.Apply(testSales())

	require.Len(t, filtered, 2, "pedir las ventas de otro no amplía el alcance")
	for _, s := range filtered {
		assert.Equal(t, "vendedor123", s.SellerID)
	}
}

func TestForSales_CriteriosComponenEnAND(t *testing.T) {
	f := ForSales(vendedorSession(), SaleCriteria{EventID: "EVT-001"})
	filtered := f.Apply(testSales())

	require.Len(t, filtered, 1)
	assert.Equal(t, "SAL-003", filtered[0].ID, "propio código Y evento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango de fechas: calendario, inclusivo en ambos extremos
// ──────────────────────────────────────────────────────────────────────────────

func TestForSales_RangoDeFechasInclusivo(t *testing.T) {
	f := ForSales(adminSession(), SaleCriteria{
		StartDate: datePtr("2024-06-05"),
		EndDate:   datePtr("2024-06-25"),
	})
	filtered := f.Apply(testSales())

	require.Len(t, filtered, 3)
	assert.Equal(t, "SAL-001", filtered[0].ID, "venta fechada exactamente en start se retiene")
	assert.Equal(t, "SAL-003", filtered[2].ID, "venta fechada exactamente en end se retiene")
}

func TestForSales_SoloLimiteInferior(t *testing.T) {
	f := ForSales(adminSession(), SaleCriteria{StartDate: datePtr("2024-07-01")})
	filtered := f.Apply(testSales())

	require.Len(t, filtered, 1)
	assert.Equal(t, "SAL-004", filtered[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contratos: alcance por RUT
// ──────────────────────────────────────────────────────────────────────────────

func testContracts() []entity.Contract {
	return []entity.Contract{
		{ID: "CON-001", UserRUT: "11111111-1"},
		{ID: "CON-002", UserRUT: "22222222-2"},
		{ID: "CON-003", UserRUT: "33333333-3"},
	}
}

func TestForContracts_AdminVeTodos(t *testing.T) {
	filtered := ForContracts(adminSession()).Apply(testContracts())
	assert.Len(t, filtered, 3)
}

func TestForContracts_NoAdminSoloElPropio(t *testing.T) {
	filtered := ForContracts(vendedorSession()).Apply(testContracts())

	require.Len(t, filtered, 1)
	assert.Equal(t, "CON-002", filtered[0].ID)
}

// Identidad sin contrato registrado: conjunto vacío, no error.
func TestForContracts_SinContratoConjuntoVacio(t *testing.T) {
	s := auth.NewSession(&entity.Identity{
		RUT:   "99999999-9",
		Roles: entity.NewRoleSet(entity.RoleProductor),
	})
	filtered := ForContracts(s).Apply(testContracts())
	assert.Empty(t, filtered)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras: recurso global, solo criterios del usuario
// ──────────────────────────────────────────────────────────────────────────────

func TestForPurchases_FiltraPorProveedorExacto(t *testing.T) {
	purchases := []entity.Purchase{
		{ID: "PUR-001", Supplier: "Malta Premium S.A.", TransactionDate: date("2024-06-01")},
		{ID: "PUR-002", Supplier: "Levaduras Express", TransactionDate: date("2024-06-15")},
	}
	f := ForPurchases(PurchaseCriteria{Supplier: "Levaduras Express"})
	filtered := f.Apply(purchases)

	require.Len(t, filtered, 1)
	assert.Equal(t, "PUR-002", filtered[0].ID)
}

func TestForPurchases_SinCriteriosDevuelveTodo(t *testing.T) {
	purchases := []entity.Purchase{
		{ID: "PUR-001", TransactionDate: date("2024-06-01")},
		{ID: "PUR-002", TransactionDate: date("2024-06-15")},
	}
	filtered := ForPurchases(PurchaseCriteria{}).Apply(purchases)
	assert.Len(t, filtered, 2)
}
