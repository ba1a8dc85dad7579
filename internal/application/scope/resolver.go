// Package scope implementa el acotado de datos por identidad: dada una sesión
// y una intención de consulta, produce el filtro que admite solo los
// registros que la identidad tiene derecho a ver.
//
// El scope acota, no autoriza: la autorización del recurso ya fue decidida
// aguas arriba por el guard (package access) y aquí no se re-verifica. Los
// criterios suministrados por el usuario (rango de fechas, proveedor, evento,
// vendedor) componen en AND sobre el filtro de alcance, nunca lo reemplazan:
// un no-administrador no puede ampliar su alcance vía filtros.
package scope

import (
	"time"

	"github.com/tu-usuario/cerveceria-api/internal/application/auth"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ventas: recurso auto-acotado por código de empleado
// ──────────────────────────────────────────────────────────────────────────────

// SaleCriteria filtros de ventas suministrados por el usuario.
type SaleCriteria struct {
	SellerID  string // solo surte efecto para administradores
	StartDate *time.Time
	EndDate   *time.Time
	EventID   string
}

// SalesFilter filtro de ventas ya resuelto (alcance + criterios).
type SalesFilter struct {
	sellerID string // fijado por el alcance; vacío = sin restricción
	criteria SaleCriteria
}

// ForSales resuelve el filtro de ventas para la sesión.
//
// Administrador: sin restricción de vendedor; puede acotar voluntariamente con
// criteria.SellerID. Cualquier otro rol: las ventas quedan fijadas a su propio
// código de empleado y el SellerID suministrado se ignora.
func ForSales(s auth.Session, criteria SaleCriteria) SalesFilter {
	f := SalesFilter{criteria: criteria}
	if s.IsAdmin() {
		f.sellerID = criteria.SellerID
	} else if s.Authenticated() {
		f.sellerID = s.Identity.EmployeeCode
	}
	return f
}

// SellerID expone la restricción de vendedor resultante (vacía = todas).
func (f SalesFilter) SellerID() string { return f.sellerID }

// Matches indica si la venta pasa el filtro completo.
func (f SalesFilter) Matches(sale entity.Sale) bool {
	if f.sellerID != "" && sale.SellerID != f.sellerID {
		return false
	}
	if !dateInRange(sale.SaleDate, f.criteria.StartDate, f.criteria.EndDate) {
		return false
	}
	if f.criteria.EventID != "" && sale.EventID != f.criteria.EventID {
		return false
	}
	return true
}

// Apply devuelve las ventas que pasan el filtro, en el orden recibido.
func (f SalesFilter) Apply(sales []entity.Sale) []entity.Sale {
	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Contratos: recurso auto-acotado por RUT
// ──────────────────────────────────────────────────────────────────────────────

// ContractsFilter filtro de contratos ya resuelto.
type ContractsFilter struct {
	rut string // fijado por el alcance; vacío = sin restricción
}

// ForContracts resuelve el filtro de contratos: administrador ve todos, el
// resto solo el contrato cuyo RUT coincide con el propio.
func ForContracts(s auth.Session) ContractsFilter {
	if s.IsAdmin() || !s.Authenticated() {
		// La sesión no autenticada nunca llega aquí (el guard deniega antes);
		// se deja sin restricción porque no hay RUT con el que acotar.
		return ContractsFilter{}
	}
	return ContractsFilter{rut: s.Identity.RUT}
}

// RUT expone la restricción resultante (vacía = todos).
func (f ContractsFilter) RUT() string { return f.rut }

// Matches indica si el contrato pasa el filtro.
func (f ContractsFilter) Matches(c entity.Contract) bool {
	return f.rut == "" || c.UserRUT == f.rut
}

// Apply devuelve los contratos que pasan el filtro.
func (f ContractsFilter) Apply(contracts []entity.Contract) []entity.Contract {
	out := make([]entity.Contract, 0, len(contracts))
	for _, c := range contracts {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras: recurso global
// ──────────────────────────────────────────────────────────────────────────────

// PurchaseCriteria filtros de compras suministrados por el usuario.
type PurchaseCriteria struct {
	StartDate *time.Time
	EndDate   *time.Time
	Supplier  string // coincidencia exacta por nombre de proveedor
}

// PurchasesFilter filtro de compras. Las compras son un recurso global: no hay
// restricción por identidad, solo los criterios del usuario.
type PurchasesFilter struct {
	criteria PurchaseCriteria
}

// ForPurchases construye el filtro de compras.
func ForPurchases(criteria PurchaseCriteria) PurchasesFilter {
	return PurchasesFilter{criteria: criteria}
}

// Matches indica si la compra pasa el filtro.
func (f PurchasesFilter) Matches(p entity.Purchase) bool {
	if !dateInRange(p.TransactionDate, f.criteria.StartDate, f.criteria.EndDate) {
		return false
	}
	if f.criteria.Supplier != "" && p.Supplier != f.criteria.Supplier {
		return false
	}
	return true
}

// Apply devuelve las compras que pasan el filtro.
func (f PurchasesFilter) Apply(purchases []entity.Purchase) []entity.Purchase {
	out := make([]entity.Purchase, 0, len(purchases))
	for _, p := range purchases {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Fechas
// ──────────────────────────────────────────────────────────────────────────────

// dateInRange compara fechas calendario, inclusivo en ambos extremos: un
// registro fechado exactamente en start o en end se retiene. Sin normalización
// de zona horaria.
func dateInRange(d time.Time, start, end *time.Time) bool {
	if start != nil && d.Before(*start) {
		return false
	}
	if end != nil && d.After(*end) {
		return false
	}
	return true
}
