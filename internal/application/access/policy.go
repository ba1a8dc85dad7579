// Package access implementa el control de acceso por roles: la política
// estática recurso → roles permitidos y el predicado de autorización que
// consultan el router y la navegación.
package access

import "github.com/tu-usuario/cerveceria-api/internal/domain/entity"

// Resource identificador de un recurso protegido (ruta o acción).
type Resource string

// Recursos protegidos de la aplicación.
const (
	ResourceDashboard      Resource = "dashboard"
	ResourceCompras        Resource = "compras"
	ResourceEstadoCerveza  Resource = "estado-cerveza"
	ResourceVentas         Resource = "ventas"
	ResourceBarriles       Resource = "barriles"
	ResourceLote           Resource = "lote"
	ResourceContrato       Resource = "contrato"
	ResourceInformeVentas  Resource = "informe-ventas"
	ResourceInformeCompras Resource = "informe-compras"
)

// Policy mapea cada recurso protegido al conjunto de roles que pueden usarlo.
// Estática: se define una vez y no muta en runtime. Invariante: todo recurso
// registrado tiene al menos un rol permitido.
type Policy map[Resource]entity.RoleSet

// DefaultPolicy devuelve la política de la aplicación, calcada de la tabla de
// rutas original del dashboard.
func DefaultPolicy() Policy {
	todos := entity.NewRoleSet(entity.RoleAdmin, entity.RoleVendedor, entity.RoleProductor)
	return Policy{
		ResourceDashboard:      todos,
		ResourceCompras:        entity.NewRoleSet(entity.RoleAdmin),
		ResourceEstadoCerveza:  todos,
		ResourceVentas:         entity.NewRoleSet(entity.RoleAdmin, entity.RoleVendedor),
		ResourceBarriles:       todos,
		ResourceLote:           todos,
		ResourceContrato:       todos,
		ResourceInformeVentas:  entity.NewRoleSet(entity.RoleAdmin, entity.RoleVendedor),
		ResourceInformeCompras: entity.NewRoleSet(entity.RoleAdmin),
	}
}

// RequiredRoles devuelve los roles permitidos para el recurso. Un recurso que
// no figura en la política no es accesible para nadie por esta vía
// (fail-closed): ok=false y el llamador debe denegar.
func (p Policy) RequiredRoles(r Resource) (entity.RoleSet, bool) {
	roles, ok := p[r]
	return roles, ok
}
