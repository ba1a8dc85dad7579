package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/access"
)

// navigationOrder orden estable de las tarjetas del dashboard.
var navigationOrder = []access.Resource{
	access.ResourceEstadoCerveza,
	access.ResourceBarriles,
	access.ResourceVentas,
	access.ResourceCompras,
	access.ResourceContrato,
	access.ResourceInformeVentas,
	access.ResourceInformeCompras,
}

// DashboardHandler expone la navegación del dashboard: los recursos que la
// sesión puede usar según la política de acceso.
type DashboardHandler struct {
	policy access.Policy
}

// NewDashboardHandler construye el handler con la política de la aplicación.
func NewDashboardHandler(policy access.Policy) *DashboardHandler {
	return &DashboardHandler{policy: policy}
}

// Navigation godoc
// @Summary      Recursos accesibles para la sesión
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Navigation(c *fiber.Ctx) error {
	s := GetSession(c)
	resources := make([]string, 0, len(navigationOrder))
	for _, r := range navigationOrder {
		if access.CanAccessResource(s, h.policy, r) {
			resources = append(resources, string(r))
		}
	}
	return c.JSON(fiber.Map{
		"roles":     GetRoles(c),
		"resources": resources,
	})
}
