package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/usecase"
)

// DirectoryHandler maneja los directorios de empleados y proveedores que
// alimentan los selectores de filtros de los informes.
type DirectoryHandler struct {
	uc *usecase.DirectoryUseCase
}

// NewDirectoryHandler construye el handler de directorios.
func NewDirectoryHandler(uc *usecase.DirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// Employees godoc
// @Summary      Directorio de empleados
// @Tags         directorio
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/directorio/empleados [get]
func (h *DirectoryHandler) Employees(c *fiber.Ctx) error {
	out, err := h.uc.Employees(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Suppliers godoc
// @Summary      Directorio de proveedores
// @Tags         directorio
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/directorio/proveedores [get]
func (h *DirectoryHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.uc.Suppliers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
