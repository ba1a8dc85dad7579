package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/usecase"
)

// ContractsHandler maneja el listado de contratos.
type ContractsHandler struct {
	uc *usecase.ContractsUseCase
}

// NewContractsHandler construye el handler de contratos.
func NewContractsHandler(uc *usecase.ContractsUseCase) *ContractsHandler {
	return &ContractsHandler{uc: uc}
}

// List godoc
// @Summary      Listar contratos visibles para la sesión
// @Tags         contratos
// @Produce      json
// @Success      200  {array}  dto.ContractResponse
// @Router       /api/contratos [get]
func (h *ContractsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetSession(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
