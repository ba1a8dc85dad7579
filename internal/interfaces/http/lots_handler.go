package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/usecase"
)

// LotsHandler maneja el detalle de lotes de producción.
type LotsHandler struct {
	uc *usecase.LotsUseCase
}

// NewLotsHandler construye el handler de lotes.
func NewLotsHandler(uc *usecase.LotsUseCase) *LotsHandler {
	return &LotsHandler{uc: uc}
}

// GetByID godoc
// @Summary      Detalle de un lote con sus barriles
// @Tags         lotes
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [get]
func (h *LotsHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el lote no existe"})
	}
	return c.JSON(out)
}
