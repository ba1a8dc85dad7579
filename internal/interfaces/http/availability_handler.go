package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/usecase"
)

// AvailabilityHandler maneja el estado de las cervezas.
type AvailabilityHandler struct {
	uc *usecase.AvailabilityUseCase
}

// NewAvailabilityHandler construye el handler de estado de cervezas.
func NewAvailabilityHandler(uc *usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// List godoc
// @Summary      Estado por cerveza derivado del inventario de barriles
// @Tags         estado-cerveza
// @Produce      json
// @Success      200  {array}  dto.BeerAvailabilityResponse
// @Router       /api/estado-cerveza [get]
func (h *AvailabilityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
