package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/usecase"
	"github.com/tu-usuario/cerveceria-api/internal/domain"
)

// BarrelsHandler maneja el listado y alta de barriles.
type BarrelsHandler struct {
	uc       *usecase.BarrelsUseCase
	validate *validator.Validate
}

// NewBarrelsHandler construye el handler de barriles.
func NewBarrelsHandler(uc *usecase.BarrelsUseCase) *BarrelsHandler {
	return &BarrelsHandler{uc: uc, validate: validator.New()}
}

// List godoc
// @Summary      Listar barriles
// @Tags         barriles
// @Produce      json
// @Success      200  {array}  dto.BarrelResponse
// @Router       /api/barriles [get]
func (h *BarrelsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Dar de alta un barril
// @Tags         barriles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBarrelRequest  true  "datos del barril"
// @Success      201   {object}  dto.BarrelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/barriles [post]
func (h *BarrelsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBarrelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
