package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/scope"
	"github.com/tu-usuario/cerveceria-api/internal/application/usecase"
)

// PurchasesHandler maneja el listado de compras.
type PurchasesHandler struct {
	uc *usecase.PurchasesUseCase
}

// NewPurchasesHandler construye el handler de compras.
func NewPurchasesHandler(uc *usecase.PurchasesUseCase) *PurchasesHandler {
	return &PurchasesHandler{uc: uc}
}

// List godoc
// @Summary      Listar compras
// @Tags         compras
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        supplier    query  string  false  "nombre exacto del proveedor"
// @Success      200  {array}   dto.PurchaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/compras [get]
func (h *PurchasesHandler) List(c *fiber.Ctx) error {
	criteria, err := purchaseCriteriaFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.List(c.Context(), criteria)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func purchaseCriteriaFromQuery(c *fiber.Ctx) (scope.PurchaseCriteria, error) {
	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		return scope.PurchaseCriteria{}, err
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		return scope.PurchaseCriteria{}, err
	}
	return scope.PurchaseCriteria{
		StartDate: start,
		EndDate:   end,
		Supplier:  c.Query("supplier"),
	}, nil
}
