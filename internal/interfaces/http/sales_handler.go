package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/scope"
	"github.com/tu-usuario/cerveceria-api/internal/application/usecase"
)

// SalesHandler maneja el listado de ventas.
type SalesHandler struct {
	uc *usecase.SalesUseCase
}

// NewSalesHandler construye el handler de ventas.
func NewSalesHandler(uc *usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// List godoc
// @Summary      Listar ventas visibles para la sesión
// @Tags         ventas
// @Produce      json
// @Param        seller_id   query  string  false  "solo surte efecto para administradores"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        event_id    query  string  false  "acotar por evento"
// @Success      200  {array}   dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	criteria, err := saleCriteriaFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.List(c.Context(), GetSession(c), criteria)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func saleCriteriaFromQuery(c *fiber.Ctx) (scope.SaleCriteria, error) {
	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		return scope.SaleCriteria{}, err
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		return scope.SaleCriteria{}, err
	}
	return scope.SaleCriteria{
		SellerID:  c.Query("seller_id"),
		StartDate: start,
		EndDate:   end,
		EventID:   c.Query("event_id"),
	}, nil
}
