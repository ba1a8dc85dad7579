package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/application/reports"
	"github.com/tu-usuario/cerveceria-api/internal/domain"
)

// ReportsHandler maneja la generación de informes PDF.
type ReportsHandler struct {
	uc *reports.ReportUseCase
}

// NewReportsHandler construye el handler de informes.
func NewReportsHandler(uc *reports.ReportUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// SalesPDF godoc
// @Summary      Informe de ventas en PDF
// @Tags         informes
// @Produce      application/pdf
// @Param        seller_id   query  string  false  "solo surte efecto para administradores"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        event_id    query  string  false  "acotar por evento"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/informes/ventas [get]
func (h *ReportsHandler) SalesPDF(c *fiber.Ctx) error {
	criteria, err := saleCriteriaFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdf, filename, err := h.uc.SalesPDF(c.Context(), GetSession(c), criteria)
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

// PurchasesPDF godoc
// @Summary      Informe de compras en PDF
// @Tags         informes
// @Produce      application/pdf
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        supplier    query  string  false  "nombre exacto del proveedor"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/informes/compras [get]
func (h *ReportsHandler) PurchasesPDF(c *fiber.Ctx) error {
	criteria, err := purchaseCriteriaFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdf, filename, err := h.uc.PurchasesPDF(c.Context(), GetSession(c), criteria)
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sesión sin acceso al informe"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
