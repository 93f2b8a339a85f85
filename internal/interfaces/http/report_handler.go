package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// ReportHandler exporta historiales de movimientos como archivo (protegido).
type ReportHandler struct {
	uc *report.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportMovements godoc
// @Summary      Exportar historial de movimientos de una variante
// @Tags         reports
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        id      path   string  true   "ID de la variante"
// @Param        format  query  string  false  "xlsx | pdf"  default(xlsx)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/variants/{id}/stock-history/export [get]
func (h *ReportHandler) ExportMovements(c *fiber.Ctx) error {
	variantID := c.Params("id")
	if variantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	format := c.Query("format", report.FormatXLSX)

	data, contentType, err := h.uc.Export(c.UserContext(), variantID, format)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato no soportado: usar xlsx o pdf"})
		case domain.ErrVariantNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "variante no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="movimientos-%s.%s"`, variantID, format))
	return c.Send(data)
}
