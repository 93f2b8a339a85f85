package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/units"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// UnitHandler maneja las peticiones HTTP de unidades y conversiones (protegido).
type UnitHandler struct {
	uc *units.ConversionUseCase
}

// NewUnitHandler construye el handler.
func NewUnitHandler(uc *units.ConversionUseCase) *UnitHandler {
	return &UnitHandler{uc: uc}
}

// CreateConversion godoc
// @Summary      Crear factor de conversión entre unidades
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConversionRequest  true  "1 from = factor to"
// @Success      201   {object}  dto.ConversionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/units/conversions [post]
func (h *UnitHandler) CreateConversion(c *fiber.Ctx) error {
	var in dto.CreateConversionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	conv, err := h.uc.CreateConversion(c.UserContext(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unidades distintas y factor positivo son requeridos"})
		case domain.ErrUnitNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una conversión para ese par de unidades"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toConversionResponse(conv))
}

// ListForUnit godoc
// @Summary      Conversiones que tocan una unidad
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {array}   dto.ConversionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/units/{id}/conversions [get]
func (h *UnitHandler) ListForUnit(c *fiber.Ctx) error {
	unitID := c.Params("id")
	if unitID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	convs, err := h.uc.ListForUnit(c.UserContext(), unitID)
	if err != nil {
		if err == domain.ErrUnitNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ConversionResponse, 0, len(convs))
	for _, conv := range convs {
		out = append(out, toConversionResponse(conv))
	}
	return c.JSON(out)
}

// Convert godoc
// @Summary      Convertir una cantidad entre unidades
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        from      query  string  true  "Unidad origen"
// @Param        to        query  string  true  "Unidad destino"
// @Param        quantity  query  string  true  "Cantidad decimal"
// @Success      200  {object}  dto.ConvertResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/units/convert [get]
func (h *UnitHandler) Convert(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	rawQty := c.Query("quantity")
	if from == "" || to == "" || rawQty == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from, to y quantity son requeridos"})
	}
	qty, err := decimal.NewFromString(rawQty)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity no es un decimal válido"})
	}
	result, err := h.uc.Convert(c.UserContext(), from, to, qty)
	if err != nil {
		switch err {
		case domain.ErrUnitNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
		case domain.ErrNoConversionPath:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_CONVERSION", Message: "no hay conversión registrada entre las unidades"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "factor de conversión inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ConvertResponse{FromUnitID: from, ToUnitID: to, Quantity: qty, Result: result})
}

func toConversionResponse(conv *entity.UnitConversion) dto.ConversionResponse {
	return dto.ConversionResponse{
		ID:         conv.ID,
		FromUnitID: conv.FromUnitID,
		ToUnitID:   conv.ToUnitID,
		Factor:     conv.Factor,
	}
}
