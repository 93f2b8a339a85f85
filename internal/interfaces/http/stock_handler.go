package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/pkg/metrics"
)

// StockHandler maneja las peticiones HTTP del ledger de stock (protegido).
type StockHandler struct {
	mutation *stock.MutationUseCase
	history  *stock.HistoryUseCase
	outView  *stock.StockOutViewUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(
	mutation *stock.MutationUseCase,
	history *stock.HistoryUseCase,
	outView *stock.StockOutViewUseCase,
) *StockHandler {
	return &StockHandler{mutation: mutation, history: history, outView: outView}
}

// AddBatch godoc
// @Summary      Crear lote de producto
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddBatchRequest  true  "Datos del lote"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *StockHandler) AddBatch(c *fiber.Ctx) error {
	var in dto.AddBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.mutation.AddBatch(c.UserContext(), stock.AddBatchInput{
		VariantID:       in.VariantID,
		BatchCode:       in.BatchCode,
		ExpiryDate:      in.ExpiryDate,
		InitialQuantity: in.InitialQuantity,
		BuyPrice:        in.BuyPrice,
		Barcodes:        in.Barcodes,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "variant_id, batch_code y cantidad inicial positiva son requeridos"})
		case domain.ErrVariantNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "variante no encontrada"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "batch_code ya existe para esta variante"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.BatchesCreated.Inc()
	return c.Status(fiber.StatusCreated).JSON(toBatchResponse(batch))
}

// AddStockToBatch godoc
// @Summary      Registrar entrada de stock en un lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.StockInRequest  true  "Datos de la entrada"
// @Success      204   "Sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/stock-in [post]
func (h *StockHandler) AddStockToBatch(c *fiber.Ctx) error {
	batchID := c.Params("id")
	if batchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.mutation.RecordStockIn(c.UserContext(), stock.StockInInput{
		BatchID:    batchID,
		Quantity:   in.Quantity,
		UnitID:     in.UnitID,
		Date:       in.Date,
		SupplierID: in.SupplierID,
	})
	if err != nil {
		if status, resp, ok := mapStockError(err); ok {
			return c.Status(status).JSON(resp)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.StockMovements.WithLabelValues("in").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveStockFromBatch godoc
// @Summary      Registrar salida manual de stock de un lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.StockOutRequest  true  "Datos de la salida"
// @Success      204   "Sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/stock-out [post]
func (h *StockHandler) RemoveStockFromBatch(c *fiber.Ctx) error {
	batchID := c.Params("id")
	if batchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.mutation.RecordStockOut(c.UserContext(), stock.StockOutInput{
		BatchID:  batchID,
		Quantity: in.Quantity,
		UnitID:   in.UnitID,
		Date:     in.Date,
		Reason:   in.Reason,
	})
	if err != nil {
		if err == domain.ErrInsufficientStock {
			metrics.InsufficientStock.Inc()
		}
		if status, resp, ok := mapStockError(err); ok {
			return c.Status(status).JSON(resp)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.StockMovements.WithLabelValues("out").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// GetBatchHistory godoc
// @Summary      Historial de movimientos de un lote
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {array}   dto.StockMovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/history [get]
func (h *StockHandler) GetBatchHistory(c *fiber.Ctx) error {
	batchID := c.Params("id")
	if batchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	movs, err := h.history.GetBatchStockMovementHistory(c.UserContext(), batchID)
	if err != nil {
		if err == domain.ErrBatchNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movs)
}

// GetVariantStockHistory godoc
// @Summary      Historial de movimientos de una variante
// @Tags         variants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la variante"
// @Success      200  {array}   dto.StockMovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/variants/{id}/stock-history [get]
func (h *StockHandler) GetVariantStockHistory(c *fiber.Ctx) error {
	variantID := c.Params("id")
	if variantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	movs, err := h.history.GetStockHistory(c.UserContext(), variantID)
	if err != nil {
		if err == domain.ErrVariantNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "variante no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movs)
}

// ListStockIns godoc
// @Summary      Listado paginado de entradas de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        search          query  string  false  "Nombre de producto o código de lote"
// @Param        page            query  int     false  "Página"   default(1)
// @Param        page_size       query  int     false  "Tamaño"   default(20)
// @Param        sort_dir        query  string  false  "asc | desc"
// @Success      200  {object}  dto.StockInListResponse
// @Router       /api/stock-ins [get]
func (h *StockHandler) ListStockIns(c *fiber.Ctx) error {
	var params dto.SearchParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	rows, page, err := h.history.GetAllStockIns(c.UserContext(), params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockInListResponse{Items: rows, PageResponse: page})
}

// ListStockOuts godoc
// @Summary      Vista unificada de salidas (manuales + ventas)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        search          query  string  false  "Nombre de producto o código de lote"
// @Param        page            query  int     false  "Página"   default(1)
// @Param        page_size       query  int     false  "Tamaño"   default(20)
// @Param        sort_dir        query  string  false  "asc | desc"
// @Success      200  {object}  dto.StockOutListResponse
// @Router       /api/stock-outs [get]
func (h *StockHandler) ListStockOuts(c *fiber.Ctx) error {
	var params dto.SearchParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	rows, page, err := h.outView.GetAllStockOuts(c.UserContext(), params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockOutListResponse{Items: rows, PageResponse: page})
}

// mapStockError traduce los errores centinela de las mutaciones a HTTP.
func mapStockError(err error) (int, dto.ErrorResponse, bool) {
	switch err {
	case domain.ErrInvalidInput:
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad positiva requerida"}, true
	case domain.ErrBatchNotFound:
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"}, true
	case domain.ErrSupplierNotFound:
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"}, true
	case domain.ErrUnitNotFound:
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"}, true
	case domain.ErrNoConversionPath:
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "NO_CONVERSION", Message: "no hay conversión registrada entre las unidades"}, true
	case domain.ErrInsufficientStock:
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "cantidad restante insuficiente en el lote"}, true
	}
	return 0, dto.ErrorResponse{}, false
}

func toBatchResponse(b *entity.ProductBatch) dto.BatchResponse {
	return dto.BatchResponse{
		ID:                b.ID,
		VariantID:         b.VariantID,
		BatchCode:         b.BatchCode,
		ExpiryDate:        b.ExpiryDate,
		InitialQuantity:   b.InitialQuantity,
		RemainingQuantity: b.RemainingQuantity,
		BuyPrice:          b.BuyPrice,
		UnitID:            b.UnitID,
	}
}
