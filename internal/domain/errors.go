package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los not-found se distinguen de los de validación para que el caller pueda
// diferenciar "forma inválida" de "referencia inexistente".
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrBatchNotFound     = errors.New("lote no encontrado")
	ErrVariantNotFound   = errors.New("variante no encontrada")
	ErrUnitNotFound      = errors.New("unidad de medida no encontrada")
	ErrSupplierNotFound  = errors.New("proveedor no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNoConversionPath  = errors.New("no existe conversión entre las unidades")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
