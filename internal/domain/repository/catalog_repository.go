package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// VariantRepository puerto del catálogo de variantes.
type VariantRepository interface {
	GetByID(id string) (*entity.ProductVariant, error)
	// AdjustStock suma delta (positivo o negativo) al contador agregado de la
	// variante. Debe ejecutarse en la misma transacción que la mutación del
	// lote y el evento del ledger.
	AdjustStock(id string, delta decimal.Decimal) error
}

// SupplierRepository puerto del registro de proveedores (colaborador externo).
type SupplierRepository interface {
	GetByID(id string) (*entity.Supplier, error)
}
