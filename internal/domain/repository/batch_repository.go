package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// BatchRepository puerto de persistencia de lotes.
type BatchRepository interface {
	Create(batch *entity.ProductBatch) error
	GetByID(id string) (*entity.ProductBatch, error)
	// GetForUpdate obtiene el lote y bloquea su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.ProductBatch, error)
	UpdateRemaining(id string, remaining decimal.Decimal) error
	ListByVariant(variantID string) ([]*entity.ProductBatch, error)
	AddBarcodes(batchID string, codes []string) error
}
