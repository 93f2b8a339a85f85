package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: evento,
// cantidad del lote y contador agregado se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		stockInRepo repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		variantRepo repository.VariantRepository,
	) error) error
}

// Converter resuelve una cantidad de una unidad a otra. Lo implementa
// units.ConversionUseCase; se consulta cuando el movimiento llega en una
// unidad distinta de la nativa del lote.
type Converter interface {
	Convert(ctx context.Context, fromUnitID, toUnitID string, quantity decimal.Decimal) (decimal.Decimal, error)
}
