package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockInRepository puerto de persistencia de eventos de entrada (append-only).
type StockInRepository interface {
	Create(in *entity.StockIn) error
	ListByBatch(batchID string) ([]*entity.StockIn, error)
	ListByVariant(variantID string) ([]*entity.StockIn, error)
	// CountFiltered y ListFiltered comparten el mismo filtro de texto libre
	// (nombre de producto o código de lote, case-insensitive).
	CountFiltered(search string) (int, error)
	ListFiltered(search string, limit, offset int, asc bool) ([]*entity.StockInRecord, error)
}

// StockOutRepository puerto de persistencia de salidas manuales (append-only).
// ListFiltered devuelve filas ya con la forma de la vista unificada
// (Source = manual).
type StockOutRepository interface {
	Create(out *entity.StockOut) error
	ListByBatch(batchID string) ([]*entity.StockOut, error)
	ListByVariant(variantID string) ([]*entity.StockOut, error)
	CountFiltered(search string) (int, error)
	ListFiltered(search string, limit, offset int, asc bool) ([]*entity.StockOutRow, error)
}

// TransactionItemRepository acceso de solo lectura a las líneas de venta
// completadas del subsistema de transacciones. El ledger nunca escribe aquí:
// una venta que consume cantidad de un lote no se duplica en stock_outs, la
// vista unificada la trata como salida implícita. Las filas se devuelven
// sintetizadas con la forma de la vista unificada (Source = transaction,
// Reason = ReasonTransactionSale, ID con prefijo).
type TransactionItemRepository interface {
	CountStockOuts(search string) (int, error)
	ListStockOuts(search string, limit, offset int, asc bool) ([]*entity.StockOutRow, error)
}
