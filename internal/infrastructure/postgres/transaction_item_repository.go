package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.TransactionItemRepository = (*TransactionItemRepo)(nil)

// TransactionItemRepo lectura de líneas de venta completadas del subsistema
// de transacciones. Solo lectura: el ledger nunca escribe en estas tablas.
type TransactionItemRepo struct {
	q Querier
}

// NewTransactionItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionItemRepository(q Querier) *TransactionItemRepo {
	return &TransactionItemRepo{q: q}
}

// CountStockOuts total de líneas de venta completadas que pasan el filtro de
// texto libre (mismo filtro que las salidas manuales).
func (r *TransactionItemRepo) CountStockOuts(search string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transaction_items ti
		JOIN transactions t ON t.id = ti.transaction_id AND t.status = 'completed'
		JOIN product_batches b ON b.id = ti.batch_id
		JOIN product_variants v ON v.id = b.variant_id
		JOIN products p ON p.id = v.product_id
		WHERE ($1 = '' OR unaccent(p.name) ILIKE '%' || $1 || '%' OR unaccent(b.batch_code) ILIKE '%' || $1 || '%')`
	var count int
	if err := r.q.QueryRow(context.Background(), query, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transaction stock outs: %w", err)
	}
	return count, nil
}

// ListStockOuts página de líneas de venta sintetizadas con la forma de la
// vista unificada: Source = transaction, ID con prefijo "trx-" para no
// colisionar con IDs de filas manuales, Reason fijo y referencia a la venta.
func (r *TransactionItemRepo) ListStockOuts(search string, limit, offset int, asc bool) ([]*entity.StockOutRow, error) {
	query := fmt.Sprintf(`
		SELECT ti.id, ti.transaction_id, ti.batch_id, b.batch_code, p.name,
		       ti.quantity, u.name, t.date
		FROM transaction_items ti
		JOIN transactions t ON t.id = ti.transaction_id AND t.status = 'completed'
		JOIN product_batches b ON b.id = ti.batch_id
		JOIN product_variants v ON v.id = b.variant_id
		JOIN products p ON p.id = v.product_id
		JOIN units u ON u.id = ti.unit_id
		WHERE ($1 = '' OR unaccent(p.name) ILIKE '%%' || $1 || '%%' OR unaccent(b.batch_code) ILIKE '%%' || $1 || '%%')
		ORDER BY t.date %s, ti.id %s
		LIMIT $2 OFFSET $3`, sortDir(asc), sortDir(asc))

	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transaction stock outs: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOutRow
	for rows.Next() {
		var itemID string
		row := entity.StockOutRow{
			Source: entity.StockOutSourceTransaction,
			Reason: entity.ReasonTransactionSale,
		}
		if err := rows.Scan(
			&itemID, &row.TransactionID, &row.BatchID, &row.BatchCode,
			&row.ProductName, &row.Quantity, &row.UnitName, &row.Date,
		); err != nil {
			return nil, fmt.Errorf("scan transaction stock out: %w", err)
		}
		row.ID = "trx-" + itemID
		list = append(list, &row)
	}
	return list, rows.Err()
}
