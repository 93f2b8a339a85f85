package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación de StockOutRepository sobre PostgreSQL (usable
// con pool o tx). Las filas son append-only: no hay UPDATE ni DELETE.
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// Create persiste un evento de salida manual.
func (r *StockOutRepo) Create(out *entity.StockOut) error {
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_outs (id, batch_id, quantity, unit_id, date, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		out.ID, out.BatchID, out.Quantity, out.UnitID, out.Date, out.Reason, out.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock out: %w", err)
	}
	return nil
}

// ListByBatch salidas de un lote, fecha descendente.
func (r *StockOutRepo) ListByBatch(batchID string) ([]*entity.StockOut, error) {
	query := `
		SELECT id, batch_id, quantity, unit_id, date, reason, created_at
		FROM stock_outs WHERE batch_id = $1
		ORDER BY date DESC, created_at DESC`
	return r.list(query, batchID)
}

// ListByVariant salidas de todos los lotes de una variante, fecha descendente.
func (r *StockOutRepo) ListByVariant(variantID string) ([]*entity.StockOut, error) {
	query := `
		SELECT s.id, s.batch_id, s.quantity, s.unit_id, s.date, s.reason, s.created_at
		FROM stock_outs s
		JOIN product_batches b ON b.id = s.batch_id
		WHERE b.variant_id = $1
		ORDER BY s.date DESC, s.created_at DESC`
	return r.list(query, variantID)
}

// CountFiltered total de salidas manuales que pasan el filtro de texto libre.
func (r *StockOutRepo) CountFiltered(search string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM stock_outs s
		JOIN product_batches b ON b.id = s.batch_id
		JOIN product_variants v ON v.id = b.variant_id
		JOIN products p ON p.id = v.product_id
		WHERE ($1 = '' OR unaccent(p.name) ILIKE '%' || $1 || '%' OR unaccent(b.batch_code) ILIKE '%' || $1 || '%')`
	var count int
	if err := r.q.QueryRow(context.Background(), query, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("count stock outs: %w", err)
	}
	return count, nil
}

// ListFiltered página de salidas manuales ya con la forma de la vista
// unificada (Source = manual, sin TransactionID).
func (r *StockOutRepo) ListFiltered(search string, limit, offset int, asc bool) ([]*entity.StockOutRow, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.batch_id, b.batch_code, p.name, s.quantity, u.name, s.date, s.reason
		FROM stock_outs s
		JOIN product_batches b ON b.id = s.batch_id
		JOIN product_variants v ON v.id = b.variant_id
		JOIN products p ON p.id = v.product_id
		JOIN units u ON u.id = s.unit_id
		WHERE ($1 = '' OR unaccent(p.name) ILIKE '%%' || $1 || '%%' OR unaccent(b.batch_code) ILIKE '%%' || $1 || '%%')
		ORDER BY s.date %s, s.created_at %s
		LIMIT $2 OFFSET $3`, sortDir(asc), sortDir(asc))

	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock outs: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOutRow
	for rows.Next() {
		row := entity.StockOutRow{Source: entity.StockOutSourceManual}
		if err := rows.Scan(
			&row.ID, &row.BatchID, &row.BatchCode, &row.ProductName,
			&row.Quantity, &row.UnitName, &row.Date, &row.Reason,
		); err != nil {
			return nil, fmt.Errorf("scan stock out row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

func (r *StockOutRepo) list(query string, arg any) ([]*entity.StockOut, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list stock outs: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOut
	for rows.Next() {
		var out entity.StockOut
		if err := rows.Scan(&out.ID, &out.BatchID, &out.Quantity, &out.UnitID, &out.Date, &out.Reason, &out.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock out: %w", err)
		}
		list = append(list, &out)
	}
	return list, rows.Err()
}
