package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación de StockInRepository sobre PostgreSQL (usable
// con pool o tx). Las filas son append-only: no hay UPDATE ni DELETE.
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persiste un evento de entrada.
func (r *StockInRepo) Create(in *entity.StockIn) error {
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_ins (id, batch_id, quantity, unit_id, date, supplier_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		in.ID, in.BatchID, in.Quantity, in.UnitID, in.Date, in.SupplierID, in.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock in: %w", err)
	}
	return nil
}

// ListByBatch entradas de un lote, fecha descendente.
func (r *StockInRepo) ListByBatch(batchID string) ([]*entity.StockIn, error) {
	query := `
		SELECT id, batch_id, quantity, unit_id, date, supplier_id, created_at
		FROM stock_ins WHERE batch_id = $1
		ORDER BY date DESC, created_at DESC`
	return r.list(query, batchID)
}

// ListByVariant entradas de todos los lotes de una variante, fecha descendente.
func (r *StockInRepo) ListByVariant(variantID string) ([]*entity.StockIn, error) {
	query := `
		SELECT s.id, s.batch_id, s.quantity, s.unit_id, s.date, s.supplier_id, s.created_at
		FROM stock_ins s
		JOIN product_batches b ON b.id = s.batch_id
		WHERE b.variant_id = $1
		ORDER BY s.date DESC, s.created_at DESC`
	return r.list(query, variantID)
}

// CountFiltered total de entradas que pasan el filtro de texto libre
// (nombre de producto o código de lote).
func (r *StockInRepo) CountFiltered(search string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM stock_ins s
		JOIN product_batches b ON b.id = s.batch_id
		JOIN product_variants v ON v.id = b.variant_id
		JOIN products p ON p.id = v.product_id
		WHERE ($1 = '' OR unaccent(p.name) ILIKE '%' || $1 || '%' OR unaccent(b.batch_code) ILIKE '%' || $1 || '%')`
	var count int
	if err := r.q.QueryRow(context.Background(), query, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("count stock ins: %w", err)
	}
	return count, nil
}

// ListFiltered página de entradas con referencias desnormalizadas, bajo el
// mismo filtro que CountFiltered.
func (r *StockInRepo) ListFiltered(search string, limit, offset int, asc bool) ([]*entity.StockInRecord, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.batch_id, s.quantity, s.unit_id, s.date, s.supplier_id, s.created_at,
		       b.batch_code, p.name, u.name
		FROM stock_ins s
		JOIN product_batches b ON b.id = s.batch_id
		JOIN product_variants v ON v.id = b.variant_id
		JOIN products p ON p.id = v.product_id
		JOIN units u ON u.id = s.unit_id
		WHERE ($1 = '' OR unaccent(p.name) ILIKE '%%' || $1 || '%%' OR unaccent(b.batch_code) ILIKE '%%' || $1 || '%%')
		ORDER BY s.date %s, s.created_at %s
		LIMIT $2 OFFSET $3`, sortDir(asc), sortDir(asc))

	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock ins: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockInRecord
	for rows.Next() {
		var rec entity.StockInRecord
		if err := rows.Scan(
			&rec.ID, &rec.BatchID, &rec.Quantity, &rec.UnitID, &rec.Date, &rec.SupplierID, &rec.CreatedAt,
			&rec.BatchCode, &rec.ProductName, &rec.UnitName,
		); err != nil {
			return nil, fmt.Errorf("scan stock in record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

func (r *StockInRepo) list(query string, arg any) ([]*entity.StockIn, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list stock ins: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockIn
	for rows.Next() {
		var in entity.StockIn
		if err := rows.Scan(&in.ID, &in.BatchID, &in.Quantity, &in.UnitID, &in.Date, &in.SupplierID, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock in: %w", err)
		}
		list = append(list, &in)
	}
	return list, rows.Err()
}
