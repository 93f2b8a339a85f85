package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con
// pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, variant_id, batch_code, expiry_date, initial_quantity, remaining_quantity, buy_price, unit_id, expired, created_at, updated_at`

// Create persiste un lote nuevo. (variant_id, batch_code) es único.
func (r *BatchRepo) Create(batch *entity.ProductBatch) error {
	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}
	query := `
		INSERT INTO product_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.VariantID, batch.BatchCode, batch.ExpiryDate,
		batch.InitialQuantity, batch.RemainingQuantity, batch.BuyPrice,
		batch.UnitID, batch.Expired, batch.CreatedAt, batch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *BatchRepo) GetByID(id string) (*entity.ProductBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM product_batches WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el lote y bloquea su fila (SELECT FOR UPDATE) para que
// la validación y el decremento vean el mismo snapshot dentro de la tx.
func (r *BatchRepo) GetForUpdate(id string) (*entity.ProductBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM product_batches WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// UpdateRemaining fija la cantidad restante del lote.
func (r *BatchRepo) UpdateRemaining(id string, remaining decimal.Decimal) error {
	query := `UPDATE product_batches SET remaining_quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, remaining)
	if err != nil {
		return fmt.Errorf("update batch remaining: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBatchNotFound
	}
	return nil
}

// ListByVariant lotes de una variante, los de vencimiento más próximo primero.
func (r *BatchRepo) ListByVariant(variantID string) ([]*entity.ProductBatch, error) {
	query := `
		SELECT ` + batchColumns + ` FROM product_batches
		WHERE variant_id = $1
		ORDER BY expiry_date ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, variantID)
	if err != nil {
		return nil, fmt.Errorf("list batches by variant: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductBatch
	for rows.Next() {
		var b entity.ProductBatch
		if err := scanBatch(rows, &b); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// AddBarcodes asocia códigos de barras al lote.
func (r *BatchRepo) AddBarcodes(batchID string, codes []string) error {
	query := `INSERT INTO batch_barcodes (id, batch_id, code) VALUES ($1, $2, $3)`
	for _, code := range codes {
		bc := entity.BatchBarcode{
			ID:      uuid.New().String(),
			BatchID: batchID,
			Code:    code,
		}
		_, err := r.q.Exec(context.Background(), query, bc.ID, bc.BatchID, bc.Code)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert batch barcode: %w", err)
		}
	}
	return nil
}

func (r *BatchRepo) scanOne(query, id string) (*entity.ProductBatch, error) {
	var b entity.ProductBatch
	row := r.q.QueryRow(context.Background(), query, id)
	if err := scanBatch(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

func scanBatch(row pgx.Row, b *entity.ProductBatch) error {
	return row.Scan(
		&b.ID, &b.VariantID, &b.BatchCode, &b.ExpiryDate,
		&b.InitialQuantity, &b.RemainingQuantity, &b.BuyPrice,
		&b.UnitID, &b.Expired, &b.CreatedAt, &b.UpdatedAt,
	)
}
