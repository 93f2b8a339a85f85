package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación de VariantRepository sobre PostgreSQL (usable
// con pool o tx).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

// GetByID obtiene una variante por ID; nil si no existe.
func (r *VariantRepo) GetByID(id string) (*entity.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, sku, unit_id, total_stock, created_at, updated_at
		FROM product_variants WHERE id = $1`
	var v entity.ProductVariant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ProductID, &v.Name, &v.SKU, &v.UnitID, &v.TotalStock, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return &v, nil
}

// AdjustStock suma delta al contador agregado de la variante. El ajuste es
// relativo en SQL (total_stock + delta) para componer con el bloqueo de fila
// del lote dentro de la misma transacción.
func (r *VariantRepo) AdjustStock(id string, delta decimal.Decimal) error {
	query := `UPDATE product_variants SET total_stock = total_stock + $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust variant stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVariantNotFound
	}
	return nil
}
