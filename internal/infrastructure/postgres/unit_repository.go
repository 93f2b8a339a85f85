package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)
var _ repository.UnitConversionRepository = (*UnitConversionRepo)(nil)

// UnitRepo implementación de UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// GetByID obtiene una unidad por ID; nil si no existe.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `SELECT id, name, abbreviation, created_at FROM units WHERE id = $1`
	var u entity.Unit
	err := r.q.QueryRow(context.Background(), query, id).Scan(&u.ID, &u.Name, &u.Abbreviation, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// UnitConversionRepo implementación de UnitConversionRepository sobre
// PostgreSQL. (from_unit_id, to_unit_id) es único: el par ordenado no se
// repite.
type UnitConversionRepo struct {
	q Querier
}

// NewUnitConversionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitConversionRepository(q Querier) *UnitConversionRepo {
	return &UnitConversionRepo{q: q}
}

// Create persiste una arista de conversión.
func (r *UnitConversionRepo) Create(conv *entity.UnitConversion) error {
	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO unit_conversions (id, from_unit_id, to_unit_id, factor, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		conv.ID, conv.FromUnitID, conv.ToUnitID, conv.Factor, conv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit conversion: %w", err)
	}
	return nil
}

// GetByPair busca la arista exacta (from → to); nil si no existe.
func (r *UnitConversionRepo) GetByPair(fromUnitID, toUnitID string) (*entity.UnitConversion, error) {
	query := `
		SELECT id, from_unit_id, to_unit_id, factor, created_at
		FROM unit_conversions WHERE from_unit_id = $1 AND to_unit_id = $2`
	var c entity.UnitConversion
	err := r.q.QueryRow(context.Background(), query, fromUnitID, toUnitID).Scan(
		&c.ID, &c.FromUnitID, &c.ToUnitID, &c.Factor, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit conversion: %w", err)
	}
	return &c, nil
}

// ListForUnit aristas que tocan la unidad, en ambas direcciones.
func (r *UnitConversionRepo) ListForUnit(unitID string) ([]*entity.UnitConversion, error) {
	query := `
		SELECT id, from_unit_id, to_unit_id, factor, created_at
		FROM unit_conversions
		WHERE from_unit_id = $1 OR to_unit_id = $1
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, unitID)
	if err != nil {
		return nil, fmt.Errorf("list unit conversions: %w", err)
	}
	defer rows.Close()
	var list []*entity.UnitConversion
	for rows.Next() {
		var c entity.UnitConversion
		if err := rows.Scan(&c.ID, &c.FromUnitID, &c.ToUnitID, &c.Factor, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unit conversion: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
