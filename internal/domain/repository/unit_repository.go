package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// UnitRepository puerto de unidades de medida.
type UnitRepository interface {
	GetByID(id string) (*entity.Unit, error)
}

// UnitConversionRepository puerto de aristas de conversión entre unidades.
type UnitConversionRepository interface {
	Create(conv *entity.UnitConversion) error
	// GetByPair busca la arista exacta (from → to); nil si no existe.
	GetByPair(fromUnitID, toUnitID string) (*entity.UnitConversion, error)
	ListForUnit(unitID string) ([]*entity.UnitConversion, error)
}
