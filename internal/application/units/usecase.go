package units

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/measure"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ConversionUseCase resuelve cantidades entre unidades de medida sobre un
// grafo disperso de factores dirigidos. La resolución es de un solo salto:
// tener A→B y B→C no hace resolvible A→C. Es una limitación de diseño, no un
// bug, y se preserva.
type ConversionUseCase struct {
	unitRepo repository.UnitRepository
	convRepo repository.UnitConversionRepository
}

// NewConversionUseCase construye el caso de uso.
func NewConversionUseCase(unitRepo repository.UnitRepository, convRepo repository.UnitConversionRepository) *ConversionUseCase {
	return &ConversionUseCase{unitRepo: unitRepo, convRepo: convRepo}
}

// Convert convierte quantity de fromUnitID a toUnitID. Orden de resolución:
// identidad (misma unidad, costo cero), arista directa (× factor), arista
// inversa sintetizada (÷ factor) y, si no hay camino, ErrNoConversionPath.
func (uc *ConversionUseCase) Convert(ctx context.Context, fromUnitID, toUnitID string, quantity decimal.Decimal) (decimal.Decimal, error) {
	if fromUnitID == toUnitID {
		return quantity, nil
	}
	if err := uc.ensureUnits(fromUnitID, toUnitID); err != nil {
		return decimal.Zero, err
	}
	direct, err := uc.convRepo.GetByPair(fromUnitID, toUnitID)
	if err != nil {
		return decimal.Zero, err
	}
	if direct != nil {
		return measure.ApplyDirect(quantity, direct.Factor), nil
	}
	reverse, err := uc.convRepo.GetByPair(toUnitID, fromUnitID)
	if err != nil {
		return decimal.Zero, err
	}
	if reverse != nil {
		return measure.ApplyReverse(quantity, reverse.Factor)
	}
	return decimal.Zero, domain.ErrNoConversionPath
}

// CreateConversion crea una arista (from → to, factor). Rechaza el mismo par
// ordenado duplicado, factores no positivos y unidades inexistentes.
func (uc *ConversionUseCase) CreateConversion(ctx context.Context, in dto.CreateConversionRequest) (*entity.UnitConversion, error) {
	if in.FromUnitID == "" || in.ToUnitID == "" || in.FromUnitID == in.ToUnitID {
		return nil, domain.ErrInvalidInput
	}
	if !in.Factor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.ensureUnits(in.FromUnitID, in.ToUnitID); err != nil {
		return nil, err
	}
	existing, err := uc.convRepo.GetByPair(in.FromUnitID, in.ToUnitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	conv := &entity.UnitConversion{
		ID:         uuid.New().String(),
		FromUnitID: in.FromUnitID,
		ToUnitID:   in.ToUnitID,
		Factor:     in.Factor,
		CreatedAt:  time.Now(),
	}
	if err := uc.convRepo.Create(conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// ListForUnit devuelve las aristas que tocan la unidad, en ambas direcciones.
func (uc *ConversionUseCase) ListForUnit(ctx context.Context, unitID string) ([]*entity.UnitConversion, error) {
	if err := uc.ensureUnits(unitID); err != nil {
		return nil, err
	}
	return uc.convRepo.ListForUnit(unitID)
}

func (uc *ConversionUseCase) ensureUnits(ids ...string) error {
	for _, id := range ids {
		u, err := uc.unitRepo.GetByID(id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUnitNotFound
		}
	}
	return nil
}
