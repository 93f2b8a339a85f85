package stock

import (
	"context"
	"sort"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/textutil"
)

// HistoryUseCase consultas de historial y listados sobre los eventos del ledger.
type HistoryUseCase struct {
	batchRepo    repository.BatchRepository
	stockInRepo  repository.StockInRepository
	stockOutRepo repository.StockOutRepository
	variantRepo  repository.VariantRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	batchRepo repository.BatchRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
	variantRepo repository.VariantRepository,
) *HistoryUseCase {
	return &HistoryUseCase{
		batchRepo:    batchRepo,
		stockInRepo:  stockInRepo,
		stockOutRepo: stockOutRepo,
		variantRepo:  variantRepo,
	}
}

// GetStockHistory todos los eventos de entrada y salida de todos los lotes de
// una variante, mezclados y ordenados por fecha descendente. Materializa el
// resultado completo sin paginar: aceptable porque el historial está acotado
// a una sola variante.
func (uc *HistoryUseCase) GetStockHistory(ctx context.Context, variantID string) ([]dto.StockMovementDTO, error) {
	variant, err := uc.variantRepo.GetByID(variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}
	ins, err := uc.stockInRepo.ListByVariant(variantID)
	if err != nil {
		return nil, err
	}
	outs, err := uc.stockOutRepo.ListByVariant(variantID)
	if err != nil {
		return nil, err
	}
	return mergeMovements(ins, outs), nil
}

// GetBatchStockMovementHistory igual que GetStockHistory pero acotado a un lote.
func (uc *HistoryUseCase) GetBatchStockMovementHistory(ctx context.Context, batchID string) ([]dto.StockMovementDTO, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrBatchNotFound
	}
	ins, err := uc.stockInRepo.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	outs, err := uc.stockOutRepo.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	return mergeMovements(ins, outs), nil
}

// GetAllStockIns listado paginado de entradas con búsqueda por nombre de
// producto o código de lote.
func (uc *HistoryUseCase) GetAllStockIns(ctx context.Context, params dto.SearchParams) ([]dto.StockInRecordDTO, dto.PageResponse, error) {
	params.Defaults()
	search := textutil.NormalizeSearch(params.Search)

	total, err := uc.stockInRepo.CountFiltered(search)
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	records, err := uc.stockInRepo.ListFiltered(search, params.PageSize, params.Offset(), params.Asc())
	if err != nil {
		return nil, dto.PageResponse{}, err
	}

	rows := make([]dto.StockInRecordDTO, 0, len(records))
	for _, r := range records {
		row := dto.StockInRecordDTO{
			ID:          r.ID,
			BatchID:     r.BatchID,
			BatchCode:   r.BatchCode,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			UnitName:    r.UnitName,
			Date:        r.Date,
		}
		if r.SupplierID != nil {
			row.SupplierID = *r.SupplierID
		}
		rows = append(rows, row)
	}
	page := dto.PageResponse{Page: params.Page, PageSize: params.PageSize, Total: total}
	return rows, page, nil
}

// mergeMovements une entradas y salidas en una sola lista ordenada por fecha
// descendente (empates: se conserva el orden relativo de cada fuente).
func mergeMovements(ins []*entity.StockIn, outs []*entity.StockOut) []dto.StockMovementDTO {
	movs := make([]dto.StockMovementDTO, 0, len(ins)+len(outs))
	for _, in := range ins {
		m := dto.StockMovementDTO{
			ID:       in.ID,
			Type:     "in",
			BatchID:  in.BatchID,
			Quantity: in.Quantity,
			UnitID:   in.UnitID,
			Date:     in.Date,
		}
		if in.SupplierID != nil {
			m.SupplierID = *in.SupplierID
		}
		movs = append(movs, m)
	}
	for _, out := range outs {
		movs = append(movs, dto.StockMovementDTO{
			ID:       out.ID,
			Type:     "out",
			BatchID:  out.BatchID,
			Quantity: out.Quantity,
			UnitID:   out.UnitID,
			Date:     out.Date,
			Reason:   out.Reason,
		})
	}
	sort.SliceStable(movs, func(i, j int) bool {
		return movs[i].Date.After(movs[j].Date)
	})
	return movs
}
