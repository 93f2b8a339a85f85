package stock

import (
	"context"
	"sort"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/textutil"
)

// StockOutViewUseCase vista unificada de salidas: presenta las filas manuales
// de stock_outs y las salidas implícitas derivadas de líneas de venta como una
// sola secuencia paginada ordenada por fecha, sin materializar la unión
// completa de ambas tablas.
type StockOutViewUseCase struct {
	stockOutRepo repository.StockOutRepository
	trxItemRepo  repository.TransactionItemRepository
}

// NewStockOutViewUseCase construye el caso de uso.
func NewStockOutViewUseCase(
	stockOutRepo repository.StockOutRepository,
	trxItemRepo repository.TransactionItemRepository,
) *StockOutViewUseCase {
	return &StockOutViewUseCase{stockOutRepo: stockOutRepo, trxItemRepo: trxItemRepo}
}

// GetAllStockOuts pagina sobre la unión lógica de ambas fuentes bajo el mismo
// filtro de texto. Con skip = (page-1)×pageSize y los conteos independientes:
//
//   - Caso A (skip < manualCount): se leen hasta pageSize filas manuales desde
//     skip; si no llenan la página se completa con filas de ventas desde el
//     offset 0 — la fuente de ventas va conceptualmente "después" de la
//     manual. Si ambas fuentes aportan a la página, se reordena localmente
//     por fecha según la dirección pedida.
//   - Caso B (skip >= manualCount): la ventana cae entera en la fuente de
//     ventas; se lee desde skip − manualCount.
//
// El orden global solo se garantiza a granularidad de página cuando una
// fuente se agota a mitad de página: O(pageSize) de trabajo por petición a
// cambio de no unir ni ordenar dos tablas sin cota.
func (uc *StockOutViewUseCase) GetAllStockOuts(ctx context.Context, params dto.SearchParams) ([]dto.StockOutRowDTO, dto.PageResponse, error) {
	params.Defaults()
	search := textutil.NormalizeSearch(params.Search)

	manualCount, err := uc.stockOutRepo.CountFiltered(search)
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	trxCount, err := uc.trxItemRepo.CountStockOuts(search)
	if err != nil {
		return nil, dto.PageResponse{}, err
	}

	skip := params.Offset()
	pageSize := params.PageSize
	asc := params.Asc()

	var rows []*entity.StockOutRow
	if skip < manualCount {
		take := pageSize
		if rest := manualCount - skip; rest < take {
			take = rest
		}
		manual, err := uc.stockOutRepo.ListFiltered(search, take, skip, asc)
		if err != nil {
			return nil, dto.PageResponse{}, err
		}
		rows = manual
		if len(rows) < pageSize && trxCount > 0 {
			fill, err := uc.trxItemRepo.ListStockOuts(search, pageSize-len(rows), 0, asc)
			if err != nil {
				return nil, dto.PageResponse{}, err
			}
			rows = append(rows, fill...)
			if len(manual) > 0 && len(fill) > 0 {
				sortRowsByDate(rows, asc)
			}
		}
	} else {
		rows, err = uc.trxItemRepo.ListStockOuts(search, pageSize, skip-manualCount, asc)
		if err != nil {
			return nil, dto.PageResponse{}, err
		}
	}

	out := make([]dto.StockOutRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockOutRowDTO{
			ID:            r.ID,
			Source:        r.Source,
			BatchID:       r.BatchID,
			BatchCode:     r.BatchCode,
			ProductName:   r.ProductName,
			Quantity:      r.Quantity,
			UnitName:      r.UnitName,
			Date:          r.Date,
			Reason:        r.Reason,
			TransactionID: r.TransactionID,
		})
	}
	page := dto.PageResponse{Page: params.Page, PageSize: params.PageSize, Total: manualCount + trxCount}
	return out, page, nil
}

// sortRowsByDate reordena la página localmente por fecha (orden estable).
func sortRowsByDate(rows []*entity.StockOutRow, asc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if asc {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].Date.After(rows[j].Date)
	})
}
