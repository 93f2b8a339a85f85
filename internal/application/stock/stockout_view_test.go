package stock

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de las dos fuentes de la vista unificada
// ──────────────────────────────────────────────────────────────────────────────

// pageRows aplica orden por fecha y ventana limit/offset, como harían las
// consultas SQL de cada fuente.
func pageRows(rows []*entity.StockOutRow, limit, offset int, asc bool) []*entity.StockOutRow {
	sorted := append([]*entity.StockOutRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if asc {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Date.After(sorted[j].Date)
	})
	if offset >= len(sorted) {
		return nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end]
}

type fakeManualSource struct {
	rows []*entity.StockOutRow
}

func (f *fakeManualSource) Create(*entity.StockOut) error                      { return nil }
func (f *fakeManualSource) ListByBatch(string) ([]*entity.StockOut, error)     { return nil, nil }
func (f *fakeManualSource) ListByVariant(string) ([]*entity.StockOut, error)   { return nil, nil }
func (f *fakeManualSource) CountFiltered(string) (int, error)                  { return len(f.rows), nil }
func (f *fakeManualSource) ListFiltered(_ string, limit, offset int, asc bool) ([]*entity.StockOutRow, error) {
	return pageRows(f.rows, limit, offset, asc), nil
}

type fakeTrxSource struct {
	rows []*entity.StockOutRow
}

func (f *fakeTrxSource) CountStockOuts(string) (int, error) { return len(f.rows), nil }
func (f *fakeTrxSource) ListStockOuts(_ string, limit, offset int, asc bool) ([]*entity.StockOutRow, error) {
	return pageRows(f.rows, limit, offset, asc), nil
}

// newViewFixture crea 3 salidas manuales y 7 de ventas con fechas
// intercaladas: manual en días 1, 4 y 7; ventas en días 2, 3, 5, 6, 8, 9 y 10.
func newViewFixture() (*StockOutViewUseCase, []*entity.StockOutRow, []*entity.StockOutRow) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	manual := []*entity.StockOutRow{
		{ID: "man-1", Source: entity.StockOutSourceManual, Reason: "merma", Date: day(1), Quantity: decimal.NewFromInt(1)},
		{ID: "man-2", Source: entity.StockOutSourceManual, Reason: "merma", Date: day(4), Quantity: decimal.NewFromInt(2)},
		{ID: "man-3", Source: entity.StockOutSourceManual, Reason: "rotura", Date: day(7), Quantity: decimal.NewFromInt(3)},
	}
	var trx []*entity.StockOutRow
	for i, n := range []int{2, 3, 5, 6, 8, 9, 10} {
		trx = append(trx, &entity.StockOutRow{
			ID:            "trx-" + string(rune('a'+i)),
			Source:        entity.StockOutSourceTransaction,
			Reason:        entity.ReasonTransactionSale,
			TransactionID: "venta-1",
			Date:          day(n),
			Quantity:      decimal.NewFromInt(int64(n)),
		})
	}

	uc := NewStockOutViewUseCase(&fakeManualSource{rows: manual}, &fakeTrxSource{rows: trx})
	return uc, manual, trx
}

// ──────────────────────────────────────────────────────────────────────────────
// GetAllStockOuts
// ──────────────────────────────────────────────────────────────────────────────

// Página 1 con 3 manuales y 7 de ventas: caen las 3 manuales más 2 de ventas
// (caso A), reordenadas localmente por fecha.
func TestGetAllStockOuts_Pagina1_CasoA(t *testing.T) {
	uc, _, _ := newViewFixture()

	rows, page, err := uc.GetAllStockOuts(context.Background(), dto.SearchParams{Page: 1, PageSize: 5})
	require.NoError(t, err)

	assert.Equal(t, 10, page.Total, "el total suma ambas fuentes")
	require.Len(t, rows, 5)

	var manualCount, trxCount int
	for _, r := range rows {
		switch r.Source {
		case entity.StockOutSourceManual:
			manualCount++
		case entity.StockOutSourceTransaction:
			trxCount++
			assert.Equal(t, entity.ReasonTransactionSale, r.Reason)
			assert.NotEmpty(t, r.TransactionID)
		}
	}
	assert.Equal(t, 3, manualCount, "las 3 manuales entran en la primera página")
	assert.Equal(t, 2, trxCount, "el resto se rellena desde las ventas")

	// Reorden local por fecha descendente dentro de la página.
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Date.After(rows[i-1].Date),
			"la página debe quedar ordenada por fecha descendente")
	}
}

// Página 2: la ventana cae entera en la fuente de ventas (caso B).
func TestGetAllStockOuts_Pagina2_CasoB(t *testing.T) {
	uc, _, _ := newViewFixture()

	rows, page, err := uc.GetAllStockOuts(context.Background(), dto.SearchParams{Page: 2, PageSize: 5})
	require.NoError(t, err)

	assert.Equal(t, 10, page.Total)
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, entity.StockOutSourceTransaction, r.Source,
			"la segunda página solo contiene filas de ventas")
	}
}

// Recorrer todas las páginas devuelve cada fila exactamente una vez.
func TestGetAllStockOuts_CompletitudSinDuplicados(t *testing.T) {
	uc, manual, trx := newViewFixture()

	seen := make(map[string]int)
	for pageNum := 1; pageNum <= 2; pageNum++ {
		rows, _, err := uc.GetAllStockOuts(context.Background(), dto.SearchParams{Page: pageNum, PageSize: 5})
		require.NoError(t, err)
		for _, r := range rows {
			seen[r.ID]++
		}
	}

	assert.Len(t, seen, len(manual)+len(trx), "todas las filas aparecen")
	for id, n := range seen {
		assert.Equal(t, 1, n, "la fila %s no debe duplicarse entre páginas", id)
	}
}

func TestGetAllStockOuts_SinSalidasManuales(t *testing.T) {
	_, _, trx := newViewFixture()
	uc := NewStockOutViewUseCase(&fakeManualSource{}, &fakeTrxSource{rows: trx})

	rows, page, err := uc.GetAllStockOuts(context.Background(), dto.SearchParams{Page: 1, PageSize: 5})
	require.NoError(t, err)

	assert.Equal(t, len(trx), page.Total)
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, entity.StockOutSourceTransaction, r.Source)
	}
}

func TestGetAllStockOuts_SinVentas(t *testing.T) {
	uc, manual, _ := newViewFixture()
	uc = NewStockOutViewUseCase(&fakeManualSource{rows: manual}, &fakeTrxSource{})

	rows, page, err := uc.GetAllStockOuts(context.Background(), dto.SearchParams{Page: 1, PageSize: 5})
	require.NoError(t, err)

	assert.Equal(t, len(manual), page.Total)
	require.Len(t, rows, len(manual))
	for _, r := range rows {
		assert.Equal(t, entity.StockOutSourceManual, r.Source)
	}
}

func TestGetAllStockOuts_OrdenAscendente(t *testing.T) {
	uc, _, _ := newViewFixture()

	rows, _, err := uc.GetAllStockOuts(context.Background(), dto.SearchParams{
		Page: 1, PageSize: 5, SortDirection: "asc",
	})
	require.NoError(t, err)

	require.Len(t, rows, 5)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Date.Before(rows[i-1].Date),
			"con sort_dir=asc la página queda en orden ascendente")
	}
}

// Página más allá del final: sin filas pero con el total correcto.
func TestGetAllStockOuts_PaginaVacia(t *testing.T) {
	uc, _, _ := newViewFixture()

	rows, page, err := uc.GetAllStockOuts(context.Background(), dto.SearchParams{Page: 4, PageSize: 5})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 10, page.Total)
}
