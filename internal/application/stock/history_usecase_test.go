package stock

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func newHistoryFixture() (*HistoryUseCase, *fakeStore) {
	store := newFakeStore()
	store.variants[testVariantID] = &entity.ProductVariant{
		ID: testVariantID, Name: "Harina de trigo", SKU: "HAR-001", UnitID: testUnitG,
	}
	store.batches[testBatchID] = &entity.ProductBatch{
		ID: testBatchID, VariantID: testVariantID, BatchCode: "L-2026-01", UnitID: testUnitG,
	}

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	store.ins = []*entity.StockIn{
		{ID: "in-1", BatchID: testBatchID, Quantity: decimal.NewFromInt(10), UnitID: testUnitG, Date: base.AddDate(0, 0, 1)},
		{ID: "in-2", BatchID: testBatchID, Quantity: decimal.NewFromInt(5), UnitID: testUnitG, Date: base.AddDate(0, 0, 5)},
	}
	store.outs = []*entity.StockOut{
		{ID: "out-1", BatchID: testBatchID, Quantity: decimal.NewFromInt(3), UnitID: testUnitG, Date: base.AddDate(0, 0, 3), Reason: "merma"},
	}

	uc := NewHistoryUseCase(&fakeBatchRepo{store}, &fakeStockInRepo{store}, &fakeStockOutRepo{store}, &fakeVariantRepo{store})
	return uc, store
}

func TestGetStockHistory_MezclaOrdenadaDescendente(t *testing.T) {
	uc, _ := newHistoryFixture()

	movs, err := uc.GetStockHistory(context.Background(), testVariantID)
	require.NoError(t, err)
	require.Len(t, movs, 3, "entradas y salidas mezcladas en una sola lista")

	assert.Equal(t, "in-2", movs[0].ID)
	assert.Equal(t, "out-1", movs[1].ID)
	assert.Equal(t, "in-1", movs[2].ID)
	assert.Equal(t, "in", movs[0].Type)
	assert.Equal(t, "out", movs[1].Type)
	assert.Equal(t, "merma", movs[1].Reason)
}

func TestGetStockHistory_VarianteInexistente(t *testing.T) {
	uc, _ := newHistoryFixture()

	_, err := uc.GetStockHistory(context.Background(), "variant-nope")
	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestGetBatchStockMovementHistory_LoteInexistente(t *testing.T) {
	uc, _ := newHistoryFixture()

	_, err := uc.GetBatchStockMovementHistory(context.Background(), "batch-nope")
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
}

func TestGetBatchStockMovementHistory_SoloElLote(t *testing.T) {
	uc, store := newHistoryFixture()
	// Un lote ajeno con su propio movimiento no debe colarse.
	store.batches["batch-2"] = &entity.ProductBatch{
		ID: "batch-2", VariantID: "variant-2", BatchCode: "L-2026-99", UnitID: testUnitG,
	}
	store.ins = append(store.ins, &entity.StockIn{
		ID: "in-otro", BatchID: "batch-2", Quantity: decimal.NewFromInt(1), UnitID: testUnitG, Date: time.Now(),
	})

	movs, err := uc.GetBatchStockMovementHistory(context.Background(), testBatchID)
	require.NoError(t, err)
	assert.Len(t, movs, 3)
	for _, m := range movs {
		assert.Equal(t, testBatchID, m.BatchID)
	}
}
