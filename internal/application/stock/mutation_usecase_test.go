package stock

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore simula la base: fakeTxRunner clona el estado antes de ejecutar la
// función transaccional y solo lo confirma si no hubo error. Así los tests
// verifican la atomicidad real de las mutaciones (un fallo a mitad no deja
// efectos parciales).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	batches  map[string]*entity.ProductBatch
	variants map[string]*entity.ProductVariant
	ins      []*entity.StockIn
	outs     []*entity.StockOut
	barcodes map[string][]entity.BatchBarcode
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		batches:  make(map[string]*entity.ProductBatch),
		variants: make(map[string]*entity.ProductVariant),
		barcodes: make(map[string][]entity.BatchBarcode),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, b := range s.batches {
		cp := *b
		c.batches[id] = &cp
	}
	for id, v := range s.variants {
		cp := *v
		c.variants[id] = &cp
	}
	c.ins = append(c.ins, s.ins...)
	c.outs = append(c.outs, s.outs...)
	for id, codes := range s.barcodes {
		c.barcodes[id] = append([]entity.BatchBarcode(nil), codes...)
	}
	return c
}

type fakeBatchRepo struct{ s *fakeStore }

func (r *fakeBatchRepo) Create(batch *entity.ProductBatch) error {
	for _, b := range r.s.batches {
		if b.VariantID == batch.VariantID && b.BatchCode == batch.BatchCode {
			return domain.ErrDuplicate
		}
	}
	cp := *batch
	r.s.batches[batch.ID] = &cp
	return nil
}

func (r *fakeBatchRepo) GetByID(id string) (*entity.ProductBatch, error) {
	b, ok := r.s.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBatchRepo) GetForUpdate(id string) (*entity.ProductBatch, error) {
	return r.GetByID(id)
}

func (r *fakeBatchRepo) UpdateRemaining(id string, remaining decimal.Decimal) error {
	b, ok := r.s.batches[id]
	if !ok {
		return domain.ErrBatchNotFound
	}
	b.RemainingQuantity = remaining
	return nil
}

func (r *fakeBatchRepo) ListByVariant(variantID string) ([]*entity.ProductBatch, error) {
	var out []*entity.ProductBatch
	for _, b := range r.s.batches {
		if b.VariantID == variantID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) AddBarcodes(batchID string, codes []string) error {
	for _, code := range codes {
		r.s.barcodes[batchID] = append(r.s.barcodes[batchID], entity.BatchBarcode{
			ID:      uuid.New().String(),
			BatchID: batchID,
			Code:    code,
		})
	}
	return nil
}

type fakeStockInRepo struct{ s *fakeStore }

func (r *fakeStockInRepo) Create(in *entity.StockIn) error {
	cp := *in
	r.s.ins = append(r.s.ins, &cp)
	return nil
}

func (r *fakeStockInRepo) ListByBatch(batchID string) ([]*entity.StockIn, error) {
	var out []*entity.StockIn
	for _, in := range r.s.ins {
		if in.BatchID == batchID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (r *fakeStockInRepo) ListByVariant(variantID string) ([]*entity.StockIn, error) {
	var out []*entity.StockIn
	for _, in := range r.s.ins {
		if b, ok := r.s.batches[in.BatchID]; ok && b.VariantID == variantID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (r *fakeStockInRepo) CountFiltered(string) (int, error) { return len(r.s.ins), nil }

func (r *fakeStockInRepo) ListFiltered(string, int, int, bool) ([]*entity.StockInRecord, error) {
	return nil, nil
}

type fakeStockOutRepo struct{ s *fakeStore }

func (r *fakeStockOutRepo) Create(out *entity.StockOut) error {
	cp := *out
	r.s.outs = append(r.s.outs, &cp)
	return nil
}

func (r *fakeStockOutRepo) ListByBatch(batchID string) ([]*entity.StockOut, error) {
	var out []*entity.StockOut
	for _, o := range r.s.outs {
		if o.BatchID == batchID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeStockOutRepo) ListByVariant(variantID string) ([]*entity.StockOut, error) {
	var out []*entity.StockOut
	for _, o := range r.s.outs {
		if b, ok := r.s.batches[o.BatchID]; ok && b.VariantID == variantID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeStockOutRepo) CountFiltered(string) (int, error) { return len(r.s.outs), nil }

func (r *fakeStockOutRepo) ListFiltered(string, int, int, bool) ([]*entity.StockOutRow, error) {
	return nil, nil
}

type fakeVariantRepo struct{ s *fakeStore }

func (r *fakeVariantRepo) GetByID(id string) (*entity.ProductVariant, error) {
	v, ok := r.s.variants[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVariantRepo) AdjustStock(id string, delta decimal.Decimal) error {
	v, ok := r.s.variants[id]
	if !ok {
		return domain.ErrVariantNotFound
	}
	v.TotalStock = v.TotalStock.Add(delta)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	repository.BatchRepository,
	repository.StockInRepository,
	repository.StockOutRepository,
	repository.VariantRepository,
) error) error {
	tx := r.s.clone()
	err := fn(&fakeBatchRepo{tx}, &fakeStockInRepo{tx}, &fakeStockOutRepo{tx}, &fakeVariantRepo{tx})
	if err != nil {
		return err
	}
	*r.s = *tx
	return nil
}

// fakeConverter resuelve pares (from,to) con factores fijos.
type fakeConverter struct {
	factors map[[2]string]decimal.Decimal
}

func (c *fakeConverter) Convert(_ context.Context, from, to string, qty decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return qty, nil
	}
	if f, ok := c.factors[[2]string{from, to}]; ok {
		return qty.Mul(f), nil
	}
	if f, ok := c.factors[[2]string{to, from}]; ok {
		return qty.Div(f), nil
	}
	return decimal.Zero, domain.ErrNoConversionPath
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testVariantID  = "variant-1"
	testBatchID    = "batch-1"
	testUnitG      = "unit-g"
	testUnitKG     = "unit-kg"
	testSupplierID = "supplier-1"
)

func newFixture(initial int64) (*MutationUseCase, *fakeStore) {
	store := newFakeStore()
	store.variants[testVariantID] = &entity.ProductVariant{
		ID:         testVariantID,
		ProductID:  "product-1",
		Name:       "Harina de trigo",
		SKU:        "HAR-001",
		UnitID:     testUnitG,
		TotalStock: decimal.NewFromInt(initial),
	}
	store.batches[testBatchID] = &entity.ProductBatch{
		ID:                testBatchID,
		VariantID:         testVariantID,
		BatchCode:         "L-2026-01",
		InitialQuantity:   decimal.NewFromInt(initial),
		RemainingQuantity: decimal.NewFromInt(initial),
		UnitID:            testUnitG,
	}

	converter := &fakeConverter{factors: map[[2]string]decimal.Decimal{
		{testUnitKG, testUnitG}: decimal.NewFromInt(1000),
	}}
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		testSupplierID: {ID: testSupplierID, Name: "Proveedor Uno"},
	}}

	uc := NewMutationUseCase(&fakeTxRunner{store}, &fakeVariantRepo{store}, supplierRepo, converter)
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordStockOut
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: lote de 100, salidas de 40 y 50 pasan, la tercera
// de 20 falla porque solo quedan 10.
func TestRecordStockOut_EscenarioInsuficiente(t *testing.T) {
	uc, store := newFixture(100)
	ctx := context.Background()

	require.NoError(t, uc.RecordStockOut(ctx, StockOutInput{
		BatchID: testBatchID, Quantity: decimal.NewFromInt(40), Reason: "merma",
	}))
	require.NoError(t, uc.RecordStockOut(ctx, StockOutInput{
		BatchID: testBatchID, Quantity: decimal.NewFromInt(50), Reason: "merma",
	}))
	assert.True(t, store.batches[testBatchID].RemainingQuantity.Equal(decimal.NewFromInt(10)),
		"100 − 40 − 50 debe dejar 10")

	err := uc.RecordStockOut(ctx, StockOutInput{
		BatchID: testBatchID, Quantity: decimal.NewFromInt(20), Reason: "merma",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La salida fallida no deja rastro: ni evento ni cambio de cantidades.
	assert.True(t, store.batches[testBatchID].RemainingQuantity.Equal(decimal.NewFromInt(10)),
		"la cantidad restante no cambia tras el fallo")
	assert.Len(t, store.outs, 2, "solo las dos salidas válidas quedan en el ledger")
	assert.True(t, store.variants[testVariantID].TotalStock.Equal(decimal.NewFromInt(10)),
		"el contador agregado refleja solo las salidas confirmadas")
}

func TestRecordStockOut_InvarianteDelLedger(t *testing.T) {
	uc, store := newFixture(100)
	ctx := context.Background()

	require.NoError(t, uc.RecordStockIn(ctx, StockInInput{
		BatchID: testBatchID, Quantity: decimal.NewFromInt(30),
	}))
	require.NoError(t, uc.RecordStockOut(ctx, StockOutInput{
		BatchID: testBatchID, Quantity: decimal.NewFromInt(45), Reason: "venta mostrador",
	}))
	require.NoError(t, uc.RecordStockIn(ctx, StockInInput{
		BatchID: testBatchID, Quantity: decimal.NewFromInt(5),
	}))

	// remaining = initial + Σentradas − Σsalidas
	batch := store.batches[testBatchID]
	sum := batch.InitialQuantity
	for _, in := range store.ins {
		sum = sum.Add(in.Quantity)
	}
	for _, out := range store.outs {
		sum = sum.Sub(out.Quantity)
	}
	assert.True(t, batch.RemainingQuantity.Equal(sum),
		"remaining debe ser initial + entradas − salidas")
	assert.False(t, batch.RemainingQuantity.IsNegative())
}

func TestRecordStockOut_ConversionDeUnidad(t *testing.T) {
	// Lote nativo en gramos con 5000; salida de 2 kg descuenta 2000 g.
	uc, store := newFixture(5000)
	ctx := context.Background()

	require.NoError(t, uc.RecordStockOut(ctx, StockOutInput{
		BatchID:  testBatchID,
		Quantity: decimal.NewFromInt(2),
		UnitID:   testUnitKG,
		Reason:   "merma",
	}))

	assert.True(t, store.batches[testBatchID].RemainingQuantity.Equal(decimal.NewFromInt(3000)),
		"5000 g − 2 kg deben quedar 3000 g")
	// El evento conserva la cantidad y unidad del caller.
	require.Len(t, store.outs, 1)
	assert.True(t, store.outs[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, testUnitKG, store.outs[0].UnitID)
}

func TestRecordStockOut_Validaciones(t *testing.T) {
	uc, _ := newFixture(100)
	ctx := context.Background()

	err := uc.RecordStockOut(ctx, StockOutInput{
		BatchID: testBatchID, Quantity: decimal.Zero, Reason: "merma",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero se rechaza")

	err = uc.RecordStockOut(ctx, StockOutInput{
		BatchID: testBatchID, Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "motivo vacío se rechaza")

	err = uc.RecordStockOut(ctx, StockOutInput{
		BatchID: "batch-nope", Quantity: decimal.NewFromInt(1), Reason: "merma",
	})
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordStockIn
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordStockIn_IncrementaLoteYContador(t *testing.T) {
	uc, store := newFixture(100)
	ctx := context.Background()

	supplierID := testSupplierID
	require.NoError(t, uc.RecordStockIn(ctx, StockInInput{
		BatchID:    testBatchID,
		Quantity:   decimal.NewFromInt(50),
		SupplierID: &supplierID,
	}))

	assert.True(t, store.batches[testBatchID].RemainingQuantity.Equal(decimal.NewFromInt(150)))
	assert.True(t, store.variants[testVariantID].TotalStock.Equal(decimal.NewFromInt(150)))
	require.Len(t, store.ins, 1)
	require.NotNil(t, store.ins[0].SupplierID)
	assert.Equal(t, testSupplierID, *store.ins[0].SupplierID)
	assert.False(t, store.ins[0].Date.IsZero(), "la fecha por defecto es ahora")
}

func TestRecordStockIn_ConversionDeUnidad(t *testing.T) {
	uc, store := newFixture(100)
	ctx := context.Background()

	require.NoError(t, uc.RecordStockIn(ctx, StockInInput{
		BatchID:  testBatchID,
		Quantity: decimal.NewFromInt(2),
		UnitID:   testUnitKG,
	}))

	assert.True(t, store.batches[testBatchID].RemainingQuantity.Equal(decimal.NewFromInt(2100)),
		"100 g + 2 kg deben ser 2100 g")
	require.Len(t, store.ins, 1)
	assert.True(t, store.ins[0].Quantity.Equal(decimal.NewFromInt(2)),
		"el evento guarda la cantidad tal como llegó")
}

func TestRecordStockIn_ProveedorInexistente(t *testing.T) {
	uc, store := newFixture(100)
	ctx := context.Background()

	supplierID := "supplier-nope"
	err := uc.RecordStockIn(ctx, StockInInput{
		BatchID:    testBatchID,
		Quantity:   decimal.NewFromInt(10),
		SupplierID: &supplierID,
	})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
	assert.Empty(t, store.ins, "no se registra el evento")
}

// ──────────────────────────────────────────────────────────────────────────────
// AddBatch
// ──────────────────────────────────────────────────────────────────────────────

func TestAddBatch_CreaSinEventoDeEntrada(t *testing.T) {
	uc, store := newFixture(100)
	ctx := context.Background()

	batch, err := uc.AddBatch(ctx, AddBatchInput{
		VariantID:       testVariantID,
		BatchCode:       "L-2026-02",
		ExpiryDate:      time.Now().AddDate(1, 0, 0),
		InitialQuantity: decimal.NewFromInt(200),
		BuyPrice:        decimal.NewFromFloat(12.5),
		Barcodes:        []string{"7701234567890"},
	})
	require.NoError(t, err)

	created := store.batches[batch.ID]
	require.NotNil(t, created)
	assert.True(t, created.RemainingQuantity.Equal(created.InitialQuantity),
		"el lote nace con remaining = initial")
	assert.Equal(t, testUnitG, created.UnitID, "hereda la unidad nativa de la variante")
	assert.Empty(t, store.ins, "crear el lote no escribe un StockIn aparte")
	assert.True(t, store.variants[testVariantID].TotalStock.Equal(decimal.NewFromInt(300)),
		"el contador agregado suma la cantidad inicial")
	require.Len(t, store.barcodes[batch.ID], 1)
	bc := store.barcodes[batch.ID][0]
	assert.Equal(t, "7701234567890", bc.Code)
	assert.Equal(t, batch.ID, bc.BatchID, "el código de barras queda ligado al lote creado")
}

func TestAddBatch_Validaciones(t *testing.T) {
	uc, _ := newFixture(100)
	ctx := context.Background()

	_, err := uc.AddBatch(ctx, AddBatchInput{
		VariantID: testVariantID, BatchCode: "", InitialQuantity: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "batch_code vacío se rechaza")

	_, err = uc.AddBatch(ctx, AddBatchInput{
		VariantID: testVariantID, BatchCode: "L-X", InitialQuantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad inicial cero se rechaza")

	_, err = uc.AddBatch(ctx, AddBatchInput{
		VariantID: "variant-nope", BatchCode: "L-X", InitialQuantity: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestAddBatch_CodigoDuplicadoNoDejaEfectos(t *testing.T) {
	uc, store := newFixture(100)
	ctx := context.Background()

	_, err := uc.AddBatch(ctx, AddBatchInput{
		VariantID:       testVariantID,
		BatchCode:       "L-2026-01", // ya existe en la fixture
		InitialQuantity: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.True(t, store.variants[testVariantID].TotalStock.Equal(decimal.NewFromInt(100)),
		"el contador agregado no cambia si la creación falla")
}
