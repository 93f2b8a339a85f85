package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MutationUseCase único escritor de cantidades de lote. Cada operación corre
// dentro de una transacción (TxRunner) que bloquea la fila del lote
// (SELECT FOR UPDATE), crea el evento del ledger y ajusta el contador
// agregado de la variante: o se confirman los tres efectos o ninguno.
type MutationUseCase struct {
	txRunner     TxRunner
	variantRepo  repository.VariantRepository
	supplierRepo repository.SupplierRepository
	converter    Converter
}

// NewMutationUseCase construye el caso de uso.
func NewMutationUseCase(
	txRunner TxRunner,
	variantRepo repository.VariantRepository,
	supplierRepo repository.SupplierRepository,
	converter Converter,
) *MutationUseCase {
	return &MutationUseCase{
		txRunner:     txRunner,
		variantRepo:  variantRepo,
		supplierRepo: supplierRepo,
		converter:    converter,
	}
}

// StockInInput entrada para RecordStockIn. UnitID vacío = unidad nativa del lote.
type StockInInput struct {
	BatchID    string
	Quantity   decimal.Decimal
	UnitID     string
	Date       time.Time
	SupplierID *string
}

// StockOutInput entrada para RecordStockOut.
type StockOutInput struct {
	BatchID  string
	Quantity decimal.Decimal
	UnitID   string
	Date     time.Time
	Reason   string
}

// AddBatchInput entrada para AddBatch. El lote hereda la unidad nativa de la
// variante.
type AddBatchInput struct {
	VariantID       string
	BatchCode       string
	ExpiryDate      time.Time
	InitialQuantity decimal.Decimal
	BuyPrice        decimal.Decimal
	Barcodes        []string
}

// RecordStockIn registra una entrada: crea el evento StockIn, incrementa
// RemainingQuantity del lote y el contador agregado de la variante, todo en
// una transacción. Si la entrada llega en una unidad distinta de la nativa
// del lote, la cantidad aplicada se resuelve vía el resolutor de conversión;
// el evento conserva la cantidad y unidad tal como las dio el caller.
func (uc *MutationUseCase) RecordStockIn(ctx context.Context, input StockInInput) error {
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if input.SupplierID != nil {
		sup, err := uc.supplierRepo.GetByID(*input.SupplierID)
		if err != nil {
			return err
		}
		if sup == nil {
			return domain.ErrSupplierNotFound
		}
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	return uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
		variantRepo repository.VariantRepository,
	) error {
		batch, err := batchRepo.GetForUpdate(input.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrBatchNotFound
		}
		unitID := input.UnitID
		if unitID == "" {
			unitID = batch.UnitID
		}
		applied, err := uc.toNativeQuantity(ctx, unitID, batch.UnitID, input.Quantity)
		if err != nil {
			return err
		}
		in := &entity.StockIn{
			ID:         uuid.New().String(),
			BatchID:    batch.ID,
			Quantity:   input.Quantity,
			UnitID:     unitID,
			Date:       input.Date,
			SupplierID: input.SupplierID,
			CreatedAt:  time.Now(),
		}
		if err := stockInRepo.Create(in); err != nil {
			return err
		}
		if err := batchRepo.UpdateRemaining(batch.ID, batch.RemainingQuantity.Add(applied)); err != nil {
			return err
		}
		return variantRepo.AdjustStock(batch.VariantID, applied)
	})
}

// RecordStockOut registra una salida manual. La verificación de stock
// suficiente y el decremento ocurren bajo el mismo bloqueo de fila: dos
// salidas concurrentes contra un lote con cantidad justa para una no pueden
// pasar ambas la validación. Si la cantidad convertida supera
// RemainingQuantity falla con ErrInsufficientStock y no escribe nada.
func (uc *MutationUseCase) RecordStockOut(ctx context.Context, input StockOutInput) error {
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if input.Reason == "" {
		return domain.ErrInvalidInput
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	return uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		variantRepo repository.VariantRepository,
	) error {
		batch, err := batchRepo.GetForUpdate(input.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrBatchNotFound
		}
		unitID := input.UnitID
		if unitID == "" {
			unitID = batch.UnitID
		}
		applied, err := uc.toNativeQuantity(ctx, unitID, batch.UnitID, input.Quantity)
		if err != nil {
			return err
		}
		if batch.RemainingQuantity.LessThan(applied) {
			return domain.ErrInsufficientStock
		}
		out := &entity.StockOut{
			ID:        uuid.New().String(),
			BatchID:   batch.ID,
			Quantity:  input.Quantity,
			UnitID:    unitID,
			Date:      input.Date,
			Reason:    input.Reason,
			CreatedAt: time.Now(),
		}
		if err := stockOutRepo.Create(out); err != nil {
			return err
		}
		if err := batchRepo.UpdateRemaining(batch.ID, batch.RemainingQuantity.Sub(applied)); err != nil {
			return err
		}
		return variantRepo.AdjustStock(batch.VariantID, applied.Neg())
	})
}

// AddBatch crea un lote nuevo con RemainingQuantity = InitialQuantity, sus
// códigos de barras opcionales, e incrementa el contador agregado de la
// variante. La creación del lote ES el evento de recepción: no se escribe un
// StockIn aparte.
func (uc *MutationUseCase) AddBatch(ctx context.Context, input AddBatchInput) (*entity.ProductBatch, error) {
	if input.VariantID == "" || input.BatchCode == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.InitialQuantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.BuyPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	variant, err := uc.variantRepo.GetByID(input.VariantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}

	now := time.Now()
	batch := &entity.ProductBatch{
		ID:                uuid.New().String(),
		VariantID:         variant.ID,
		BatchCode:         input.BatchCode,
		ExpiryDate:        input.ExpiryDate,
		InitialQuantity:   input.InitialQuantity,
		RemainingQuantity: input.InitialQuantity,
		BuyPrice:          input.BuyPrice,
		UnitID:            variant.UnitID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		_ repository.StockInRepository,
		_ repository.StockOutRepository,
		variantRepo repository.VariantRepository,
	) error {
		if err := batchRepo.Create(batch); err != nil {
			return err
		}
		if len(input.Barcodes) > 0 {
			if err := batchRepo.AddBarcodes(batch.ID, input.Barcodes); err != nil {
				return err
			}
		}
		return variantRepo.AdjustStock(variant.ID, input.InitialQuantity)
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// toNativeQuantity resuelve la cantidad a la unidad nativa del lote. Las
// aristas de conversión son datos de referencia, por eso la consulta no
// necesita ir atada a la transacción del ledger.
func (uc *MutationUseCase) toNativeQuantity(ctx context.Context, fromUnitID, nativeUnitID string, qty decimal.Decimal) (decimal.Decimal, error) {
	if fromUnitID == nativeUnitID {
		return qty, nil
	}
	return uc.converter.Convert(ctx, fromUnitID, nativeUnitID, qty)
}
