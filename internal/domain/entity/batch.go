package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductBatch lote de una variante recibido en una fecha concreta.
// InitialQuantity es inmutable (se fija al crear el lote). RemainingQuantity
// solo cambia vía eventos del ledger: el ledger garantiza que nunca baja de
// cero en cada salida, pero no acota el tope — una entrada externa puede
// superar la cantidad inicial y eso es comportamiento aceptado.
// El ledger nunca borra lotes; un lote en cero queda agotado, no eliminado.
type ProductBatch struct {
	ID                string
	VariantID         string
	BatchCode         string
	ExpiryDate        time.Time
	InitialQuantity   decimal.Decimal
	RemainingQuantity decimal.Decimal
	BuyPrice          decimal.Decimal
	UnitID            string
	Expired           bool // lo marca un job externo; el ledger no lo toca
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BatchBarcode código de barras asociado a un lote concreto.
type BatchBarcode struct {
	ID      string
	BatchID string
	Code    string
}
