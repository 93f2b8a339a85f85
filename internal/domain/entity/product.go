package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo de la tienda. No lleva contador de stock
// propio: el agregado canónico vive en cada variante y el total por producto
// se calcula en lectura sumando sus variantes.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductVariant variante vendible de un producto (presentación, tamaño, etc.).
// TotalStock es el contador agregado de stock disponible: solo lo ajusta el
// motor de mutación, en la misma transacción que el lote y el evento del
// ledger. UnitID es la unidad nativa en la que se llevan sus lotes.
type ProductVariant struct {
	ID         string
	ProductID  string
	Name       string
	SKU        string
	UnitID     string
	TotalStock decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
