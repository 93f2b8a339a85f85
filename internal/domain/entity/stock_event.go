package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fuentes de una fila en la vista unificada de salidas.
const (
	StockOutSourceManual      = "manual"
	StockOutSourceTransaction = "transaction"
)

// ReasonTransactionSale motivo fijo de las salidas derivadas de ventas.
const ReasonTransactionSale = "venta"

// StockIn evento inmutable de entrada de stock a un lote. Solo lo crea el
// motor de mutación; nunca se actualiza ni se borra.
type StockIn struct {
	ID         string
	BatchID    string
	Quantity   decimal.Decimal
	UnitID     string
	Date       time.Time
	SupplierID *string
	CreatedAt  time.Time
}

// StockOut evento inmutable de salida manual de stock de un lote, con motivo
// libre (merma, corrección, etc.). Mismo contrato de inmutabilidad que StockIn.
type StockOut struct {
	ID        string
	BatchID   string
	Quantity  decimal.Decimal
	UnitID    string
	Date      time.Time
	Reason    string
	CreatedAt time.Time
}

// StockInRecord fila de listado de entradas con referencias desnormalizadas.
type StockInRecord struct {
	StockIn
	BatchCode   string
	ProductName string
	UnitName    string
}

// StockOutRow fila de la vista unificada de salidas. Source discrimina el
// origen: manual (tabla stock_outs) o transaction (línea de venta completada
// sintetizada con la misma forma). En filas de venta el ID lleva el prefijo
// "trx-" para no colisionar con los IDs de filas manuales, Reason es el tag
// fijo ReasonTransactionSale y TransactionID apunta a la venta que la causó.
type StockOutRow struct {
	ID            string
	Source        string
	BatchID       string
	BatchCode     string
	ProductName   string
	Quantity      decimal.Decimal
	UnitName      string
	Date          time.Time
	Reason        string
	TransactionID string
}
