package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddBatchRequest body para POST /api/batches.
type AddBatchRequest struct {
	VariantID       string          `json:"variant_id"`
	BatchCode       string          `json:"batch_code"`
	ExpiryDate      time.Time       `json:"expiry_date"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	BuyPrice        decimal.Decimal `json:"buy_price"`
	Barcodes        []string        `json:"barcodes,omitempty"`
}

// StockInRequest body para POST /api/batches/:id/stock-in.
// UnitID vacío significa la unidad nativa del lote.
type StockInRequest struct {
	Quantity   decimal.Decimal `json:"quantity"`
	UnitID     string          `json:"unit_id,omitempty"`
	Date       time.Time       `json:"date"`
	SupplierID *string         `json:"supplier_id,omitempty"`
}

// StockOutRequest body para POST /api/batches/:id/stock-out.
type StockOutRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	UnitID   string          `json:"unit_id,omitempty"`
	Date     time.Time       `json:"date"`
	Reason   string          `json:"reason"`
}

// BatchResponse lote creado o consultado.
type BatchResponse struct {
	ID                string          `json:"id"`
	VariantID         string          `json:"variant_id"`
	BatchCode         string          `json:"batch_code"`
	ExpiryDate        time.Time       `json:"expiry_date"`
	InitialQuantity   decimal.Decimal `json:"initial_quantity"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	BuyPrice          decimal.Decimal `json:"buy_price"`
	UnitID            string          `json:"unit_id"`
}

// StockMovementDTO evento de historial (entrada o salida) de un lote.
type StockMovementDTO struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"` // in | out
	BatchID    string          `json:"batch_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitID     string          `json:"unit_id"`
	Date       time.Time       `json:"date"`
	Reason     string          `json:"reason,omitempty"`
	SupplierID string          `json:"supplier_id,omitempty"`
}

// StockInRecordDTO fila del listado paginado de entradas.
type StockInRecordDTO struct {
	ID          string          `json:"id"`
	BatchID     string          `json:"batch_id"`
	BatchCode   string          `json:"batch_code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitName    string          `json:"unit_name"`
	Date        time.Time       `json:"date"`
	SupplierID  string          `json:"supplier_id,omitempty"`
}

// StockInListResponse página del listado de entradas.
type StockInListResponse struct {
	Items []StockInRecordDTO `json:"items"`
	PageResponse
}

// StockOutRowDTO fila de la vista unificada de salidas. Source discrimina
// manual | transaction; TransactionID solo viene en filas de venta.
type StockOutRowDTO struct {
	ID            string          `json:"id"`
	Source        string          `json:"source"`
	BatchID       string          `json:"batch_id"`
	BatchCode     string          `json:"batch_code"`
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitName      string          `json:"unit_name"`
	Date          time.Time       `json:"date"`
	Reason        string          `json:"reason"`
	TransactionID string          `json:"transaction_id,omitempty"`
}

// StockOutListResponse página de la vista unificada de salidas.
type StockOutListResponse struct {
	Items []StockOutRowDTO `json:"items"`
	PageResponse
}
