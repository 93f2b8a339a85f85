package dto

import "github.com/shopspring/decimal"

// CreateConversionRequest body para POST /api/units/conversions.
// Significa: 1 from_unit_id = factor to_unit_id.
type CreateConversionRequest struct {
	FromUnitID string          `json:"from_unit_id"`
	ToUnitID   string          `json:"to_unit_id"`
	Factor     decimal.Decimal `json:"factor"`
}

// ConversionResponse arista de conversión.
type ConversionResponse struct {
	ID         string          `json:"id"`
	FromUnitID string          `json:"from_unit_id"`
	ToUnitID   string          `json:"to_unit_id"`
	Factor     decimal.Decimal `json:"factor"`
}

// ConvertResponse resultado de GET /api/units/convert.
type ConvertResponse struct {
	FromUnitID string          `json:"from_unit_id"`
	ToUnitID   string          `json:"to_unit_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Result     decimal.Decimal `json:"result"`
}
