package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit unidad de medida (kg, g, caja, unidad...).
type Unit struct {
	ID           string
	Name         string
	Abbreviation string
	CreatedAt    time.Time
}

// UnitConversion arista dirigida de conversión: 1 FromUnit = Factor ToUnit.
// No se garantiza la arista inversa en almacenamiento; el resolutor la
// sintetiza en lectura dividiendo por Factor. Factor es decimal para que las
// conversiones de ida y vuelta sean exactas hasta la precisión declarada.
type UnitConversion struct {
	ID         string
	FromUnitID string
	ToUnitID   string
	Factor     decimal.Decimal
	CreatedAt  time.Time
}
