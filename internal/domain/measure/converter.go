package measure

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// Aritmética de conversión de unidades (servicio de dominio).
// Una arista (from → to, factor) significa 1 from = factor to.

// ApplyDirect aplica una arista directa: qty × factor.
func ApplyDirect(qty, factor decimal.Decimal) decimal.Decimal {
	return qty.Mul(factor)
}

// ApplyReverse sintetiza la arista inversa: qty ÷ factor. División y
// multiplicación usan el mismo tipo decimal para que ida y vuelta sea exacta
// hasta la precisión declarada del tipo.
func ApplyReverse(qty, factor decimal.Decimal) (decimal.Decimal, error) {
	if factor.IsZero() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return qty.Div(factor), nil
}
