package entity

import "time"

// Supplier proveedor registrado. Referencia opcional en entradas de stock.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
}
