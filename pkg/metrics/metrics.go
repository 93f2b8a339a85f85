package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del ledger expuestos en /metrics.
var (
	// StockMovements movimientos de stock registrados con éxito, por tipo
	// (in | out).
	StockMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_stock_movements_total",
		Help: "Movimientos de stock registrados, por tipo.",
	}, []string{"type"})

	// BatchesCreated lotes creados con éxito.
	BatchesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_batches_created_total",
		Help: "Lotes de producto creados.",
	})

	// InsufficientStock salidas rechazadas por stock insuficiente.
	InsufficientStock = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_insufficient_stock_total",
		Help: "Salidas de stock rechazadas por cantidad insuficiente.",
	})
)
