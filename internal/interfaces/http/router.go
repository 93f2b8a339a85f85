package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/application/units"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Mutation  *stock.MutationUseCase
	History   *stock.HistoryUseCase
	OutView   *stock.StockOutViewUseCase
	Units     *units.ConversionUseCase
	Export    *report.ExportUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token; las
// mutaciones de stock quedan además restringidas a admin y bodeguero.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	stockHandler := NewStockHandler(deps.Mutation, deps.History, deps.OutView)
	unitHandler := NewUnitHandler(deps.Units)
	reportHandler := NewReportHandler(deps.Export)

	mutate := RequireRole("admin", "bodeguero")

	// Lotes
	batches := api.Group("/batches")
	batches.Post("/", mutate, stockHandler.AddBatch)
	batches.Post("/:id/stock-in", mutate, stockHandler.AddStockToBatch)
	batches.Post("/:id/stock-out", mutate, stockHandler.RemoveStockFromBatch)
	batches.Get("/:id/history", stockHandler.GetBatchHistory)

	// Variantes
	variants := api.Group("/variants")
	variants.Get("/:id/stock-history", stockHandler.GetVariantStockHistory)
	variants.Get("/:id/stock-history/export", reportHandler.ExportMovements)

	// Listados del ledger
	api.Get("/stock-ins", stockHandler.ListStockIns)
	api.Get("/stock-outs", stockHandler.ListStockOuts)

	// Unidades y conversiones
	unitsGroup := api.Group("/units")
	unitsGroup.Post("/conversions", mutate, unitHandler.CreateConversion)
	unitsGroup.Get("/convert", unitHandler.Convert)
	unitsGroup.Get("/:id/conversions", unitHandler.ListForUnit)
}
