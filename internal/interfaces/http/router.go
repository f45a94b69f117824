package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockledger-api/internal/application/analytics"
	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *usecase.ItemUseCase
	SupplierUC    *usecase.SupplierUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	MovementQuery *usecase.MovementQueryUseCase
	ApplyMovement *inventory.ApplyMovementUseCase
	Aggregator    *analytics.AggregatorUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// SKUs (registro de items)
	skus := api.Group("/skus")
	itemHandler := NewItemHandler(deps.ItemUC)
	skus.Post("/", itemHandler.Register)
	skus.Get("/", itemHandler.List)
	skus.Get("/:sku", itemHandler.Find)
	skus.Put("/:sku", itemHandler.Update)
	skus.Patch("/:sku/status", itemHandler.SetStatus)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Transactions (movimientos de inventario): el POST es el único
	// camino de escritura de saldos de toda la API.
	transactions := api.Group("/transactions")
	movementHandler := NewMovementHandler(deps.ApplyMovement, deps.MovementQuery)
	transactions.Post("/", movementHandler.Apply)
	transactions.Get("/", movementHandler.List)

	// Dashboard y reportes (solo lectura)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Aggregator)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/transactions-by-type", dashboardHandler.ByType)
	dashboard.Get("/growth", dashboardHandler.Growth)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Aggregator)
	reports.Get("/stock-aging", reportHandler.StockAging)
	reports.Get("/sales-dispatch", reportHandler.SalesDispatch)
	reports.Get("/sales-return", reportHandler.SalesReturn)
}
