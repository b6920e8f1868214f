package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/estoquepro/estoque-api/internal/application/analytics"
	"github.com/estoquepro/estoque-api/internal/application/backup"
	"github.com/estoquepro/estoque-api/internal/application/finance"
	"github.com/estoquepro/estoque-api/internal/application/inventory"
	"github.com/estoquepro/estoque-api/internal/application/report"
	"github.com/estoquepro/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	InventoryUC *inventory.UseCase
	FinanceUC   *finance.UseCase
	DashboardUC *appanalytics.DashboardUseCase
	BackupUC    *backup.UseCase
	ReportUC    *report.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movements (sin DELETE individual: solo la cascada por producto)
	movements := api.Group("/movements")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	movements.Post("/", inventoryHandler.Register)
	movements.Get("/", inventoryHandler.List)

	// Financials
	financials := api.Group("/financials")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financials.Get("/summary", financeHandler.Summary)
	financials.Post("/", financeHandler.Create)
	financials.Get("/", financeHandler.List)
	financials.Patch("/:id/toggle", financeHandler.Toggle)
	financials.Delete("/:id", financeHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Backup
	backupGroup := api.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Post("/import", backupHandler.Import)
	backupGroup.Post("/clear", backupHandler.Clear)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/inventory.pdf", reportHandler.InventoryPDF)
}
