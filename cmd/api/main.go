package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/estoquepro/estoque-api/internal/application/analytics"
	"github.com/estoquepro/estoque-api/internal/application/backup"
	appfinance "github.com/estoquepro/estoque-api/internal/application/finance"
	"github.com/estoquepro/estoque-api/internal/application/inventory"
	"github.com/estoquepro/estoque-api/internal/application/report"
	"github.com/estoquepro/estoque-api/internal/application/usecase"
	"github.com/estoquepro/estoque-api/internal/infrastructure/datastore"
	infrapdf "github.com/estoquepro/estoque-api/internal/infrastructure/pdf"
	"github.com/estoquepro/estoque-api/internal/infrastructure/storage"
	httpRouter "github.com/estoquepro/estoque-api/internal/interfaces/http"
	"github.com/estoquepro/estoque-api/pkg/config"
	"github.com/estoquepro/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer kv.Close()

	store, err := datastore.Open(kv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado")
	}

	productRepo := datastore.NewProductRepository(store)
	movementRepo := datastore.NewMovementRepository(store)
	financialRepo := datastore.NewFinancialRepository(store)

	loc := cfg.App.Location()
	productUC := usecase.NewProductUseCase(productRepo, movementRepo)
	inventoryUC := inventory.NewUseCase(movementRepo)
	financeUC := appfinance.NewUseCase(financialRepo, loc)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, movementRepo)
	backupUC := backup.NewUseCase(store, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewUseCase(productRepo, financialRepo, pdfGenerator, cfg.App.Name, loc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		FinanceUC:   financeUC,
		DashboardUC: dashboardUC,
		BackupUC:    backupUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage instancia el driver de almacenamiento configurado.
func openStorage(ctx context.Context, cfg config.StorageConfig) (storage.KV, error) {
	switch cfg.Driver {
	case config.StorageRedis:
		return storage.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.StoragePostgres:
		return storage.NewPostgresStore(ctx, cfg.DatabaseURL)
	case config.StorageMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.Path)
	}
}
