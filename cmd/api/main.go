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
	"github.com/jhoicas/stockledger-api/internal/application/analytics"
	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/application/usecase"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
	"github.com/jhoicas/stockledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockledger-api/internal/interfaces/http"
	"github.com/jhoicas/stockledger-api/internal/scheduler"
	"github.com/jhoicas/stockledger-api/pkg/config"
	"github.com/jhoicas/stockledger-api/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Selección del driver de persistencia. Ambos drivers implementan los
	// mismos puertos, así que el resto del cableado no cambia.
	var (
		itemRepo      repository.ItemRepository
		movementRepo  repository.MovementRepository
		supplierRepo  repository.SupplierRepository
		warehouseRepo repository.WarehouseRepository
		txRunner      inventory.TxRunner
	)
	switch cfg.Store.Driver {
	case "memory":
		store := memory.NewStore()
		itemRepo = memory.NewItemRepository(store)
		movementRepo = memory.NewMovementRepository(store)
		supplierRepo = memory.NewSupplierRepository(store)
		warehouseRepo = memory.NewWarehouseRepository(store)
		txRunner = memory.NewTxRunner(store)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		itemRepo = postgres.NewItemRepository(pool)
		movementRepo = postgres.NewMovementRepository(pool)
		supplierRepo = postgres.NewSupplierRepository(pool)
		warehouseRepo = postgres.NewWarehouseRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	itemUC := usecase.NewItemUseCase(itemRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	movementQueryUC := usecase.NewMovementQueryUseCase(movementRepo)
	applyMovementUC := inventory.NewApplyMovementUseCase(txRunner, itemRepo)
	aggregatorUC := analytics.NewAggregatorUseCase(itemRepo, movementRepo, supplierRepo, warehouseRepo)

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
		Title:    "StockLedger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:        itemUC,
		SupplierUC:    supplierUC,
		WarehouseUC:   warehouseUC,
		MovementQuery: movementQueryUC,
		ApplyMovement: applyMovementUC,
		Aggregator:    aggregatorUC,
	})

	sched := scheduler.New(cfg.Jobs.LowStockCron, itemRepo, log)
	sched.Start()

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

	sched.Stop()

	log.Info().Msg("aplicación detenida")
}
