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

	_ "github.com/jhoicas/wms-marketplace/docs"
	"github.com/jhoicas/wms-marketplace/internal/application/auth"
	"github.com/jhoicas/wms-marketplace/internal/application/importer"
	"github.com/jhoicas/wms-marketplace/internal/application/inventory"
	"github.com/jhoicas/wms-marketplace/internal/application/seed"
	"github.com/jhoicas/wms-marketplace/internal/application/usecase"
	"github.com/jhoicas/wms-marketplace/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/wms-marketplace/internal/interfaces/http"
	"github.com/jhoicas/wms-marketplace/pkg/config"
	"github.com/jhoicas/wms-marketplace/pkg/logger"
)

// @title        WMS Marketplace API
// @version      1.0
// @description  Inventario de almacén para vendedores de marketplace: pools de
// @description  stock bueno/defectuoso, journal de movimientos e importación Excel.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	sourceRepo := postgres.NewSourceRepository(pool)
	dcRepo := postgres.NewDistributionCenterRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Datos iniciales: admin, fuentes y centros de distribución.
	seeder := seed.NewSeeder(userRepo, sourceRepo, dcRepo, log)
	if err := seeder.Run(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed inicial")
	}

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	productUC := usecase.NewProductUseCase(txRunner, productRepo, stockRepo)
	sourceUC := usecase.NewSourceUseCase(sourceRepo)
	dcUC := usecase.NewDistributionCenterUseCase(dcRepo)
	stockUC := usecase.NewStockUseCase(stockRepo)
	executeMovementUC := inventory.NewExecuteMovementUseCase(txRunner, productRepo, sourceRepo, dcRepo)
	journalUC := inventory.NewJournalUseCase(movementRepo)
	importUC := importer.NewExcelImportUseCase(txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // reportes Excel grandes
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "WMS Marketplace API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		SourceUC:        sourceUC,
		DCUC:            dcUC,
		StockUC:         stockUC,
		ExecuteMovement: executeMovementUC,
		Journal:         journalUC,
		ImportUC:        importUC,
		JWTSecret:       cfg.JWT.Secret,
		Log:             log,
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
