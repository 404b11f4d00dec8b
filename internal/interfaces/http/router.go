package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-marketplace/internal/application/auth"
	"github.com/jhoicas/wms-marketplace/internal/application/importer"
	"github.com/jhoicas/wms-marketplace/internal/application/inventory"
	"github.com/jhoicas/wms-marketplace/internal/application/usecase"
	"github.com/jhoicas/wms-marketplace/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	ProductUC       *usecase.ProductUseCase
	SourceUC        *usecase.SourceUseCase
	DCUC            *usecase.DistributionCenterUseCase
	StockUC         *usecase.StockUseCase
	ExecuteMovement *inventory.ExecuteMovementUseCase
	Journal         *inventory.JournalUseCase
	ImportUC        *importer.ExcelImportUseCase
	JWTSecret       string
	Log             *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público, el resto requiere Bearer Token.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock: movimientos, journal y resumen (protegido)
	stock := protected.Group("/stock")
	movementHandler := NewMovementHandler(deps.ExecuteMovement, deps.Journal)
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/movements", movementHandler.Create)
	stock.Get("/movements", movementHandler.List)
	stock.Get("/summary", stockHandler.Summary)

	// Importación Excel (protegido)
	importHandler := NewImportHandler(deps.ImportUC, deps.Log)
	protected.Post("/import/excel", importHandler.Import)

	// Sources (protegido)
	sources := protected.Group("/sources")
	sourceHandler := NewSourceHandler(deps.SourceUC)
	sources.Post("/", sourceHandler.Create)
	sources.Get("/", sourceHandler.List)
	sources.Get("/:id", sourceHandler.GetByID)
	sources.Put("/:id", sourceHandler.Update)
	sources.Delete("/:id", sourceHandler.Delete)

	// Distribution centers (protegido)
	dcs := protected.Group("/distribution-centers")
	dcHandler := NewDistributionCenterHandler(deps.DCUC)
	dcs.Post("/", dcHandler.Create)
	dcs.Get("/", dcHandler.List)
	dcs.Get("/:id", dcHandler.GetByID)
	dcs.Put("/:id", dcHandler.Update)
	dcs.Delete("/:id", dcHandler.Delete)
}
