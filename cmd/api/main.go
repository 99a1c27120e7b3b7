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

	"github.com/jdrosales/autopartes-api/internal/application/auth"
	"github.com/jdrosales/autopartes-api/internal/application/catalog"
	"github.com/jdrosales/autopartes-api/internal/application/inventory"
	"github.com/jdrosales/autopartes-api/internal/application/labels"
	"github.com/jdrosales/autopartes-api/internal/application/purchases"
	infrapdf "github.com/jdrosales/autopartes-api/internal/infrastructure/pdf"
	"github.com/jdrosales/autopartes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jdrosales/autopartes-api/internal/interfaces/http"
	"github.com/jdrosales/autopartes-api/pkg/config"
	"github.com/jdrosales/autopartes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	sedeRepo := postgres.NewSedeRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	kardexRepo := postgres.NewKardexRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)

	inventoryTx := postgres.NewInventoryTxRunner(pool)
	purchaseTx := postgres.NewPurchaseTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT)
	sedeUC := catalog.NewSedeUseCase(sedeRepo)
	supplierUC := catalog.NewSupplierUseCase(supplierRepo)
	taxonomyUC := catalog.NewTaxonomyUseCase(categoryRepo, brandRepo)
	productUC := catalog.NewProductUseCase(productRepo, stockRepo)
	stockQueryUC := inventory.NewStockQueryUseCase(stockRepo)
	stockUC := inventory.NewStockUseCase(inventoryTx, productRepo, sedeRepo)
	kardexUC := inventory.NewKardexUseCase(kardexRepo, infrapdf.NewKardexGenerator())
	purchaseUC := purchases.NewPurchaseUseCase(purchaseTx, purchaseRepo, supplierRepo, sedeRepo, productRepo)
	labelUC := labels.NewLabelUseCase(productRepo, purchaseRepo, infrapdf.NewLabelGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Autopartes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		SedeUC:     sedeUC,
		SupplierUC: supplierUC,
		TaxonomyUC: taxonomyUC,
		ProductUC:  productUC,
		StockQuery: stockQueryUC,
		StockUC:    stockUC,
		KardexUC:   kardexUC,
		PurchaseUC: purchaseUC,
		LabelUC:    labelUC,
		JWTSecret:  cfg.JWT.Secret,
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
