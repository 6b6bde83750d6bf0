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

	"github.com/jhoicas/Graphi-api/internal/application/currency"
	"github.com/jhoicas/Graphi-api/internal/application/sales"
	"github.com/jhoicas/Graphi-api/internal/application/usecase"
	"github.com/jhoicas/Graphi-api/internal/infrastructure/exchange"
	"github.com/jhoicas/Graphi-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Graphi-api/internal/infrastructure/rediscache"
	httpRouter "github.com/jhoicas/Graphi-api/internal/interfaces/http"
	"github.com/jhoicas/Graphi-api/internal/scheduler"
	"github.com/jhoicas/Graphi-api/pkg/config"
	"github.com/jhoicas/Graphi-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	storeRepo := postgres.NewStoreRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	rateRepo := postgres.NewExchangeRateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Redis es opcional: sin REDIS_ADDR las tasas se leen directo de PostgreSQL.
	var rateCache currency.RateCache
	redisClient, err := rediscache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis no disponible, caché de tasas desactivada")
	} else if redisClient != nil {
		defer redisClient.Close()
		rateCache = rediscache.NewRateCache(redisClient, cfg.Rates.CacheTTL)
	}

	var provider currency.RateProvider
	if cfg.Rates.ProviderURL != "" {
		provider = exchange.NewProvider(cfg.Rates)
	}

	converter := currency.NewConverter(cfg.Rates.BaseCurrency, rateRepo, rateCache, log)
	ratesUC := currency.NewRefreshUseCase(cfg.Rates.BaseCurrency, provider, rateRepo, rateCache, log)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, productRepo, converter, log)
	storeUC := usecase.NewStoreUseCase(storeRepo, cfg.App.DefaultCurrency)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, storeRepo)
	productUC := usecase.NewProductUseCase(productRepo, catalogRepo, storeRepo, txRunner, cfg.App.DefaultCurrency)

	var sched *scheduler.Scheduler
	if provider != nil {
		sched = scheduler.New(cfg.Rates.RefreshCron, ratesUC, log)
		if err := sched.Start(); err != nil {
			log.Fatal().Err(err).Msg("scheduler de tasas")
		}
	}

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
		Title:    "Graphi API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:   storeUC,
		CatalogUC: catalogUC,
		ProductUC: productUC,
		SaleUC:    saleUC,
		RatesUC:   ratesUC,
		Stores:    storeRepo,
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

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
