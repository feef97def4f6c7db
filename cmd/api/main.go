package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-lugares/internal/application/auth"
	"github.com/jhoicas/inventario-lugares/internal/application/state"
	appsync "github.com/jhoicas/inventario-lugares/internal/application/sync"
	"github.com/jhoicas/inventario-lugares/internal/domain/places"
	"github.com/jhoicas/inventario-lugares/internal/domain/repository"
	"github.com/jhoicas/inventario-lugares/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-lugares/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-lugares/internal/interfaces/http"
	"github.com/jhoicas/inventario-lugares/pkg/config"
	"github.com/jhoicas/inventario-lugares/pkg/logger"
	"github.com/jhoicas/inventario-lugares/pkg/metrics"
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	known := places.ParseAllowlist(cfg.Places.IDs)
	log.Info().Int("lugares", known.Len()).Msg("allowlist de lugares cargada")

	ctx := context.Background()

	var (
		placeRepo     repository.PlaceRepository
		inventoryRepo repository.InventoryRepository
		userRepo      repository.UserRepository
	)
	switch cfg.DB.Driver {
	case "memory":
		// Pasarela en memoria, solo desarrollo: arranca sembrada con el
		// bosque por defecto y sin PostgreSQL.
		store := memory.NewDocStore(known)
		if err := store.SeedPlaces(places.DefaultForest()); err != nil {
			log.Fatal().Err(err).Msg("sembrar lugares en memoria")
		}
		placeRepo = memory.NewPlaceRepository(store)
		inventoryRepo = memory.NewInventoryRepository(store)
		userRepo = memory.NewUserRepository()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		placeRepo = postgres.NewPlaceRepository(pool)
		inventoryRepo = postgres.NewInventoryRepository(pool, known, log)
		userRepo = postgres.NewUserRepository(pool)
	}

	registry := prometheus.NewRegistry()
	gatewayMetrics, err := metrics.NewGatewayMetrics(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("registrar métricas")
	}

	store := state.NewStore()
	controller := appsync.NewController(store, placeRepo, inventoryRepo, known, log, gatewayMetrics)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Inventario de Lugares API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:      store,
		Controller: controller,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	// Calentamiento de sesión: carga inicial de lugares e inventario.
	// Un fallo no aborta el arranque; el error queda en el almacén hasta
	// la próxima recarga manual (POST /api/sync/refresh).
	warmCtx, cancelWarm := context.WithTimeout(ctx, 15*time.Second)
	if err := controller.FetchPlaces(warmCtx); err != nil {
		log.Error().Err(err).Msg("carga inicial de lugares")
	}
	if err := controller.FetchInventory(warmCtx); err != nil {
		log.Error().Err(err).Msg("carga inicial de inventario")
	}
	cancelWarm()

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
