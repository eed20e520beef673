package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventory-admin/internal/application/analytics"
	"github.com/jhoicas/inventory-admin/internal/application/auth"
	"github.com/jhoicas/inventory-admin/internal/application/inventory"
	infrapdf "github.com/jhoicas/inventory-admin/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/inventory-admin/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/inventory-admin/internal/interfaces/http"
	"github.com/jhoicas/inventory-admin/pkg/config"
	"github.com/jhoicas/inventory-admin/pkg/logger"
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

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	creds, err := auth.NewDemoCredentials()
	if err != nil {
		log.Fatal().Err(err).Msg("credenciales de demostración")
	}
	authUC := auth.NewAuthUseCase(creds, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	seed := inventory.EmptySnapshot()
	if cfg.Inventory.Seed {
		seed = inventory.DemoSnapshot()
	}
	store := inventory.NewInventoryService(inventory.UUIDGenerator{}, time.Now, seed)
	log.Info().
		Bool("seed", cfg.Inventory.Seed).
		Int("products", len(store.Products())).
		Msg("inventario en memoria listo")

	dashboardUC := analytics.NewDashboardUseCase(store)
	reportUC := analytics.NewReportUseCase(store, time.Now,
		infraxlsx.NewReportRenderer(),
		infrapdf.NewReportRenderer(""),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestMiddleware(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Inventory:   store,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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
