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

	"github.com/jhoicas/dashboard-api/internal/application/usecase"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/filestore"
	httpRouter "github.com/jhoicas/dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/dashboard-api/pkg/bus"
	"github.com/jhoicas/dashboard-api/pkg/config"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// @title        Dashboard Pro API
// @version      1.0
// @description  API del panel de administración: catálogo de productos,
// @description  usuarios, campañas y configuración con localización.
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

	eventBus := bus.New()
	defer eventBus.Close()

	store := filestore.New(cfg.Store.DataFile, log, eventBus)
	if err := store.Ensure(); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.DataFile).Msg("preparar el almacén de datos")
	}

	productUC := usecase.NewProductUseCase(store)
	userUC := usecase.NewUserUseCase(store)
	settingsUC := usecase.NewSettingsUseCase(store)
	campaignUC := usecase.NewCampaignUseCase()
	dashboardUC := usecase.NewDashboardUseCase(store)

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
		Title:    "Dashboard Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		UserUC:      userUC,
		SettingsUC:  settingsUC,
		CampaignUC:  campaignUC,
		DashboardUC: dashboardUC,
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
