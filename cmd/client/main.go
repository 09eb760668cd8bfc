// client consume la API del dashboard como lo haría la interfaz: carga
// los settings (caché local primero, API después), imprime un resumen en
// el idioma activo y queda observando cambios hasta recibir SIGINT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/dashboard-api/internal/client"
	"github.com/jhoicas/dashboard-api/internal/i18n"
	"github.com/jhoicas/dashboard-api/pkg/config"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	sync := client.New(client.Options{
		BaseURL:   cfg.Client.BaseURL,
		CacheFile: cfg.Client.CacheFile,
		Log:       log,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sync.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("sincronizar settings")
	}

	current := sync.Settings()
	log.Info().
		Str("state", string(sync.State())).
		Str("language", current.Language).
		Str("currency", current.Currency).
		Str("theme", current.Theme).
		Msg(sync.T("settings.preferences"))
	log.Info().
		Str("products", sync.CountLabel(i18n.CountProducts, 6)).
		Str("users", sync.CountLabel(i18n.CountUsers, 5)).
		Msg(sync.T("products.title"))

	go func() {
		if err := sync.Watch(ctx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("observador de settings finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sync.Stop()
	log.Info().Msg("cliente detenido")
}
