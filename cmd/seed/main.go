// seed restaura el archivo de datos al dataset semilla.
//
// Uso: go run ./cmd/seed [ruta/dashboard.json]
// Por defecto usa la ruta configurada (DASHBOARD_DATA_FILE o
// .data/dashboard.json). Sobrescribe el archivo existente.
package main

import (
	"os"

	"github.com/jhoicas/dashboard-api/internal/infrastructure/filestore"
	"github.com/jhoicas/dashboard-api/pkg/bus"
	"github.com/jhoicas/dashboard-api/pkg/config"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	path := cfg.Store.DataFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store := filestore.New(path, log, bus.New())
	if err := store.Reset(); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("restaurar el dataset semilla")
	}
	log.Info().Str("path", path).Msg("dataset semilla restaurado")
}
