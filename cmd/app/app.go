package main

import (
	"fmt"
	"os"

	"github.com/DRSN-tech/catalog-admin/internal/app"
	config "github.com/DRSN-tech/catalog-admin/internal/cfg"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
)

//	@title			Catalog Admin API
//	@version		1.0
//	@description	Администрирование категорий каталога.
//	@BasePath		/api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewZapLogger(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Sync()
		os.Exit(1)
	}
}
