package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"bookwarehouse/internal/config"
	"bookwarehouse/internal/console"
	"bookwarehouse/internal/inventory"
	"bookwarehouse/internal/logging"
)

func main() {
	var (
		configFile = flag.String("config", "", "YAML config file (default: warehouse.yaml when present)")
		dataPath   = flag.String("data", "", "Inventory file, overrides storage.path")
		driver     = flag.String("driver", "", "Storage driver: json or sqlite, overrides storage.driver")
	)
	flag.Parse()

	cfg, err := loadConfig(*configFile, *dataPath, *driver)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("warehouse: %v", err)
	}
}

func loadConfig(configFile, dataPath, driver string) (*config.Config, error) {
	cfg, err := config.Load(config.Options{ConfigFile: configFile})
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.Storage.Path = dataPath
	}
	if driver != "" {
		cfg.Storage.Driver = driver
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.ForSession(logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format))
	logger.Debug("configuration loaded", "config", cfg.String())

	repo, closer, err := inventory.NewRepository(cfg.Storage.Driver, cfg.Storage.Path, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closer.Close()

	store, err := inventory.Open(ctx, repo, logger)
	if err != nil {
		return err
	}

	session := console.NewSession(store, os.Stdin, os.Stdout, logger, console.Options{
		Color: cfg.UI.Color,
		Clear: cfg.UI.Clear,
	})
	return session.Run(ctx)
}
