package app

import (
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/Softx0/web-cuentas-bancarias/internal/config"
	"github.com/Softx0/web-cuentas-bancarias/internal/logging"
	"github.com/Softx0/web-cuentas-bancarias/internal/service"
	"github.com/Softx0/web-cuentas-bancarias/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp initialize config, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, "cuentas.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logPath := cfg.Log.File
	if logPath == "" && cfg.Log.Level != "" {
		appDir, _ := getAppDataDir()
		logPath = filepath.Join(appDir, "cuentas.log")
	}
	logger := logging.New(logPath, cfg.Log.Level)

	seedValue := cfg.Seed.Value
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	seeder := service.NewSeeder(rand.New(rand.NewSource(seedValue)), nil)

	svcCfg := service.Config{
		DefaultCurrency: cfg.Defaults.Currency,
		SimulateLatency: cfg.SimulateLatency,
	}
	svc := service.NewService(dbStore, svcCfg, seeder, logger)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".cuentas"), nil
	}

	return filepath.Join(configDir, "cuentas"), nil
}
