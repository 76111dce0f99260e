package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/poofware/employee-service/internal/utils"
)

const AppName = "employee-service"

// Storage drivers selectable via STORAGE_DRIVER.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	AppName       string
	AppPort       string
	AppUrl        string
	StorageDriver string
	DBUrl         string
}

// LoadConfig reads the runtime environment. A .env file is optional;
// real deployments inject the variables directly.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found; relying on process environment")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8080"
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}

	storageDriver := os.Getenv("STORAGE_DRIVER")
	if storageDriver == "" {
		storageDriver = StorageDriverMemory
	}
	if storageDriver != StorageDriverMemory && storageDriver != StorageDriverPostgres {
		utils.Logger.Fatalf("Unknown STORAGE_DRIVER %q (want %q or %q)", storageDriver, StorageDriverMemory, StorageDriverPostgres)
	}

	dbURL := os.Getenv("DB_URL")
	if storageDriver == StorageDriverPostgres && dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	utils.Logger.Infof("Loaded config for %s (storage driver: %s)", AppName, storageDriver)

	return &Config{
		AppName:       AppName,
		AppPort:       appPort,
		AppUrl:        appURL,
		StorageDriver: storageDriver,
		DBUrl:         dbURL,
	}
}
