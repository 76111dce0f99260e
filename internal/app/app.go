package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/poofware/employee-service/internal/config"
	"github.com/poofware/employee-service/internal/repositories"
	"github.com/poofware/employee-service/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App owns the process-level resources: config, the storage backing the
// employee repository, and the repository itself. DB is nil when the
// memory driver is selected.
type App struct {
	Config       *config.Config
	DB           *pgxpool.Pool
	EmployeeRepo repositories.EmployeeRepository
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if cfg.StorageDriver == config.StorageDriverMemory {
		app.EmployeeRepo = repositories.NewEmployeeMemoryRepository()
		utils.Logger.Info("Using in-memory employee store")
		return app, nil
	}

	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = pgxpool.Connect(ctx, cfg.DBUrl)
		cancel()
		if err == nil {
			utils.Logger.Infof("Connected to DB on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	if err := repositories.Migrate(context.Background(), dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	app.DB = dbPool
	app.EmployeeRepo = repositories.NewEmployeeRepository(dbPool)
	return app, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("DB connection closed")
	}
}
