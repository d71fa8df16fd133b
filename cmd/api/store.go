package main

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/repository/memory"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/config"
)

// backend is the persistence backend selected by database.driver
type backend struct {
	UnitOfWork persistence.UnitOfWork
	close      func() error
}

// Close releases the backend's connections
func (s *backend) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStore connects to postgres, or builds an in-memory store when the memory driver is selected
func openStore(ctx context.Context, cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (*backend, error) {
	if cfg.Database.IsMemory() {
		appLogger.Warn("Using in-memory store; data is lost on restart", nil)
		return &backend{UnitOfWork: memory.NewUnitOfWork(memory.NewStore(appLogger))}, nil
	}

	dbConfig := database.NewConfig(cfg.Database, cfg.Logger.Level)
	if err := dbConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, err
	}

	if dbConfig.AutoMigrate {
		migrateCtx, cancel := dbManager.WithTimeout(ctx)
		defer cancel()

		if err := dbManager.SchemaManager().EnsureSchema(migrateCtx); err != nil {
			_ = dbManager.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return &backend{
		UnitOfWork: dbManager.CreateUnitOfWork(),
		close:      dbManager.Close,
	}, nil
}
