package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/usecase/moneyflow"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error("Server terminated with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// run wires the application and serves HTTP until ctx is canceled
func run(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) error {
	tp, err := timeProvider.NewRealTimeProviderForZone(cfg.App.Timezone)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg, appLogger, tp)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Error("Failed to close store", map[string]any{"error": err.Error()})
		}
	}()

	moneyFlowService := moneyflow.NewMoneyFlowService(store.UnitOfWork, tp, appLogger)

	router := routes.NewRouter(
		appLogger,
		tp,
		cfg.CORS,
		handler.NewMoneyFlowHandler(moneyFlowService, tp, appLogger),
		handler.NewHealthHandler(),
	)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		// nothing to connect to
	case config.DriverPostgres:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or MF_DB_HOST environment variable)")
		}
		if cfg.Database.Port == "" {
			missingConfigs = append(missingConfigs, "database.port (or MF_DB_PORT environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or MF_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or MF_DB_NAME environment variable)")
		}
		if cfg.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	case "":
		missingConfigs = append(missingConfigs, "database.driver")
	default:
		return fmt.Errorf("invalid database driver: %s, must be one of: %s or %s",
			cfg.Database.Driver, config.DriverPostgres, config.DriverMemory)
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		for _, warning := range productionWarnings(cfg) {
			log.Printf("Warning: potential security issue in production configuration: %s", warning)
		}
	}

	return nil
}

// productionWarnings lists settings that are legal but unwise in production
func productionWarnings(cfg *config.Config) []string {
	var warnings []string

	if cfg.Database.Driver == config.DriverMemory {
		warnings = append(warnings, "database.driver is memory; data is lost on restart")
	}

	switch strings.ToLower(cfg.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		if cfg.Database.Driver == config.DriverPostgres {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
	}

	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}

	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}

	return warnings
}
