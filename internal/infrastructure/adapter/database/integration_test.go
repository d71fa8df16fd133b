package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/config"
)

// newIntegrationManager connects to the database named by MF_TEST_DB_* variables.
// The test is skipped when MF_TEST_DB_HOST is unset.
func newIntegrationManager(t *testing.T) *Manager {
	t.Helper()

	host := os.Getenv("MF_TEST_DB_HOST")
	if host == "" {
		t.Skip("MF_TEST_DB_HOST not set, skipping postgres integration test")
	}

	cfg := &Config{
		Driver:        config.DriverPostgres,
		Host:          host,
		Port:          ParsePort(getEnvOrDefault("MF_TEST_DB_PORT", "5432")),
		Username:      getEnvOrDefault("MF_TEST_DB_USERNAME", "postgres"),
		Password:      getEnvOrDefault("MF_TEST_DB_PASSWORD", "postgres"),
		Database:      getEnvOrDefault("MF_TEST_DB_DATABASE", "money_flow_test"),
		SSLMode:       getEnvOrDefault("MF_TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:  5,
		MaxIdleConns:  2,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 0,
	}
	require.NoError(t, cfg.Validate())

	tp, err := timeprovider.NewRealTimeProviderForZone(timeprovider.DefaultTimezone)
	require.NoError(t, err)

	manager := NewManager(cfg, logger.NewNoopLogger(), tp)
	_, err = manager.Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: failed to close test database connection: %v", err)
		}
	})

	require.NoError(t, manager.DB().Exec(`DROP TABLE IF EXISTS money_flows`).Error)
	require.NoError(t, manager.SchemaManager().EnsureSchema(context.Background()))
	return manager
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func TestIntegration_SchemaIsIdempotent(t *testing.T) {
	manager := newIntegrationManager(t)

	assert.NoError(t, manager.SchemaManager().EnsureSchema(context.Background()))
	assert.True(t, manager.DB().Migrator().HasIndex("money_flows", "ix_money_flows_occurred_kind"))
}

func TestIntegration_UnitOfWork(t *testing.T) {
	manager := newIntegrationManager(t)
	uow := manager.CreateUnitOfWork()
	ctx := context.Background()
	occurred := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Committed insert is visible", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		mf := &entity.MoneyFlow{Title: "給料", Amount: 250000, OccurredDate: occurred, Kind: entity.KindIncome}
		require.NoError(t, uow.MoneyFlowRepository(txCtx).Insert(txCtx, mf))
		require.NoError(t, uow.Commit(txCtx))
		assert.NoError(t, uow.Rollback(txCtx))

		stored, found, err := uow.MoneyFlowRepository(ctx).FindByID(ctx, mf.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "給料", stored.Title)
		assert.Equal(t, entity.KindIncome, stored.Kind)
	})

	t.Run("Rolled back insert is discarded", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		mf := &entity.MoneyFlow{Title: "Lunch", Amount: 900, OccurredDate: occurred, Kind: entity.KindExpense}
		require.NoError(t, uow.MoneyFlowRepository(txCtx).Insert(txCtx, mf))
		require.NoError(t, uow.Rollback(txCtx))

		_, found, err := uow.MoneyFlowRepository(ctx).FindByID(ctx, mf.ID)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Update refreshes updated_at after a reload", func(t *testing.T) {
		tp, err := timeprovider.NewRealTimeProviderForZone(timeprovider.DefaultTimezone)
		require.NoError(t, err)

		mf, err := entity.NewMoneyFlow("rice", 4200, occurred, entity.KindExpense, tp)
		require.NoError(t, err)
		require.NoError(t, uow.MoneyFlowRepository(ctx).Insert(ctx, mf))

		stored, found, err := uow.MoneyFlowRepository(ctx).FindByID(ctx, mf.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.WithinDuration(t, mf.CreatedAt, stored.CreatedAt, time.Millisecond)

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, stored.Replace("rice", 4300, occurred, entity.KindExpense, tp))
		require.NoError(t, uow.MoneyFlowRepository(ctx).Replace(ctx, stored))

		reloaded, found, err := uow.MoneyFlowRepository(ctx).FindByID(ctx, mf.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, reloaded.UpdatedAt.After(reloaded.CreatedAt), "updated_at was not refreshed: created_at=%s updated_at=%s", reloaded.CreatedAt, reloaded.UpdatedAt)
	})

	t.Run("Unknown IDs are not found", func(t *testing.T) {
		repo := uow.MoneyFlowRepository(ctx)

		assert.ErrorIs(t, repo.Delete(ctx, 999999), errs.ErrMoneyFlowNotFound)
		assert.ErrorIs(t, repo.Replace(ctx, &entity.MoneyFlow{ID: 999999, Title: "x", OccurredDate: occurred, Kind: entity.KindExpense}), errs.ErrMoneyFlowNotFound)
	})

	t.Run("Unknown enum label is a constraint violation", func(t *testing.T) {
		repo := uow.MoneyFlowRepository(ctx)

		err := repo.Insert(ctx, &entity.MoneyFlow{Title: "Odd", OccurredDate: occurred, Kind: entity.MoneyFlowKind("refund")})

		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}
