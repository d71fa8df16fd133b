package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/repository"
	mockcore "github.com/amirhossein-jamali/money-flow-tracker/mocks/port/core"
)

// newDryRunDB opens a postgres dialector that builds SQL without connecting
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=test dbname=money_flow_test sslmode=disable connect_timeout=1",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	require.NoError(t, err)
	return db
}

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	t.Helper()

	coreLogger := mockcore.NewMockLogger(t)
	coreLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	coreLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return coreLogger
}

func TestUnitOfWork_WithoutTransaction(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(newDryRunDB(t), newQuietLogger(t))

	t.Run("Commit needs a transaction", func(t *testing.T) {
		assert.ErrorIs(t, uow.Commit(ctx), ErrNoTransaction)
	})

	t.Run("Rollback without a transaction is a no-op", func(t *testing.T) {
		assert.NoError(t, uow.Rollback(ctx))
	})

	t.Run("Repository falls back to the pool", func(t *testing.T) {
		repo := uow.MoneyFlowRepository(ctx)

		assert.IsType(t, &repository.MoneyFlowRepository{}, repo)
	})
}

func TestUnitOfWork_Begin(t *testing.T) {
	uow := NewUnitOfWork(newDryRunDB(t), newQuietLogger(t))

	t.Run("Canceled context fails before dialing", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		txCtx, err := uow.Begin(canceled)

		assert.ErrorIs(t, err, context.Canceled)
		// the returned context carries no transaction
		assert.ErrorIs(t, uow.Commit(txCtx), ErrNoTransaction)
	})
}

func TestUnitOfWork_DBFromContext(t *testing.T) {
	db := newDryRunDB(t)
	uow := NewUnitOfWork(db, newQuietLogger(t))
	tx := db.Session(&gorm.Session{})

	ctx := context.WithValue(context.Background(), txKey, tx)

	assert.Same(t, tx, uow.dbFromContext(ctx))
	assert.NotSame(t, tx, uow.dbFromContext(context.Background()))
}
