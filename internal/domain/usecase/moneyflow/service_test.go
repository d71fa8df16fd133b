package moneyflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/money-flow-tracker/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/money-flow-tracker/mocks/port/persistence"
)

type txKey struct{}

type serviceFixture struct {
	uow     *mockpersistence.MockUnitOfWork
	repo    *mockpersistence.MockMoneyFlowRepository
	clock   *mockcore.MockTimeProvider
	logger  *mockcore.MockLogger
	service *Service
	txCtx   context.Context
}

func newServiceFixture(t *testing.T, now time.Time) *serviceFixture {
	f := &serviceFixture{
		uow:    mockpersistence.NewMockUnitOfWork(t),
		repo:   mockpersistence.NewMockMoneyFlowRepository(t),
		clock:  mockcore.NewMockTimeProvider(t),
		logger: mockcore.NewMockLogger(t),
		txCtx:  context.WithValue(context.Background(), txKey{}, "tx"),
	}
	f.clock.EXPECT().Now().Return(now).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.uow.EXPECT().MoneyFlowRepository(mock.Anything).Return(f.repo).Maybe()
	f.service = NewMoneyFlowService(f.uow, f.clock, f.logger)
	return f
}

// expectBegin makes the unit of work hand out the fixture transaction context
func (f *serviceFixture) expectBegin() {
	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	occurred := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Stores the money flow and returns the generated ID", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().Insert(f.txCtx, mock.MatchedBy(func(mf *entity.MoneyFlow) bool {
			return mf.Title == "Salary" && mf.Amount == 250000 && mf.Kind == entity.KindIncome
		})).RunAndReturn(func(_ context.Context, mf *entity.MoneyFlow) error {
			mf.ID = 1
			return nil
		}).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

		mf, err := f.service.Create(ctx, usecase.CreateMoneyFlowCommand{
			Title:        "Salary",
			Amount:       250000,
			OccurredDate: occurred,
			Kind:         entity.KindIncome,
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(1), mf.ID)
		assert.Equal(t, now, mf.CreatedAt)
		assert.Equal(t, now, mf.UpdatedAt)
	})

	t.Run("Omitted kind defaults to expense", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().Insert(f.txCtx, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

		mf, err := f.service.Create(ctx, usecase.CreateMoneyFlowCommand{
			Title:        "Lunch",
			Amount:       1200,
			OccurredDate: occurred,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.KindExpense, mf.Kind)
	})

	t.Run("Invalid input never opens a unit of work", func(t *testing.T) {
		f := newServiceFixture(t, now)

		mf, err := f.service.Create(ctx, usecase.CreateMoneyFlowCommand{
			Title:        "Lunch",
			Amount:       -1,
			OccurredDate: occurred,
		})

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Nil(t, mf)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Insert failure rolls back", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().Insert(f.txCtx, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		mf, err := f.service.Create(ctx, usecase.CreateMoneyFlowCommand{
			Title:        "Lunch",
			Amount:       1200,
			OccurredDate: occurred,
		})

		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		assert.Nil(t, mf)
	})

	t.Run("Commit failure rolls back and is reported", func(t *testing.T) {
		f := newServiceFixture(t, now)
		commitErr := errors.New("connection reset")
		f.expectBegin()
		f.repo.EXPECT().Insert(f.txCtx, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(commitErr).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		mf, err := f.service.Create(ctx, usecase.CreateMoneyFlowCommand{
			Title:        "Lunch",
			Amount:       1200,
			OccurredDate: occurred,
		})

		assert.ErrorIs(t, err, errs.ErrCommitFailed)
		assert.ErrorIs(t, err, commitErr)
		assert.Nil(t, mf)
	})

	t.Run("Begin failure is reported", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.uow.EXPECT().Begin(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.service.Create(ctx, usecase.CreateMoneyFlowCommand{
			Title:        "Lunch",
			Amount:       1200,
			OccurredDate: occurred,
		})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Returns the stored money flow", func(t *testing.T) {
		f := newServiceFixture(t, now)
		stored := &entity.MoneyFlow{ID: 5, Title: "Rent", Amount: 80000, Kind: entity.KindExpense}
		f.repo.EXPECT().FindByID(ctx, uint64(5)).Return(stored, true, nil).Once()

		mf, err := f.service.Get(ctx, 5)

		require.NoError(t, err)
		assert.Same(t, stored, mf)
	})

	t.Run("Unknown ID is a not-found business error", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.repo.EXPECT().FindByID(ctx, uint64(99)).Return(nil, false, nil).Once()

		mf, err := f.service.Get(ctx, 99)

		assert.Nil(t, mf)
		require.Error(t, err)
		be, ok := errs.AsBusinessError(err)
		require.True(t, ok)
		assert.Equal(t, errs.MessageMoneyFlowNotFound, be.Message)
	})

	t.Run("Zero ID is rejected", func(t *testing.T) {
		f := newServiceFixture(t, now)

		_, err := f.service.Get(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidMoneyFlowID)
	})

	t.Run("Store failure is not a business error", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.repo.EXPECT().FindByID(ctx, uint64(5)).Return(nil, false, errs.ErrDatabaseConnection).Once()

		_, err := f.service.Get(ctx, 5)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		_, ok := errs.AsBusinessError(err)
		assert.False(t, ok)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Nil filter returns everything", func(t *testing.T) {
		f := newServiceFixture(t, now)
		all := []*entity.MoneyFlow{{ID: 1}, {ID: 2}}
		f.repo.EXPECT().FindAll(ctx).Return(all, nil).Once()

		result, err := f.service.List(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, all, result)
	})

	t.Run("Kind filter delegates to FindByKind", func(t *testing.T) {
		f := newServiceFixture(t, now)
		income := entity.KindIncome
		filtered := []*entity.MoneyFlow{{ID: 3, Kind: entity.KindIncome}}
		f.repo.EXPECT().FindByKind(ctx, entity.KindIncome).Return(filtered, nil).Once()

		result, err := f.service.List(ctx, &income)

		require.NoError(t, err)
		assert.Equal(t, filtered, result)
	})

	t.Run("Empty store yields an empty slice", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.repo.EXPECT().FindAll(ctx).Return(nil, nil).Once()

		result, err := f.service.List(ctx, nil)

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Unknown kind is rejected", func(t *testing.T) {
		f := newServiceFixture(t, now)
		kind := entity.MoneyFlowKind("refund")

		_, err := f.service.List(ctx, &kind)

		assert.ErrorIs(t, err, errs.ErrInvalidKind)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	now := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	newOccurred := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	existing := func() *entity.MoneyFlow {
		return &entity.MoneyFlow{
			ID:           4,
			Title:        "Salary",
			Amount:       250000,
			OccurredDate: created,
			Kind:         entity.KindIncome,
			CreatedAt:    created,
			UpdatedAt:    created,
		}
	}

	t.Run("Replaces every mutable field", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().FindByID(f.txCtx, uint64(4)).Return(existing(), true, nil).Once()
		f.repo.EXPECT().Replace(f.txCtx, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

		mf, err := f.service.Update(ctx, usecase.UpdateMoneyFlowCommand{
			ID:           4,
			Title:        "Groceries",
			Amount:       3000,
			OccurredDate: newOccurred,
			Kind:         entity.KindExpense,
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(4), mf.ID)
		assert.Equal(t, "Groceries", mf.Title)
		assert.Equal(t, int64(3000), mf.Amount)
		assert.Equal(t, newOccurred, mf.OccurredDate)
		assert.Equal(t, entity.KindExpense, mf.Kind)
		assert.Equal(t, created, mf.CreatedAt)
		assert.Equal(t, now, mf.UpdatedAt)
	})

	t.Run("Omitted kind resets to expense", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().FindByID(f.txCtx, uint64(4)).Return(existing(), true, nil).Once()
		f.repo.EXPECT().Replace(f.txCtx, mock.MatchedBy(func(mf *entity.MoneyFlow) bool {
			return mf.Kind == entity.KindExpense
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

		mf, err := f.service.Update(ctx, usecase.UpdateMoneyFlowCommand{
			ID:           4,
			Title:        "Salary",
			Amount:       250000,
			OccurredDate: created,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.KindExpense, mf.Kind)
	})

	t.Run("Unknown ID rolls back with not-found", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().FindByID(f.txCtx, uint64(99)).Return(nil, false, nil).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		mf, err := f.service.Update(ctx, usecase.UpdateMoneyFlowCommand{
			ID:           99,
			Title:        "Salary",
			Amount:       1,
			OccurredDate: created,
		})

		assert.Nil(t, mf)
		assert.True(t, errs.IsNotFoundError(err))
		f.repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("Row deleted concurrently is still not-found", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().FindByID(f.txCtx, uint64(4)).Return(existing(), true, nil).Once()
		f.repo.EXPECT().Replace(f.txCtx, mock.Anything).Return(errs.ErrMoneyFlowNotFound).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		_, err := f.service.Update(ctx, usecase.UpdateMoneyFlowCommand{
			ID:           4,
			Title:        "Salary",
			Amount:       1,
			OccurredDate: created,
		})

		be, ok := errs.AsBusinessError(err)
		require.True(t, ok)
		assert.Equal(t, errs.MessageMoneyFlowNotFound, be.Message)
	})

	t.Run("Commit failure rolls back and is reported", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().FindByID(f.txCtx, uint64(4)).Return(existing(), true, nil).Once()
		f.repo.EXPECT().Replace(f.txCtx, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(errors.New("serialization failure")).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		mf, err := f.service.Update(ctx, usecase.UpdateMoneyFlowCommand{
			ID:           4,
			Title:        "Salary",
			Amount:       1,
			OccurredDate: created,
		})

		assert.Nil(t, mf)
		assert.ErrorIs(t, err, errs.ErrCommitFailed)
	})

	t.Run("Invalid title is rejected before any store work", func(t *testing.T) {
		f := newServiceFixture(t, now)

		_, err := f.service.Update(ctx, usecase.UpdateMoneyFlowCommand{
			ID:           4,
			Title:        "",
			Amount:       1,
			OccurredDate: created,
		})

		assert.ErrorIs(t, err, errs.ErrInvalidTitle)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Deletes an existing money flow", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().FindByID(f.txCtx, uint64(4)).Return(&entity.MoneyFlow{ID: 4}, true, nil).Once()
		f.repo.EXPECT().Delete(f.txCtx, uint64(4)).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

		require.NoError(t, f.service.Delete(ctx, 4))
	})

	t.Run("Unknown ID rolls back with not-found", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().FindByID(f.txCtx, uint64(99)).Return(nil, false, nil).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		err := f.service.Delete(ctx, 99)

		assert.True(t, errs.IsNotFoundError(err))
		f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Rollback failure is logged, original error kept", func(t *testing.T) {
		f := newServiceFixture(t, now)
		f.expectBegin()
		f.repo.EXPECT().FindByID(f.txCtx, uint64(4)).Return(&entity.MoneyFlow{ID: 4}, true, nil).Once()
		f.repo.EXPECT().Delete(f.txCtx, uint64(4)).Return(errs.ErrDatabaseConnection).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(errors.New("conn closed")).Once()

		err := f.service.Delete(ctx, 4)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
