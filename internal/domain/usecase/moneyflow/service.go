package moneyflow

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/usecase"
)

// Service implements the money flow command handlers.
// Every write runs in its own unit of work that is committed before the result is returned.
type Service struct {
	uow          persistence.UnitOfWork
	validator    *MoneyFlowValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.MoneyFlowUseCase = (*Service)(nil)

// NewMoneyFlowService creates a new money flow service
func NewMoneyFlowService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		validator:    NewMoneyFlowValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create validates the command and stores a new money flow
func (s *Service) Create(ctx context.Context, cmd usecase.CreateMoneyFlowCommand) (*entity.MoneyFlow, error) {
	if err := s.validator.ValidateCreate(cmd); err != nil {
		return nil, fmt.Errorf("invalid money flow: %w", err)
	}

	moneyFlow, err := entity.NewMoneyFlow(cmd.Title, cmd.Amount, cmd.OccurredDate, cmd.Kind, s.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("invalid money flow: %w", err)
	}

	err = s.withinUnitOfWork(ctx, "create", func(ctx context.Context, repo persistence.MoneyFlowRepository) error {
		return repo.Insert(ctx, moneyFlow)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Money flow created", map[string]any{
		"id":   moneyFlow.ID,
		"kind": moneyFlow.Kind.String(),
	})

	return moneyFlow, nil
}

// Get returns the money flow with the given ID
func (s *Service) Get(ctx context.Context, id uint64) (*entity.MoneyFlow, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return nil, err
	}

	moneyFlow, found, err := s.uow.MoneyFlowRepository(ctx).FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get money flow: %w", err)
	}
	if !found {
		return nil, errs.NewNotFoundError(id)
	}

	return moneyFlow, nil
}

// List returns all money flows, or only those of one kind when kind is set
func (s *Service) List(ctx context.Context, kind *entity.MoneyFlowKind) ([]*entity.MoneyFlow, error) {
	if err := s.validator.ValidateFilter(kind); err != nil {
		return nil, err
	}

	repo := s.uow.MoneyFlowRepository(ctx)

	var (
		moneyFlows []*entity.MoneyFlow
		err        error
	)
	if kind == nil {
		moneyFlows, err = repo.FindAll(ctx)
	} else {
		moneyFlows, err = repo.FindByKind(ctx, *kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list money flows: %w", err)
	}

	if moneyFlows == nil {
		moneyFlows = []*entity.MoneyFlow{}
	}
	return moneyFlows, nil
}

// Update replaces title, amount, occurred date and kind of an existing money flow.
// An empty kind in the command resets the record to the default kind.
func (s *Service) Update(ctx context.Context, cmd usecase.UpdateMoneyFlowCommand) (*entity.MoneyFlow, error) {
	if err := s.validator.ValidateUpdate(cmd); err != nil {
		return nil, fmt.Errorf("invalid money flow: %w", err)
	}

	var updated *entity.MoneyFlow
	err := s.withinUnitOfWork(ctx, "update", func(ctx context.Context, repo persistence.MoneyFlowRepository) error {
		existing, found, err := repo.FindByID(ctx, cmd.ID)
		if err != nil {
			return fmt.Errorf("failed to get money flow: %w", err)
		}
		if !found {
			return errs.NewNotFoundError(cmd.ID)
		}

		if err := existing.Replace(cmd.Title, cmd.Amount, cmd.OccurredDate, cmd.Kind, s.timeProvider); err != nil {
			return fmt.Errorf("invalid money flow: %w", err)
		}
		if err := repo.Replace(ctx, existing); err != nil {
			return s.mapNotFound(err, cmd.ID)
		}

		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Money flow updated", map[string]any{
		"id":   updated.ID,
		"kind": updated.Kind.String(),
	})

	return updated, nil
}

// Delete removes an existing money flow
func (s *Service) Delete(ctx context.Context, id uint64) error {
	if err := s.validator.ValidateID(id); err != nil {
		return err
	}

	err := s.withinUnitOfWork(ctx, "delete", func(ctx context.Context, repo persistence.MoneyFlowRepository) error {
		_, found, err := repo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get money flow: %w", err)
		}
		if !found {
			return errs.NewNotFoundError(id)
		}

		if err := repo.Delete(ctx, id); err != nil {
			return s.mapNotFound(err, id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Money flow deleted", map[string]any{
		"id": id,
	})

	return nil
}

// withinUnitOfWork runs fn against a repository bound to a fresh transaction.
// The transaction is rolled back whenever it was not committed, including when Commit fails.
func (s *Service) withinUnitOfWork(
	ctx context.Context,
	operation string,
	fn func(ctx context.Context, repo persistence.MoneyFlowRepository) error,
) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin %s: %w", operation, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back unit of work", map[string]any{
				"operation": operation,
				"error":     rbErr.Error(),
			})
		}
	}()

	if err := fn(txCtx, s.uow.MoneyFlowRepository(txCtx)); err != nil {
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit unit of work", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %w", errs.ErrCommitFailed, err)
	}
	committed = true

	return nil
}

// mapNotFound turns a row that vanished between read and write into the not-found business error
func (s *Service) mapNotFound(err error, id uint64) error {
	if errs.IsNotFoundError(err) {
		return errs.NewNotFoundError(id)
	}
	return err
}
