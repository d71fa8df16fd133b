package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MoneyFlowRepository implements MoneyFlowRepository interface using GORM
type MoneyFlowRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.MoneyFlowRepository = (*MoneyFlowRepository)(nil)

// NewMoneyFlowRepository creates a new MoneyFlowRepository instance
func NewMoneyFlowRepository(db *gorm.DB, logger coreport.Logger) *MoneyFlowRepository {
	return &MoneyFlowRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a money flow model to an entity
func (r *MoneyFlowRepository) modelToEntity(m *model.MoneyFlow) *entity.MoneyFlow {
	return &entity.MoneyFlow{
		ID:           m.ID,
		Title:        m.Title,
		Amount:       m.Amount,
		OccurredDate: m.OccurredDate,
		Kind:         entity.MoneyFlowKind(m.Kind),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// entityToModel converts a money flow entity to a database model
func (r *MoneyFlowRepository) entityToModel(mf *entity.MoneyFlow) model.MoneyFlow {
	return model.MoneyFlow{
		ID:           mf.ID,
		Title:        mf.Title,
		Amount:       mf.Amount,
		OccurredDate: mf.OccurredDate,
		Kind:         mf.Kind.String(),
		CreatedAt:    mf.CreatedAt,
		UpdatedAt:    mf.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *MoneyFlowRepository) handleDatabaseError(operation string, err error, id uint64) error {
	errorType := r.errorClassifier.Classify(err)

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"money_flow_id": id,
		"error_type":    string(errorType),
		"error":         err.Error(),
	})

	switch errorType {
	case NotFoundError:
		return errs.ErrMoneyFlowNotFound
	case DuplicateKeyError, InvalidValueError, ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// Insert stores a new money flow and writes the generated ID back into the entity
func (r *MoneyFlowRepository) Insert(ctx context.Context, moneyFlow *entity.MoneyFlow) error {
	r.logger.Debug("Creating money flow", map[string]any{
		"kind":          moneyFlow.Kind.String(),
		"occurred_date": moneyFlow.OccurredDate,
	})

	m := r.entityToModel(moneyFlow)
	m.ID = 0

	if result := r.db.WithContext(ctx).Create(&m); result.Error != nil {
		return r.handleDatabaseError("creating money flow", result.Error, 0)
	}

	moneyFlow.ID = m.ID

	r.logger.Debug("Money flow row inserted", map[string]any{
		"money_flow_id": m.ID,
	})
	return nil
}

// Replace overwrites the mutable columns of an existing row
func (r *MoneyFlowRepository) Replace(ctx context.Context, moneyFlow *entity.MoneyFlow) error {
	r.logger.Debug("Updating money flow", map[string]any{
		"money_flow_id": moneyFlow.ID,
	})

	result := r.db.WithContext(ctx).Model(&model.MoneyFlow{}).
		Where("id = ?", moneyFlow.ID).
		Updates(map[string]interface{}{
			"title":         moneyFlow.Title,
			"amount":        moneyFlow.Amount,
			"occurred_date": moneyFlow.OccurredDate,
			"kind":          moneyFlow.Kind.String(),
			"updated_at":    moneyFlow.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating money flow", result.Error, moneyFlow.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Money flow not found during update", map[string]any{
			"money_flow_id": moneyFlow.ID,
		})
		return errs.ErrMoneyFlowNotFound
	}

	return nil
}

// Delete removes the row with the given ID
func (r *MoneyFlowRepository) Delete(ctx context.Context, id uint64) error {
	r.logger.Debug("Deleting money flow", map[string]any{
		"money_flow_id": id,
	})

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MoneyFlow{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting money flow", result.Error, id)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Money flow not found during delete", map[string]any{
			"money_flow_id": id,
		})
		return errs.ErrMoneyFlowNotFound
	}

	return nil
}

// FindByID retrieves a money flow by ID. A missing row is not an error.
func (r *MoneyFlowRepository) FindByID(ctx context.Context, id uint64) (*entity.MoneyFlow, bool, error) {
	var m model.MoneyFlow
	result := r.db.WithContext(ctx).Where("id = ?", id).Take(&m)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, r.handleDatabaseError("getting money flow", result.Error, id)
	}

	return r.modelToEntity(&m), true, nil
}

// FindAll retrieves every money flow ordered by ID
func (r *MoneyFlowRepository) FindAll(ctx context.Context) ([]*entity.MoneyFlow, error) {
	var models []model.MoneyFlow
	result := r.db.WithContext(ctx).Order("id ASC").Find(&models)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing money flows", result.Error, 0)
	}

	return r.modelsToEntities(models), nil
}

// FindByKind retrieves the money flows of one kind, newest occurred date first
func (r *MoneyFlowRepository) FindByKind(ctx context.Context, kind entity.MoneyFlowKind) ([]*entity.MoneyFlow, error) {
	var models []model.MoneyFlow
	result := r.db.WithContext(ctx).
		Where("kind = ?", kind.String()).
		Order("occurred_date DESC").
		Order("id DESC").
		Find(&models)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing money flows by kind", result.Error, 0)
	}

	return r.modelsToEntities(models), nil
}

func (r *MoneyFlowRepository) modelsToEntities(models []model.MoneyFlow) []*entity.MoneyFlow {
	moneyFlows := make([]*entity.MoneyFlow, 0, len(models))
	for i := range models {
		moneyFlows = append(moneyFlows, r.modelToEntity(&models[i]))
	}
	return moneyFlows
}
