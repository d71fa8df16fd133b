package database

import (
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors raised outside a repository, such as
// begin and commit failures, onto domain errors. The driver error stays in the chain.
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		classifier: repository.NewErrorClassifier(),
	}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", errs.ErrMoneyFlowNotFound, err)
	}

	switch m.classifier.Classify(err) {
	case repository.DuplicateKeyError, repository.InvalidValueError, repository.ConstraintError:
		return fmt.Errorf("%w: %s: %w", errs.ErrConstraintViolation, operation, err)
	case repository.LockError, repository.TransientError, repository.ConnectionError:
		return fmt.Errorf("%w: %s: %w", errs.ErrDatabaseConnection, operation, err)
	default:
		return fmt.Errorf("%w: %s: %w", errs.ErrInternalServer, operation, err)
	}
}

// IsRetryable reports whether an operation that failed with err may succeed if tried again
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch m.classifier.Classify(err) {
	case repository.LockError, repository.TransientError, repository.ConnectionError:
		return true
	default:
		return false
	}
}
