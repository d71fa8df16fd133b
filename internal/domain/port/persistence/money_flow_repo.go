package persistence

import (
	"context"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
)

// MoneyFlowRepository defines every read and write against stored money flows
type MoneyFlowRepository interface {
	// Insert stores a new money flow and writes the generated ID back into it
	//
	// Possible errors:
	// - ErrConstraintViolation: If a column constraint rejects the row
	// - ErrDatabaseConnection: If database connection fails
	Insert(ctx context.Context, moneyFlow *entity.MoneyFlow) error

	// Replace overwrites title, amount, occurred date, kind and updated_at of an existing row
	//
	// Possible errors:
	// - ErrMoneyFlowNotFound: If no row has the money flow's ID
	// - ErrDatabaseConnection: If database connection fails
	Replace(ctx context.Context, moneyFlow *entity.MoneyFlow) error

	// Delete removes the row with the given ID
	//
	// Possible errors:
	// - ErrMoneyFlowNotFound: If no row has the given ID
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// FindByID returns the money flow with the given ID.
	// Absence is reported as (nil, false, nil), never as an error.
	FindByID(ctx context.Context, id uint64) (*entity.MoneyFlow, bool, error)

	// FindAll returns every money flow
	FindAll(ctx context.Context) ([]*entity.MoneyFlow, error)

	// FindByKind returns the money flows of one kind, most recent occurred date first
	// with ties broken by ID descending
	FindByKind(ctx context.Context, kind entity.MoneyFlowKind) ([]*entity.MoneyFlow, error)
}
