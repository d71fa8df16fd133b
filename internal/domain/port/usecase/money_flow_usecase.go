package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
)

// CreateMoneyFlowCommand carries the validated input of a create request
type CreateMoneyFlowCommand struct {
	Title        string
	Amount       int64
	OccurredDate time.Time
	Kind         entity.MoneyFlowKind // empty means the default kind
}

// UpdateMoneyFlowCommand carries the validated input of a whole-record update
type UpdateMoneyFlowCommand struct {
	ID           uint64
	Title        string
	Amount       int64
	OccurredDate time.Time
	Kind         entity.MoneyFlowKind // empty means the default kind, not the stored one
}

// MoneyFlowUseCase defines the command handlers for the money flow resource
type MoneyFlowUseCase interface {
	// Create stores a new money flow and returns it with its generated ID
	Create(ctx context.Context, cmd CreateMoneyFlowCommand) (*entity.MoneyFlow, error)

	// Get returns a single money flow or a not-found business error
	Get(ctx context.Context, id uint64) (*entity.MoneyFlow, error)

	// List returns every money flow, or only those of *kind when kind is non-nil
	List(ctx context.Context, kind *entity.MoneyFlowKind) ([]*entity.MoneyFlow, error)

	// Update replaces all mutable fields of an existing money flow
	Update(ctx context.Context, cmd UpdateMoneyFlowCommand) (*entity.MoneyFlow, error)

	// Delete removes an existing money flow
	Delete(ctx context.Context, id uint64) error
}
