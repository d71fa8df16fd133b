package persistence

import (
	"context"
)

// UnitOfWork scopes the writes of a single request to one store transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context.
	// Rolling back an already finished transaction is not an error.
	Rollback(ctx context.Context) error

	// MoneyFlowRepository returns a repository bound to the transaction in ctx,
	// or to the plain connection when ctx carries none
	MoneyFlowRepository(ctx context.Context) MoneyFlowRepository
}
