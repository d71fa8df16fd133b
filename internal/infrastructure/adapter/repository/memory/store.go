package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/persistence"
)

// ErrNoTransaction is returned by Commit when the context carries no open transaction
var ErrNoTransaction = errors.New("no transaction found in context")

type txKey struct{}

// Store keeps committed money flows in memory.
// IDs are handed out from a counter that only grows, so a rolled back insert never frees its ID.
type Store struct {
	mu         sync.RWMutex
	rows       map[uint64]*entity.MoneyFlow
	lastID     uint64
	commitErrs []error
	logger     coreport.Logger
}

// NewStore creates an empty store
func NewStore(logger coreport.Logger) *Store {
	return &Store{
		rows:   make(map[uint64]*entity.MoneyFlow),
		logger: logger,
	}
}

// FailNextCommit makes the next Commit return err instead of applying its changes
func (s *Store) FailNextCommit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitErrs = append(s.commitErrs, err)
}

// Len returns the number of committed rows
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func (s *Store) nextID() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return s.lastID
}

func (s *Store) get(id uint64) (*entity.MoneyFlow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mf, ok := s.rows[id]
	if !ok {
		return nil, false
	}
	return mf.Clone(), true
}

func (s *Store) snapshot() map[uint64]*entity.MoneyFlow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make(map[uint64]*entity.MoneyFlow, len(s.rows))
	for id, mf := range s.rows {
		rows[id] = mf.Clone()
	}
	return rows
}

// apply writes a finished transaction's changes. Updates of rows deleted in the meantime are dropped.
func (s *Store) apply(t *transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.commitErrs) > 0 {
		err := s.commitErrs[0]
		s.commitErrs = s.commitErrs[1:]
		return err
	}

	s.applyLocked(t)
	return nil
}

// applyDirect writes changes made without a unit of work
func (s *Store) applyDirect(t *transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(t)
}

func (s *Store) applyLocked(t *transaction) {
	for id := range t.deleted {
		delete(s.rows, id)
	}
	for id, mf := range t.staged {
		if _, exists := s.rows[id]; !exists && !t.inserted[id] {
			continue
		}
		s.rows[id] = mf.Clone()
	}
}

// transaction holds the staged writes of one unit of work
type transaction struct {
	mu       sync.Mutex
	staged   map[uint64]*entity.MoneyFlow
	inserted map[uint64]bool
	deleted  map[uint64]bool
	finished bool
}

func newTransaction() *transaction {
	return &transaction{
		staged:   make(map[uint64]*entity.MoneyFlow),
		inserted: make(map[uint64]bool),
		deleted:  make(map[uint64]bool),
	}
}

// UnitOfWork implements persistence.UnitOfWork on top of a Store
type UnitOfWork struct {
	store  *Store
	logger coreport.Logger
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work bound to store
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{
		store:  store,
		logger: store.logger,
	}
}

// Begin starts a new transaction and stores it in the returned context
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, fmt.Errorf("failed to begin transaction: %w", err)
	}
	u.logger.Debug("Beginning in-memory transaction", nil)
	return context.WithValue(ctx, txKey{}, newTransaction()), nil
}

// Commit applies the staged writes of the transaction in ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	t, ok := ctx.Value(txKey{}).(*transaction)
	if !ok || t == nil {
		return ErrNoTransaction
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return fmt.Errorf("transaction has already been committed or rolled back")
	}

	u.logger.Debug("Committing in-memory transaction", map[string]any{
		"staged":  len(t.staged),
		"deleted": len(t.deleted),
	})

	if err := u.store.apply(t); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	t.finished = true
	return nil
}

// Rollback discards the staged writes. Rolling back a finished transaction is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	t, ok := ctx.Value(txKey{}).(*transaction)
	if !ok || t == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return nil
	}

	u.logger.Debug("Rolling back in-memory transaction", nil)
	t.staged = make(map[uint64]*entity.MoneyFlow)
	t.inserted = make(map[uint64]bool)
	t.deleted = make(map[uint64]bool)
	t.finished = true
	return nil
}

// MoneyFlowRepository returns a repository that reads and writes through the transaction in ctx,
// or straight against the store when ctx carries none
func (u *UnitOfWork) MoneyFlowRepository(ctx context.Context) persistence.MoneyFlowRepository {
	t, _ := ctx.Value(txKey{}).(*transaction)
	return &MoneyFlowRepository{store: u.store, tx: t}
}
